// This file is part of rendercore.
//
// rendercore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rendercore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rendercore.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/rendercore/digest"
	"github.com/jetsetilly/rendercore/environment"
	"github.com/jetsetilly/rendercore/framebuffer"
	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/logger"
	"github.com/jetsetilly/rendercore/modalflag"
	"github.com/jetsetilly/rendercore/paths"
	"github.com/jetsetilly/rendercore/platform"
	"github.com/jetsetilly/rendercore/prefs"
	"github.com/jetsetilly/rendercore/statsview"
	"github.com/jetsetilly/rendercore/version"
)

// OpenGL contexts created by SDL and GLFW must be used from the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("EXPORT", "INFO")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "EXPORT":
		err = export(md)
	case "INFO":
		err = info(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// the flags used by every mode
type common struct {
	backend   *string
	window    *string
	blueprint *string
	samples   *int
	prefs     *string
	log       *bool
	statsview *bool
}

func addCommon(md *modalflag.Modes) common {
	c := common{
		backend:   md.AddString("backend", "opengl", "graphics backend: OPENGL, SOFTWARE"),
		window:    md.AddString("window", "sdl", "window used for the OpenGL context: SDL, GLFW"),
		blueprint: md.AddString("blueprint", "", "YAML file describing the framebuffer"),
		samples:   md.AddInt("samples", 0, "override the number of samples"),
		prefs:     md.AddString("prefs", "", "preferences for this run (eg. \"render.mipmaps::true\")"),
		log:       md.AddBool("log", false, "echo log to stdout"),
	}
	if statsview.Available() {
		c.statsview = md.AddBool("statsview", false, "run stats server")
	}
	return c
}

// session is the state shared by every mode once the flags have been parsed
type session struct {
	plt platform.Platform
	env *environment.Environment
	lib *framebuffer.Library
}

func (c common) open() (*session, error) {
	if *c.log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if c.statsview != nil && *c.statsview {
		statsview.Launch(os.Stdout)
	}

	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
	}

	var api gpu.API
	switch strings.ToUpper(*c.backend) {
	case "OPENGL":
		api = gpu.APIOpenGL
	case "SOFTWARE":
		api = gpu.APISoftware
	default:
		return nil, fmt.Errorf("unknown backend (%s)", *c.backend)
	}

	window, err := platform.ParseWindow(*c.window)
	if err != nil {
		return nil, err
	}

	p, err := environment.NewPreferences()
	if err != nil {
		return nil, err
	}
	err = p.Load()
	if err != nil {
		return nil, err
	}

	plt, err := platform.Open(api, window, 320, 240)
	if err != nil {
		return nil, err
	}

	env, err := environment.NewEnvironment(environment.Label(version.ApplicationName), plt.Device(), p)
	if err != nil {
		_ = plt.Destroy()
		return nil, err
	}

	logger.Logf(logger.Allow, "rendercore", "%s: %s", version.Banner(), env)

	return &session{
		plt: plt,
		env: env,
		lib: framebuffer.NewLibrary(env),
	}, nil
}

func (s *session) close() error {
	s.lib.DestroyAll()
	return s.plt.Destroy()
}

// specification returns the framebuffer specification named by the blueprint
// flag. if there is no blueprint then a colour and depth-stencil framebuffer
// is used
func (c common) specification(env *environment.Environment) (framebuffer.Specification, error) {
	var spec framebuffer.Specification

	if *c.blueprint == "" {
		spec = framebuffer.Specification{
			Width:   800,
			Height:  600,
			Samples: env.Prefs.Samples.Get().(int),
			MipMaps: env.Prefs.MipMaps.Get().(bool),
			Attachments: []framebuffer.AttachmentSpecification{
				{Format: gpu.FormatRGBA8},
				{Format: gpu.FormatDepth24Stencil8},
			},
		}
	} else {
		f, err := os.Open(*c.blueprint)
		if err != nil {
			return spec, err
		}
		defer f.Close()

		spec, err = framebuffer.LoadSpecification(f, env.Prefs)
		if err != nil {
			return spec, err
		}
	}

	if *c.samples > 0 {
		spec.Samples = *c.samples
	}

	return spec, nil
}

// parseColor parses a colour of the form "r,g,b,a". the alpha component is
// optional
func parseColor(s string) ([4]float32, error) {
	c := [4]float32{0, 0, 0, 1}
	p := strings.Split(s, ",")
	if len(p) < 3 || len(p) > 4 {
		return c, fmt.Errorf("colour must have three or four components (%s)", s)
	}
	for i, v := range p {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
		if err != nil {
			return c, fmt.Errorf("colour: %w", err)
		}
		c[i] = float32(f)
	}
	return c, nil
}

func export(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)
	output := md.AddString("o", "", "output file (png, jpg or hdr)")
	attachment := md.AddInt("attachment", 0, "colour attachment to export")
	clearColor := md.AddString("clear", "0,0,0,1", "clear colour (r,g,b[,a])")
	width, height := md.AddIntPair("resize", "x", "resize framebuffer before export (eg. 1024x768)")
	memvizFile := md.AddString("memviz", "", "write memviz graph of the framebuffers to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	col, err := parseColor(*clearColor)
	if err != nil {
		return err
	}

	s, err := c.open()
	if err != nil {
		return err
	}
	defer func() {
		if err := s.close(); err != nil {
			logger.Log(logger.Allow, "rendercore", err)
		}
	}()

	spec, err := c.specification(s.env)
	if err != nil {
		return err
	}

	fb := s.lib.Create("main", spec)
	if *width > 0 && *height > 0 {
		fb.Resize(*width, *height, spec.Depth)
	}
	fb.Clear(col[0], col[1], col[2], col[3])

	// multisample attachments must be resolved before they can be read
	if fb.Spec().Samples > 1 {
		rspec := fb.Spec()
		rspec.Samples = 1
		resolve := s.lib.Create("resolve", rspec)
		for i := range fb.ColorAttachmentCount() {
			if fb.ColorAttachment(i) != nil && resolve.ColorAttachment(i) != nil {
				framebuffer.BlitColorAttachments(fb, resolve, i, i, gpu.FilterNearest)
			}
		}
		fb = resolve
	}

	filename := *output
	if filename == "" {
		filename = fmt.Sprintf("%s.png", paths.UniqueFilename(version.ApplicationName, "attachment"))
	}

	err = fb.SaveAttachment(*attachment, filename)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "rendercore", "attachment %d saved to %s", *attachment, filename)

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, s.lib)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	s, err := c.open()
	if err != nil {
		return err
	}
	defer func() {
		if err := s.close(); err != nil {
			logger.Log(logger.Allow, "rendercore", err)
		}
	}()

	fmt.Println(version.Banner())
	fmt.Printf("device: %v\n", s.env.Device)
	fmt.Printf("max color attachments: %d\n", s.env.Device.MaxColorAttachments())

	spec, err := c.specification(s.env)
	if err != nil {
		return err
	}

	fb := s.lib.Create("main", spec)
	for _, err := range fb.Invalidate() {
		fmt.Printf("! %v\n", err)
	}

	fmt.Printf("framebuffer: %s\n", fb.Spec())
	for i := range fb.ColorAttachmentCount() {
		fmt.Printf("  color %d: %s\n", i, fb.ColorAttachmentSpec(i))
	}
	if d := fb.DepthAttachmentSpec(); d.Format != gpu.FormatNone {
		fmt.Printf("  depth: %s\n", d)
	}
	fmt.Printf("  buffers: %s\n", fb.ActiveBuffers())

	if fb.Spec().Samples == 1 {
		dig := digest.NewAttachments()
		fb.Clear(0, 0, 0, 1)
		if err := dig.Add(fb); err != nil {
			return err
		}
		fmt.Printf("  digest: %s\n", dig.Hash())
	}

	return nil
}
