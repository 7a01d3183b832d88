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

package environment

import (
	"fmt"

	"github.com/jetsetilly/rendercore/curated"
	"github.com/jetsetilly/rendercore/gpu"
	"github.com/jetsetilly/rendercore/logger"
)

// ErrNoAPI is the pattern of the fatal error raised when a resource is
// created without an active graphics API.
const ErrNoAPI = "environment: no graphics api (%s)"

// Label is used to name the environment
type Label string

// Environment is the context for every resource created by rendercore. It
// carries the graphics device, the preferences and the logger so that none
// of these have to be global state.
type Environment struct {
	Label Label

	// the device all resources are created on. a nil device means that there
	// is no active graphics API
	Device gpu.Device

	// the rendering preferences
	Prefs *Preferences

	// log entries are added to this logger. if it is nil then the central
	// logger is used
	Log *logger.Logger
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance
// will be created. Providing a non-nil value allows the preferences of more
// than one environment to be synchronised.
func NewEnvironment(label Label, dev gpu.Device, prefs *Preferences) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Device: dev,
	}

	var err error

	if prefs == nil {
		prefs, err = NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// API returns the graphics API of the device. Returns gpu.APINone if there is
// no device.
func (env *Environment) API() gpu.API {
	if env == nil || env.Device == nil {
		return gpu.APINone
	}
	return env.Device.API()
}

// RequireAPI panics with ErrNoAPI if there is no active graphics API. The
// context string is included in the error.
func (env *Environment) RequireAPI(context string) {
	if env.API() == gpu.APINone {
		panic(curated.Errorf(ErrNoAPI, context))
	}
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	if env == nil || env.Prefs == nil {
		return true
	}
	return env.Prefs.Warnings.Get().(bool)
}

// Logger returns the logger used by the environment.
func (env *Environment) Logger() *logger.Logger {
	if env == nil || env.Log == nil {
		return logger.Central()
	}
	return env.Log
}

// Warn adds an entry to the environment's logger, subject to the
// environment's logging permission.
func (env *Environment) Warn(tag string, detail any) {
	env.Logger().Log(env, tag, detail)
}

// Warnf adds a formatted entry to the environment's logger.
func (env *Environment) Warnf(tag string, detail string, args ...any) {
	env.Logger().Logf(env, tag, detail, args...)
}

func (env *Environment) String() string {
	if env.Label == "" {
		return fmt.Sprintf("environment (%s)", env.API())
	}
	return fmt.Sprintf("%s (%s)", env.Label, env.API())
}
