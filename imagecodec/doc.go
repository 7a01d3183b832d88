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

// Package imagecodec reads and writes the image files used by textures and
// by framebuffer exports.
//
// Decoded images are held in the Image type. The pixel data of an Image is
// always tightly packed with the first row at the top of the picture. Eight
// bit formats are decoded into the U8 field and Radiance HDR files are decoded
// into the F32 field.
//
// Decoding supports PNG, JPEG and GIF through the standard library, BMP, TIFF
// and WebP through golang.org/x/image, and Radiance HDR (RGBE) files through
// github.com/mdouchement/hdr. The decoder is chosen from the content of the
// file except for HDR files, which are identified by the ".hdr" extension.
//
// Encoding supports PNG, JPEG and HDR. The encoder is chosen by the file
// extension, which is not case sensitive. JPEG files are always written with
// a quality of 100.
//
// Images read from a graphics device have the bottom row first. FlipVertical()
// should be used before encoding such data.
package imagecodec
