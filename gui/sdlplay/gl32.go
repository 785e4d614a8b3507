// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.


package sdlplay

import (
	"image"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/television"
)

const vertexShader = `#version 150 core
in vec2 Position;
in vec2 UV;
out vec2 Frag_UV;
void main()
{
	Frag_UV = UV;
	gl_Position = vec4(Position, 0.0, 1.0);
}
`

const fragmentShader = `#version 150 core
uniform sampler2D Texture;
in vec2 Frag_UV;
out vec4 Out_Color;
void main()
{
	Out_Color = texture(Texture, Frag_UV);
}
`

// two triangles covering the viewport. each vertex is the position followed
// by the texture coordinate. the texture is flipped vertically because the
// frame's first row is the top of the screen
var quad = [...]float32{
	-1.0, 1.0, 0.0, 0.0,
	-1.0, -1.0, 0.0, 1.0,
	1.0, -1.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 0.0,
	1.0, -1.0, 1.0, 1.0,
	1.0, 1.0, 1.0, 0.0,
}

const (
	floatSize    = 4
	vertexStride = 4 * floatSize
	numVertices  = len(quad) / 4
)

// gl32 presents frames as a textured quad using OpenGL 3.2 core.
type gl32 struct {
	program uint32
	vao     uint32
	vbo     uint32
	texture uint32

	position int32
	uv       int32
	sampler  int32
}

func newGL32() (*gl32, error) {
	if err := gl.Init(); err != nil {
		return nil, curated.Errorf("sdlplay: gl: %v", err)
	}

	rnd := &gl32{}

	var err error
	rnd.program, err = createProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}

	rnd.position = gl.GetAttribLocation(rnd.program, gl.Str("Position"+"\x00"))
	rnd.uv = gl.GetAttribLocation(rnd.program, gl.Str("UV"+"\x00"))
	rnd.sampler = gl.GetUniformLocation(rnd.program, gl.Str("Texture"+"\x00"))

	gl.GenVertexArrays(1, &rnd.vao)
	gl.BindVertexArray(rnd.vao)

	gl.GenBuffers(1, &rnd.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*floatSize, gl.Ptr(&quad[0]), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(uint32(rnd.position))
	gl.VertexAttribPointerWithOffset(uint32(rnd.position), 2, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(uint32(rnd.uv))
	gl.VertexAttribPointerWithOffset(uint32(rnd.uv), 2, gl.FLOAT, false, vertexStride, 2*floatSize)

	// pixels are square and sharp
	gl.GenTextures(1, &rnd.texture)
	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, television.Width, television.Height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)

	return rnd, nil
}

func createProgram(vertProgram string, fragProgram string) (uint32, error) {
	program := gl.CreateProgram()

	compile := func(typ uint32, source string) (uint32, error) {
		handle := gl.CreateShader(typ)
		csource, free := gl.Strs(source + "\x00")
		gl.ShaderSource(handle, 1, csource, nil)
		free()
		gl.CompileShader(handle)

		var status int32
		gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
		if status == gl.FALSE {
			var logLength int32
			gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
			gl.DeleteShader(handle)
			return 0, curated.Errorf("sdlplay: shader: %v", strings.TrimRight(log, "\x00"))
		}
		return handle, nil
	}

	vert, err := compile(gl.VERTEX_SHADER, vertProgram)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compile(gl.FRAGMENT_SHADER, fragProgram)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(frag)

	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		gl.DeleteProgram(program)
		return 0, curated.Errorf("sdlplay: shader: link failed")
	}

	return program, nil
}

// update the texture with the new frame.
func (rnd *gl32) update(img *image.RGBA) {
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride)/4)
	defer gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0,
		0, 0, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix))
}

// render the texture into the drawable area. the image is letterboxed to
// preserve the aspect ratio.
func (rnd *gl32) render(drawW int32, drawH int32) {
	gl.Viewport(0, 0, drawW, drawH)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	x, y, w, h := letterbox(drawW, drawH)
	gl.Viewport(x, y, w, h)

	gl.UseProgram(rnd.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)
	gl.Uniform1i(rnd.sampler, 0)
	gl.BindVertexArray(rnd.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(numVertices))
}

// letterbox returns the largest area with the aspect ratio of the television
// that fits in the drawable area, centred.
func letterbox(drawW int32, drawH int32) (x, y, w, h int32) {
	w = drawW
	h = drawW * television.Height / television.Width
	if h > drawH {
		h = drawH
		w = drawH * television.Width / television.Height
	}
	return (drawW - w) / 2, (drawH - h) / 2, w, h
}

func (rnd *gl32) destroy() {
	gl.DeleteTextures(1, &rnd.texture)
	gl.DeleteBuffers(1, &rnd.vbo)
	gl.DeleteVertexArrays(1, &rnd.vao)
	gl.DeleteProgram(rnd.program)
}
