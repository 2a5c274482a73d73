//go:build !android

// Package glcanvas draws the touch overlay with OpenGL 4.1 core.
package glcanvas

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"touchdebug/internal/overlay"
)

// Vertex layout: pos(2) + uv(2) + color(4).
const (
	floatsPerVertex = 8
	vertexStride    = floatsPerVertex * 4
	maxBatchVerts   = 4096
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Canvas implements overlay.Canvas. Markers are drawn immediately; labels are
// queued and drawn in one batch by End so they stay on top.
type Canvas struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uCamera     int32
	uZoom       int32
	uResolution int32
	uTex        int32

	font      *overlay.FontAtlas
	textures  map[overlay.Texture]uint32
	textBuf   []float32
	quadBuf   []float32
	LabelSize float32
}

// New must be called with a current GL context after gl.Init.
func New() (*Canvas, error) {
	prog, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	c := &Canvas{
		prog:      prog,
		font:      overlay.NewFontAtlas(),
		textures:  make(map[overlay.Texture]uint32),
		LabelSize: 1,
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, maxBatchVerts*vertexStride, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, vertexStride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, vertexStride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, vertexStride, glOffset(4*4))
	c.vao = vao
	c.vbo = vbo

	gl.UseProgram(prog)
	c.uCamera = gl.GetUniformLocation(prog, gl.Str("uCamera\x00"))
	c.uZoom = gl.GetUniformLocation(prog, gl.Str("uZoom\x00"))
	c.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	c.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	gl.Uniform1i(c.uTex, 0)

	gl.BindVertexArray(0)
	return c, nil
}

func (c *Canvas) Destroy() {
	for _, tex := range c.textures {
		gl.DeleteTextures(1, &tex)
	}
	c.textures = nil
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
	}
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	if c.prog != 0 {
		gl.DeleteProgram(c.prog)
	}
}

// Begin clears the framebuffer and binds the quad program for cam.
func (c *Canvas) Begin(cam *overlay.Camera, bg overlay.RGB) {
	r, g, b, _ := bg.Floats()
	gl.Viewport(0, 0, int32(cam.Width), int32(cam.Height))
	gl.ClearColor(r, g, b, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(c.prog)
	gl.BindVertexArray(c.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.Uniform2f(c.uCamera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(c.uZoom, float32(cam.Zoom))
	gl.Uniform2f(c.uResolution, float32(cam.Width), float32(cam.Height))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ActiveTexture(gl.TEXTURE0)
}

// End draws the queued labels.
func (c *Canvas) End() {
	if len(c.textBuf) > 0 {
		c.draw(c.texture(c.font, gl.NEAREST), c.textBuf)
		c.textBuf = c.textBuf[:0]
	}
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}

func (c *Canvas) DrawTexture(tex overlay.Texture, dst overlay.Rect) {
	r := overlay.FitRect(tex, dst)
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
	c.quadBuf = append(c.quadBuf[:0],
		x0, y0, 0, 0, 1, 1, 1, 1,
		x1, y0, 1, 0, 1, 1, 1, 1,
		x0, y1, 0, 1, 1, 1, 1, 1,
		x1, y0, 1, 0, 1, 1, 1, 1,
		x1, y1, 1, 1, 1, 1, 1, 1,
		x0, y1, 0, 1, 1, 1, 1, 1,
	)
	c.draw(c.texture(tex, gl.LINEAR), c.quadBuf)
}

func (c *Canvas) DrawLabel(text string, dst overlay.Rect, col overlay.RGB) {
	x, y := c.font.LabelOrigin(dst, c.LabelSize)
	c.textBuf = c.font.AppendQuads(c.textBuf, text, x, y, c.LabelSize, col)
}

func (c *Canvas) draw(tex uint32, verts []float32) {
	gl.BindTexture(gl.TEXTURE_2D, tex)
	for len(verts) > 0 {
		n := len(verts) / floatsPerVertex
		if n > maxBatchVerts {
			n = maxBatchVerts - maxBatchVerts%6
		}
		chunk := verts[:n*floatsPerVertex]
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(chunk)*4, gl.Ptr(chunk))
		gl.DrawArrays(gl.TRIANGLES, 0, int32(n))
		verts = verts[len(chunk):]
	}
}

// texture returns the GL name of tex, uploading it on first use.
func (c *Canvas) texture(tex overlay.Texture, filter int32) uint32 {
	if id, ok := c.textures[tex]; ok {
		return id
	}
	img := tex.Image()
	w, h := tex.Size()

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	c.textures[tex] = id
	return id
}
