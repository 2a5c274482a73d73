//go:build android

package mobile

import (
	"fmt"

	"golang.org/x/mobile/gl"

	"touchdebug/internal/overlay"
)

const quadVertSrc = `
attribute vec2 aPos;
attribute vec2 aUV;
attribute vec4 aColor;
uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;
varying vec2 vUV;
varying vec4 vColor;
void main() {
  vec2 screenPos = (aPos - uCamera) * uZoom + uResolution * 0.5;
  vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
  ndc.y = -ndc.y;
  gl_Position = vec4(ndc, 0.0, 1.0);
  vUV = aUV;
  vColor = aColor;
}`

const quadFragSrc = `
precision mediump float;
uniform sampler2D uTex;
varying vec2 vUV;
varying vec4 vColor;
void main() {
  vec4 t = texture2D(uTex, vUV);
  if (t.a < 0.01) discard;
  gl_FragColor = vec4(t.rgb * vColor.rgb, t.a * vColor.a);
}`

// mobileLabelBoost keeps labels readable on high density screens.
const mobileLabelBoost = float32(1.5)

const stride = 8 * 4

// glesCanvas implements overlay.Canvas on an x/mobile GLES2 context.
type glesCanvas struct {
	glctx gl.Context
	prog  gl.Program
	vbo   gl.Buffer

	aPos, aUV, aColor gl.Attrib
	uCamera, uZoom    gl.Uniform
	uResolution, uTex gl.Uniform

	font      *overlay.FontAtlas
	textures  map[overlay.Texture]gl.Texture
	textBuf   []float32
	quadBuf   []float32
	labelSize float32
}

func newCanvas(glctx gl.Context, labelScale float32) (*glesCanvas, error) {
	prog, err := linkProgram(glctx, quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	c := &glesCanvas{
		glctx:     glctx,
		prog:      prog,
		vbo:       glctx.CreateBuffer(),
		font:      overlay.NewFontAtlas(),
		textures:  make(map[overlay.Texture]gl.Texture),
		labelSize: labelScale * mobileLabelBoost,
	}
	c.aPos = glctx.GetAttribLocation(prog, "aPos")
	c.aUV = glctx.GetAttribLocation(prog, "aUV")
	c.aColor = glctx.GetAttribLocation(prog, "aColor")
	c.uCamera = glctx.GetUniformLocation(prog, "uCamera")
	c.uZoom = glctx.GetUniformLocation(prog, "uZoom")
	c.uResolution = glctx.GetUniformLocation(prog, "uResolution")
	c.uTex = glctx.GetUniformLocation(prog, "uTex")
	return c, nil
}

func (c *glesCanvas) destroy() {
	for _, tex := range c.textures {
		c.glctx.DeleteTexture(tex)
	}
	c.textures = nil
	if c.vbo != (gl.Buffer{}) {
		c.glctx.DeleteBuffer(c.vbo)
	}
	if c.prog != (gl.Program{}) {
		c.glctx.DeleteProgram(c.prog)
	}
}

func (c *glesCanvas) begin(cam *overlay.Camera, bg overlay.RGB) {
	glctx := c.glctx
	r, g, b, _ := bg.Floats()
	glctx.Viewport(0, 0, cam.Width, cam.Height)
	glctx.ClearColor(r, g, b, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)

	glctx.UseProgram(c.prog)
	glctx.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	glctx.EnableVertexAttribArray(c.aPos)
	glctx.EnableVertexAttribArray(c.aUV)
	glctx.EnableVertexAttribArray(c.aColor)
	glctx.VertexAttribPointer(c.aPos, 2, gl.FLOAT, false, stride, 0)
	glctx.VertexAttribPointer(c.aUV, 2, gl.FLOAT, false, stride, 8)
	glctx.VertexAttribPointer(c.aColor, 4, gl.FLOAT, false, stride, 16)

	glctx.Uniform2f(c.uCamera, float32(cam.X), float32(cam.Y))
	glctx.Uniform1f(c.uZoom, float32(cam.Zoom))
	glctx.Uniform2f(c.uResolution, float32(cam.Width), float32(cam.Height))
	glctx.ActiveTexture(gl.TEXTURE0)
	glctx.Uniform1i(c.uTex, 0)

	glctx.Enable(gl.BLEND)
	glctx.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (c *glesCanvas) end() {
	if len(c.textBuf) > 0 {
		c.draw(c.texture(c.font, gl.NEAREST), c.textBuf)
		c.textBuf = c.textBuf[:0]
	}
	c.glctx.Disable(gl.BLEND)
	c.glctx.DisableVertexAttribArray(c.aPos)
	c.glctx.DisableVertexAttribArray(c.aUV)
	c.glctx.DisableVertexAttribArray(c.aColor)
}

func (c *glesCanvas) DrawTexture(tex overlay.Texture, dst overlay.Rect) {
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

func (c *glesCanvas) DrawLabel(text string, dst overlay.Rect, col overlay.RGB) {
	x, y := c.font.LabelOrigin(dst, c.labelSize)
	c.textBuf = c.font.AppendQuads(c.textBuf, text, x, y, c.labelSize, col)
}

func (c *glesCanvas) draw(tex gl.Texture, verts []float32) {
	c.glctx.BindTexture(gl.TEXTURE_2D, tex)
	c.glctx.BufferData(gl.ARRAY_BUFFER, f32bytes(verts), gl.STREAM_DRAW)
	c.glctx.DrawArrays(gl.TRIANGLES, 0, len(verts)/8)
}

func (c *glesCanvas) texture(tex overlay.Texture, filter int) gl.Texture {
	if id, ok := c.textures[tex]; ok {
		return id
	}
	img := tex.Image()
	w, h := tex.Size()
	glctx := c.glctx

	id := glctx.CreateTexture()
	glctx.BindTexture(gl.TEXTURE_2D, id)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	glctx.TexImage2D(gl.TEXTURE_2D, 0, int(gl.RGBA), w, h, gl.RGBA, gl.UNSIGNED_BYTE, img.Pix)
	c.textures[tex] = id
	return id
}

func compileShader(glctx gl.Context, kind gl.Enum, src string) (gl.Shader, error) {
	sh := glctx.CreateShader(kind)
	glctx.ShaderSource(sh, src)
	glctx.CompileShader(sh)
	if glctx.GetShaderi(sh, gl.COMPILE_STATUS) == 0 {
		msg := glctx.GetShaderInfoLog(sh)
		glctx.DeleteShader(sh)
		return gl.Shader{}, fmt.Errorf("compile shader: %s", msg)
	}
	return sh, nil
}

func linkProgram(glctx gl.Context, vertSrc, fragSrc string) (gl.Program, error) {
	vs, err := compileShader(glctx, gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return gl.Program{}, err
	}
	fs, err := compileShader(glctx, gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return gl.Program{}, err
	}
	prog := glctx.CreateProgram()
	glctx.AttachShader(prog, vs)
	glctx.AttachShader(prog, fs)
	glctx.LinkProgram(prog)
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)
	if glctx.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		msg := glctx.GetProgramInfoLog(prog)
		glctx.DeleteProgram(prog)
		return gl.Program{}, fmt.Errorf("link program: %s", msg)
	}
	return prog, nil
}
