// Package renderer draws scenes with OpenGL.
package renderer

import (
	"fmt"
	"image"
	gomath "math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/roam3d/internal/engine/debug"
	"github.com/Faultbox/roam3d/internal/engine/lighting"
	"github.com/Faultbox/roam3d/internal/engine/model"
	"github.com/Faultbox/roam3d/internal/engine/scene"
	"github.com/Faultbox/roam3d/internal/engine/shader"
	"github.com/Faultbox/roam3d/internal/engine/texture"
	"github.com/Faultbox/roam3d/internal/logger"
	"github.com/Faultbox/roam3d/pkg/math"
)

// ImageSource resolves texture keys to decoded images.
type ImageSource interface {
	LoadImage(path string) (*image.RGBA, error)
}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	MSAA   bool
}

// boundsPadding keeps outlines off coplanar mesh faces.
const boundsPadding = 0.01

var (
	boundsColor   = [3]float32{0.2, 1, 0.3}
	selectedColor = [3]float32{1, 0.8, 0.1}
)

// Renderer handles all OpenGL rendering. GPU copies of meshes and textures
// are created on first use and kept until Release.
type Renderer struct {
	config Config
	images ImageSource

	phong *shader.Program
	lines *shader.Program

	lineVAO uint32
	lineVBO uint32
	lineBuf []float32

	meshes   map[*model.Mesh]*MeshBuffer
	textures map[string]*texture.Texture // nil marks a key that failed to load

	closed bool
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, images ImageSource) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		images:   images,
		meshes:   make(map[*model.Mesh]*MeshBuffer),
		textures: make(map[string]*texture.Texture),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	if cfg.MSAA {
		gl.Enable(gl.MULTISAMPLE)
	}
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.phong, err = shader.New(phongVertexSrc, phongFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("phong shader: %w", err)
	}
	r.lines, err = shader.New(lineVertexSrc, lineFragmentSrc)
	if err != nil {
		r.phong.Delete()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	gl.GenVertexArrays(1, &r.lineVAO)
	gl.BindVertexArray(r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("renderer created",
		zap.Uint32("phong", r.phong.ID),
		zap.Uint32("lines", r.lines.ID),
	)
	return r, nil
}

// Resize handles framebuffer resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Draw renders sc from its active camera.
func (r *Renderer) Draw(sc *scene.Scene) {
	c := sc.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	cam := sc.Camera()
	if cam == nil {
		return
	}
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()

	r.phong.Use()
	r.phong.SetMat4("uView", view)
	r.phong.SetMat4("uProjection", proj)
	r.phong.SetVec3("uViewPos", cam.Position().Array())
	r.setLights(sc.Lights)
	r.phong.SetInt("uTexture", 0)

	for _, e := range sc.Entities {
		if e.Hidden || e.Mesh == nil {
			continue
		}
		buf, err := r.meshBuffer(e.Mesh)
		if err != nil {
			logger.Warn("skipping entity", zap.String("entity", e.Name), zap.Error(err))
			continue
		}

		r.phong.SetMat4("uModel", e.ModelMatrix())
		r.setMaterial(e.Material)
		r.phong.SetVec3("uColor", e.Color)

		tex := r.texture(e.Texture)
		r.phong.SetBool("uHasTexture", tex != nil)
		if tex != nil {
			tex.Bind(0)
		}
		buf.Draw()
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if sc.ShowBounds {
		r.drawBounds(sc, proj.Mul(view))
	}
	gl.UseProgram(0)
}

func (r *Renderer) setLights(rig lighting.Rig) {
	p := r.phong
	p.SetVec3("uAmbient.color", rig.Ambient.Color)
	p.SetFloat("uAmbient.intensity", rig.Ambient.Intensity)

	p.SetVec3("uDirectional.direction", rig.Directional.Direction.Array())
	p.SetVec3("uDirectional.color", rig.Directional.Color)
	p.SetFloat("uDirectional.intensity", rig.Directional.Intensity)

	s := rig.Spot
	p.SetVec3("uSpot.position", s.Position.Array())
	p.SetVec3("uSpot.direction", s.Direction.Array())
	p.SetVec3("uSpot.color", s.Color)
	p.SetFloat("uSpot.intensity", s.Intensity)
	p.SetFloat("uSpot.cosCutoff", float32(gomath.Cos(float64(s.Cutoff))))
	p.SetFloat("uSpot.kc", s.Constant)
	p.SetFloat("uSpot.kl", s.Linear)
	p.SetFloat("uSpot.kq", s.Quadratic)
}

func (r *Renderer) setMaterial(m lighting.Material) {
	r.phong.SetVec3("uMaterial.ka", m.Ambient)
	r.phong.SetVec3("uMaterial.kd", m.Diffuse)
	r.phong.SetVec3("uMaterial.ks", m.Specular)
	r.phong.SetFloat("uMaterial.ns", m.Shininess)
}

// drawBounds outlines every visible entity's collision box; the selected
// entity is highlighted.
func (r *Renderer) drawBounds(sc *scene.Scene, viewProj math.Mat4) {
	r.lines.Use()
	r.lines.SetMat4("uViewProjection", viewProj)

	selected := sc.Selected()
	for _, e := range sc.Entities {
		lines := debug.OrientedBoxLines(debug.Pad(e.CollisionBounds(), boundsPadding), e.ModelMatrix())
		if lines == nil {
			continue
		}
		color := boundsColor
		if e == selected {
			color = selectedColor
		}
		r.lines.SetVec3("uColor", color)
		r.drawLines(lines)
	}
}

func (r *Renderer) drawLines(vertices []float32) {
	r.lineBuf = append(r.lineBuf[:0], vertices...)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.lineBuf)*4, gl.Ptr(r.lineBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(r.lineBuf)/3))
	gl.BindVertexArray(0)
}

func (r *Renderer) meshBuffer(mesh *model.Mesh) (*MeshBuffer, error) {
	if buf, ok := r.meshes[mesh]; ok {
		return buf, nil
	}
	buf, err := NewMeshBuffer(mesh)
	if err != nil {
		return nil, err
	}
	r.meshes[mesh] = buf
	logger.Debug("mesh uploaded",
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("faces", mesh.FaceCount()),
	)
	return buf, nil
}

func (r *Renderer) texture(key string) *texture.Texture {
	if key == "" || r.images == nil {
		return nil
	}
	if tex, ok := r.textures[key]; ok {
		return tex
	}

	img, err := r.images.LoadImage(key)
	if err != nil {
		logger.Warn("texture unavailable, using flat color", zap.String("texture", key), zap.Error(err))
		r.textures[key] = nil
		return nil
	}
	tex := texture.Upload(img)
	r.textures[key] = tex
	logger.Debug("texture uploaded",
		zap.String("texture", key),
		zap.Int("width", tex.Width),
		zap.Int("height", tex.Height),
	)
	return tex
}

// Cached returns the number of meshes and textures held on the GPU.
func (r *Renderer) Cached() (meshes, textures int) {
	for _, t := range r.textures {
		if t != nil {
			textures++
		}
	}
	return len(r.meshes), textures
}

// Release frees every cached mesh and texture. Called on stage switch;
// the next Draw uploads what the new stage needs.
func (r *Renderer) Release() error {
	var err error
	for mesh, buf := range r.meshes {
		err = multierr.Append(err, buf.Close())
		delete(r.meshes, mesh)
	}
	for key, tex := range r.textures {
		if tex != nil {
			tex.Delete()
		}
		delete(r.textures, key)
	}
	return multierr.Append(err, glError("release textures"))
}

// Close releases all GPU resources. Safe to call twice.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	logger.Info("closing renderer")

	err := r.Release()
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
		r.lineVAO = 0
	}
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
		r.lineVBO = 0
	}
	r.phong.Delete()
	r.lines.Delete()
	return multierr.Append(err, glError("close renderer"))
}
