package scene

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"glscenes/internal/graphics"
	"glscenes/internal/graphics/displaylist"
	"glscenes/internal/graphics/geometry"
	renderer "glscenes/internal/graphics/renderer"
	"glscenes/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene draws the lit and textured surfaces of a display list.
type Scene struct {
	shadersDir string
	shader     *graphics.Shader

	// shapes that failed to build, reported once
	failed map[geometry.Shape]bool
}

// NewScene creates the renderable; shaders are read from shadersDir/scene.
func NewScene(shadersDir string) *Scene {
	return &Scene{
		shadersDir: filepath.Join(shadersDir, "scene"),
		failed:     make(map[geometry.Shape]bool),
	}
}

// Init compiles the lighting program
func (s *Scene) Init() error {
	var err error
	s.shader, err = graphics.NewShader(
		filepath.Join(s.shadersDir, "scene.vert"),
		filepath.Join(s.shadersDir, "scene.frag"),
	)
	return err
}

// Shaders returns the program for hot reload.
func (s *Scene) Shaders() []*graphics.Shader {
	return []*graphics.Shader{s.shader}
}

// Render draws every surface command in list order
func (s *Scene) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderScene")()

	list := ctx.List
	s.shader.Use()
	s.shader.SetMatrix4("view", ctx.View)
	s.shader.SetMatrix4("proj", ctx.Proj)
	s.shader.SetVector4("globalAmbient", list.GlobalAmbient)
	s.shader.SetBool("smoothShading", list.Smooth)
	s.shader.SetBool("localViewer", list.LocalViewer)
	s.shader.SetBool("twoSide", list.TwoSide)
	s.shader.SetInt("tex", 0)
	s.setLights(&list.Lights)

	for i := range list.Commands {
		cmd := &list.Commands[i]
		if cmd.Wire() {
			continue
		}
		mesh := s.mesh(ctx.Meshes, cmd)
		if mesh == nil {
			continue
		}
		s.setCommand(ctx.View, cmd)
		mesh.Draw()
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindVertexArray(0)
}

func (s *Scene) mesh(meshes *graphics.MeshCache, cmd *displaylist.Command) *graphics.GPUMesh {
	if cmd.Custom != nil {
		return meshes.Stream(*cmd.Custom)
	}
	if s.failed[cmd.Shape] {
		return nil
	}
	mesh, err := meshes.Get(cmd.Shape)
	if err != nil {
		s.failed[cmd.Shape] = true
		slog.Error("skipping shape", "kind", cmd.Shape.Kind, "err", err)
		return nil
	}
	return mesh
}

func (s *Scene) setLights(lights *[displaylist.MaxLights]displaylist.Light) {
	for i, li := range lights {
		p := fmt.Sprintf("lights[%d].", i)
		s.shader.SetBool(p+"enabled", li.Enabled)
		if !li.Enabled {
			continue
		}
		s.shader.SetVector4(p+"position", li.Position)
		s.shader.SetVector4(p+"ambient", li.Ambient)
		s.shader.SetVector4(p+"diffuse", li.Diffuse)
		s.shader.SetVector4(p+"specular", li.Specular)
		s.shader.SetFloat(p+"constantAttenuation", li.ConstantAttenuation)
		s.shader.SetFloat(p+"linearAttenuation", li.LinearAttenuation)
		s.shader.SetFloat(p+"quadraticAttenuation", li.QuadraticAttenuation)
		s.shader.SetFloat(p+"spotCutoff", li.SpotCutoff)
		s.shader.SetFloat(p+"spotExponent", li.SpotExponent)
		s.shader.SetVector3(p+"spotDirection", li.SpotDirection)
	}
}

func (s *Scene) setCommand(view mgl32.Mat4, cmd *displaylist.Command) {
	s.shader.SetMatrix4("model", cmd.Model)
	s.shader.SetMatrix3("normalMatrix", NormalMatrix(view, cmd.Model))

	m := cmd.Material
	s.shader.SetVector4("material.ambient", m.Ambient)
	s.shader.SetVector4("material.diffuse", m.Diffuse)
	s.shader.SetVector4("material.specular", m.Specular)
	s.shader.SetVector4("material.emission", m.Emission)
	s.shader.SetFloat("material.shininess", m.Shininess)

	s.shader.SetBool("unlit", cmd.Unlit)
	s.shader.SetVector4("color", cmd.Color)

	tex := cmd.Texture
	if tex.Env == displaylist.TexNone || tex.ID == 0 {
		s.shader.SetInt("texEnv", int32(displaylist.TexNone))
		return
	}
	s.shader.SetInt("texEnv", int32(tex.Env))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.ID)
	graphics.ApplySampler(tex.Sampler)
}

// NormalMatrix is the inverse transpose of the model-view upper 3x3.
// A singular model-view yields the plain upper 3x3.
func NormalMatrix(view, model mgl32.Mat4) mgl32.Mat3 {
	mv := view.Mul4(model).Mat3()
	if mv.Det() == 0 {
		return mv
	}
	return mv.Inv().Transpose()
}

// SetViewport is a no-op; the projection comes from the camera.
func (s *Scene) SetViewport(width, height int) {}

// Dispose deletes the program
func (s *Scene) Dispose() {
	if s.shader != nil {
		s.shader.Delete()
	}
}
