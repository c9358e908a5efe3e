// Package hyperlattice is the embedding facade: script in, evaluated
// scene out. It wires the script engine, scene validation, the field
// dispatcher, and the preview mesher behind one JSON-friendly API so a
// host (GUI binding, service, CLI) needs exactly one call per frame.
package hyperlattice

import (
	"log"

	"github.com/mhollis/hyperlattice/pkg/engine"
	"github.com/mhollis/hyperlattice/pkg/geometry"
	"github.com/mhollis/hyperlattice/pkg/math4"
	"github.com/mhollis/hyperlattice/pkg/preview"
	"github.com/mhollis/hyperlattice/pkg/scene"
	"github.com/mhollis/hyperlattice/pkg/shader"
)

// App bundles the evaluation pipeline. It is safe for concurrent use.
type App struct {
	engine      *engine.Engine
	mesher      preview.Mesher
	previewOpts preview.Options
}

// New creates an App with the default mesher and preview settings.
func New() *App {
	return &App{
		engine:      engine.NewEngine(),
		mesher:      preview.NewMesher(),
		previewOpts: preview.DefaultOptions(),
	}
}

// SetPreviewOptions overrides the preview meshing settings used by
// EvaluateMesh.
func (a *App) SetPreviewOptions(opts preview.Options) {
	a.previewOpts = opts
}

// Evaluate runs a scene script and returns the evaluated scene: field
// values at every sample point, the composed rotation matrix, and any
// errors or warnings. Validation warnings never block evaluation;
// validation errors do.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Errors:   []EvalErrorData{},
		Warnings: []WarningData{},
	}

	sc, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	vr := scene.Validate(sc)
	for _, w := range vr.Warnings {
		result.Warnings = append(result.Warnings, WarningData{
			Field:   w.Field,
			Message: w.Message,
		})
	}
	if !vr.OK() {
		for _, e := range vr.Errors {
			result.Errors = append(result.Errors, EvalErrorData{
				Message: e.Error(),
			})
		}
		return result
	}

	result.Scene = newSceneData(sc)
	return result
}

// EvaluateMesh is Evaluate plus a marching-cubes preview mesh of the
// scene's w-slice.
func (a *App) EvaluateMesh(source string) EvalResult {
	result := a.Evaluate(source)
	if result.Scene == nil {
		return result
	}

	sc := result.Scene.scene
	mesh, err := a.mesher.Mesh(sc, a.previewOpts)
	if err != nil {
		log.Printf("preview mesh error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "preview meshing failed: " + err.Error(),
		})
		return result
	}

	result.Mesh = &MeshData{
		Vertices:  mesh.Vertices,
		Normals:   mesh.Normals,
		Indices:   mesh.Indices,
		SceneName: mesh.SceneName,
	}
	return result
}

// Shader returns the GLSL rendition of the kernel, for hosts that render
// on the GPU instead of sampling on the CPU.
func (a *App) Shader() string {
	return shader.Emit(shader.DefaultOptions())
}

// newSceneData evaluates the scene into its transport form.
func newSceneData(sc *scene.Scene) *SceneData {
	rotor := math4.FromAngles(sc.Angles).Normalize()
	return &SceneData{
		scene:        sc,
		Name:         sc.Name,
		Geometry:     sc.Geometry,
		GeometryName: geometry.GeometryName(sc.Geometry),
		Time:         sc.Time,
		Distances:    sc.Distances(),
		Matrix:       rotor.ToMatrix().Float32(),
	}
}
