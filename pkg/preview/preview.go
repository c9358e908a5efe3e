// Package preview implements the CPU preview path: a scene's field is
// exposed as a signed distance function over a fixed w-slice and meshed
// with marching cubes. The Mesher abstraction keeps the meshing backend
// swappable without changing the rest of the system.
package preview

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/mhollis/hyperlattice/pkg/math4"
	"github.com/mhollis/hyperlattice/pkg/scene"
)

// Options controls where and how finely a scene is meshed.
type Options struct {
	SliceW float64 // fixed w coordinate of the sampled 3D slice
	Iso    float64 // iso level extracted as the surface
	Bounds float64 // half-extent of the sampling cube around the origin
	Cells  int     // marching cubes resolution per axis
}

// DefaultOptions returns the reference preview settings.
func DefaultOptions() Options {
	return Options{
		SliceW: 0,
		Iso:    0.25,
		Bounds: 2,
		Cells:  64,
	}
}

// Mesher turns a scene into a preview mesh.
type Mesher interface {
	Mesh(sc *scene.Scene, opts Options) (*Mesh, error)
}

// Compile-time interface checks.
var (
	_ Mesher   = (*SDFXMesher)(nil)
	_ sdf.SDF3 = (*FieldSlice)(nil)
)

// FieldSlice adapts a scene at a fixed w offset and iso level to
// sdf.SDF3, so the 24-variant field can flow through any sdfx renderer.
type FieldSlice struct {
	scene  *scene.Scene
	sliceW float64
	iso    float64
	bounds float64
}

// NewFieldSlice wraps a scene as an SDF3 over the cube of the given
// half-extent.
func NewFieldSlice(sc *scene.Scene, sliceW, iso, bounds float64) *FieldSlice {
	return &FieldSlice{scene: sc, sliceW: sliceW, iso: iso, bounds: bounds}
}

// Evaluate returns the field value at (x, y, z, sliceW) minus the iso
// level, negative inside the extracted surface.
func (f *FieldSlice) Evaluate(p v3.Vec) float64 {
	return f.scene.DistanceAt(math4.V4(p.X, p.Y, p.Z, f.sliceW)) - f.iso
}

// BoundingBox returns the sampling cube.
func (f *FieldSlice) BoundingBox() sdf.Box3 {
	b := f.bounds
	return sdf.Box3{
		Min: v3.Vec{X: -b, Y: -b, Z: -b},
		Max: v3.Vec{X: b, Y: b, Z: b},
	}
}

// SDFXMesher implements Mesher using sdfx marching cubes.
type SDFXMesher struct{}

// NewMesher returns a new SDFXMesher.
func NewMesher() *SDFXMesher {
	return &SDFXMesher{}
}

// Mesh extracts the iso-surface of the scene's w-slice as a flat
// triangle mesh.
func (m *SDFXMesher) Mesh(sc *scene.Scene, opts Options) (*Mesh, error) {
	if opts.Cells <= 0 {
		return nil, fmt.Errorf("preview: cells must be positive, got %d", opts.Cells)
	}
	if opts.Bounds <= 0 {
		return nil, fmt.Errorf("preview: bounds must be positive, got %v", opts.Bounds)
	}

	slice := NewFieldSlice(sc, opts.SliceW, opts.Iso, opts.Bounds)

	renderer := render.NewMarchingCubesUniform(opts.Cells)
	triangles := render.ToTriangles(slice, renderer)

	numVerts := len(triangles) * 3
	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &Mesh{
		Vertices:  vertices,
		Normals:   normals,
		Indices:   indices,
		SceneName: sc.Name,
	}, nil
}
