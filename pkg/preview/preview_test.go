package preview

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/mhollis/hyperlattice/pkg/geometry"
	"github.com/mhollis/hyperlattice/pkg/math4"
	"github.com/mhollis/hyperlattice/pkg/scene"
)

func sphereScene() *scene.Scene {
	sc := scene.New("shells")
	sc.Geometry = geometry.Encode(geometry.BaseSphere, geometry.CoreBase)
	sc.Params.GridDensity = 1
	return sc
}

func TestFieldSliceEvaluate(t *testing.T) {
	sc := sphereScene()
	slice := NewFieldSlice(sc, 0.5, 0.25, 2)

	p := v3.Vec{X: 0.3, Y: -0.7, Z: 1.1}
	want := sc.DistanceAt(math4.V4(p.X, p.Y, p.Z, 0.5)) - 0.25
	if got := slice.Evaluate(p); got != want {
		t.Fatalf("Evaluate = %v, want %v", got, want)
	}
}

func TestFieldSliceBoundingBox(t *testing.T) {
	slice := NewFieldSlice(sphereScene(), 0, 0, 1.5)
	bb := slice.BoundingBox()
	if bb.Min.X != -1.5 || bb.Max.Z != 1.5 {
		t.Fatalf("bounding box = %+v", bb)
	}
}

func TestMeshSphereSceneNonEmpty(t *testing.T) {
	sc := sphereScene()
	opts := DefaultOptions()
	opts.Iso = 0.5
	opts.Cells = 32

	mesh, err := NewMesher().Mesh(sc, opts)
	if err != nil {
		t.Fatalf("Mesh: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("expected non-empty mesh for shell field")
	}
	if mesh.SceneName != "shells" {
		t.Errorf("SceneName = %q", mesh.SceneName)
	}

	if mesh.VertexCount()*3 != len(mesh.Vertices) {
		t.Errorf("vertex count inconsistent")
	}
	if mesh.TriangleCount()*3 != len(mesh.Indices) {
		t.Errorf("triangle count inconsistent")
	}
	if len(mesh.Normals) != len(mesh.Vertices) {
		t.Errorf("normals length %d != vertices length %d", len(mesh.Normals), len(mesh.Vertices))
	}

	// Every vertex stays inside the sampling cube.
	for i := 0; i < len(mesh.Vertices); i++ {
		if v := float64(mesh.Vertices[i]); math.Abs(v) > opts.Bounds+1e-6 {
			t.Fatalf("vertex coordinate %v outside bounds %v", v, opts.Bounds)
		}
	}
}

func TestMeshInvalidOptions(t *testing.T) {
	sc := sphereScene()
	m := NewMesher()

	opts := DefaultOptions()
	opts.Cells = 0
	if _, err := m.Mesh(sc, opts); err == nil {
		t.Error("expected error for zero cells")
	}

	opts = DefaultOptions()
	opts.Bounds = -1
	if _, err := m.Mesh(sc, opts); err == nil {
		t.Error("expected error for negative bounds")
	}
}

func TestMeshHelpers(t *testing.T) {
	var empty Mesh
	if !empty.IsEmpty() || empty.VertexCount() != 0 || empty.TriangleCount() != 0 {
		t.Errorf("empty mesh helpers wrong: %+v", empty)
	}

	m := Mesh{
		Vertices: make([]float32, 9),
		Normals:  make([]float32, 9),
		Indices:  []uint32{0, 1, 2},
	}
	if m.IsEmpty() || m.VertexCount() != 3 || m.TriangleCount() != 1 {
		t.Errorf("mesh helpers wrong: verts=%d tris=%d", m.VertexCount(), m.TriangleCount())
	}
}
