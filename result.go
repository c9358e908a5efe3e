package hyperlattice

import "github.com/mhollis/hyperlattice/pkg/scene"

// EvalErrorData is a JSON-serializable evaluation error.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// WarningData is a JSON-serializable advisory finding.
type WarningData struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SceneData is the evaluated scene in transport form: the field value at
// each sample point plus the composed rotation matrix for GPU uniform
// upload.
type SceneData struct {
	scene *scene.Scene

	Name         string      `json:"name"`
	Geometry     int         `json:"geometry"`
	GeometryName string      `json:"geometryName"`
	Time         float64     `json:"time"`
	Distances    []float64   `json:"distances"`
	Matrix       [16]float32 `json:"matrix"` // column-major
}

// MeshData is the JSON-serializable preview mesh.
type MeshData struct {
	Vertices  []float32 `json:"vertices"`
	Normals   []float32 `json:"normals"`
	Indices   []uint32  `json:"indices"`
	SceneName string    `json:"sceneName"`
}

// EvalResult is the full result of one evaluation.
type EvalResult struct {
	Scene    *SceneData      `json:"scene,omitempty"`
	Mesh     *MeshData       `json:"mesh,omitempty"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []WarningData   `json:"warnings"`
}

// OK reports whether evaluation produced a scene without errors.
func (r EvalResult) OK() bool {
	return len(r.Errors) == 0 && r.Scene != nil
}
