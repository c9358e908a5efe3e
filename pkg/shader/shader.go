// Package shader emits a self-contained GLSL ES 3.0 fragment shader
// implementing the same pipeline as the Go kernel: per-plane rotations
// in the fixed order, the clamped perspective projection, the geometry
// index codec, all eight base fields, both core warps, and the
// dispatcher. Every tuning constant is formatted from the Go constant it
// mirrors, so the two renditions cannot drift apart silently.
package shader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mhollis/hyperlattice/pkg/geometry"
	"github.com/mhollis/hyperlattice/pkg/math4"
)

// Options controls the emitted shader.
type Options struct {
	// FuncName is the name of the emitted distance function.
	FuncName string
	// IncludeMain adds a minimal main() that shades v_position by the
	// field value. Disable it to paste the kernel into a larger shader.
	IncludeMain bool
}

// DefaultOptions returns the reference emitter settings.
func DefaultOptions() Options {
	return Options{FuncName: "fieldDistance", IncludeMain: true}
}

// fl formats a Go float64 as a GLSL float literal at full precision.
func fl(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Emit generates the shader source. The output is deterministic for a
// given set of options.
func Emit(opts Options) string {
	if opts.FuncName == "" {
		opts.FuncName = DefaultOptions().FuncName
	}

	var b strings.Builder
	w := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	w("#version 300 es")
	w("precision highp float;")
	w("precision highp int;")
	w("")
	w("// Six plane angles in pipeline order: xy, xz, yz, xw, yw, zw.")
	w("uniform float u_angles[6];")
	w("uniform int u_geometry;")
	w("uniform float u_gridDensity;")
	w("uniform float u_morphFactor;")
	w("uniform float u_chaos;")
	w("uniform float u_dimension;")
	w("uniform float u_speed;")
	w("uniform float u_time;")
	w("")

	// Per-plane rotations, applied in the fixed order xy, xz, yz, xw,
	// yw, zw. Each maps the plane's first basis vector toward its second
	// for positive angles.
	planes := []struct {
		name string
		a, b string
	}{
		{"rotXY", "x", "y"},
		{"rotXZ", "x", "z"},
		{"rotYZ", "y", "z"},
		{"rotXW", "x", "w"},
		{"rotYW", "y", "w"},
		{"rotZW", "z", "w"},
	}
	for _, p := range planes {
		w("vec4 %s(vec4 p, float a) {", p.name)
		w("    float c = cos(a);")
		w("    float s = sin(a);")
		w("    vec4 r = p;")
		w("    r.%s = c * p.%s - s * p.%s;", p.a, p.a, p.b)
		w("    r.%s = s * p.%s + c * p.%s;", p.b, p.a, p.b)
		w("    return r;")
		w("}")
		w("")
	}

	w("vec4 applyRotation(vec4 p) {")
	w("    p = rotXY(p, u_angles[0]);")
	w("    p = rotXZ(p, u_angles[1]);")
	w("    p = rotYZ(p, u_angles[2]);")
	w("    p = rotXW(p, u_angles[3]);")
	w("    p = rotYW(p, u_angles[4]);")
	w("    p = rotZW(p, u_angles[5]);")
	w("    return p;")
	w("}")
	w("")

	w("vec3 project4Dto3D(vec4 p) {")
	w("    float denom = %s + p.w;", fl(math4.ProjectionDistance))
	w("    float eps = %s;", fl(math4.ProjectionEpsilon))
	w("    if (abs(denom) < eps) {")
	w("        denom = denom >= 0.0 ? eps : -eps;")
	w("    }")
	w("    return p.xyz * (%s / denom);", fl(math4.ProjectionDistance))
	w("}")
	w("")

	w("float cellEdge(float f) {")
	w("    return min(f, 1.0 - f);")
	w("}")
	w("")

	// The eight base fields, dispatched by base index.
	w("float baseField(vec4 p, int base) {")
	w("    float s = u_gridDensity * %s;", fl(geometry.LatticeScale))
	w("    float g = u_gridDensity;")
	w("    float m = u_morphFactor;")
	w("    if (base == 0) { // tetrahedron lattice")
	w("        float d = cellEdge(fract(p.x * s));")
	w("        d = min(d, cellEdge(fract(p.y * s)));")
	w("        d = min(d, cellEdge(fract(p.z * s)));")
	w("        d = min(d, cellEdge(fract(p.w * s)));")
	w("        return d * m;")
	w("    }")
	w("    if (base == 1) { // hypercube dual lattice")
	w("        float d = abs(fract(p.x * s) - 0.5);")
	w("        d = min(d, abs(fract(p.y * s) - 0.5));")
	w("        d = min(d, abs(fract(p.z * s) - 0.5));")
	w("        d = min(d, abs(fract(p.w * s) - 0.5));")
	w("        return d * m;")
	w("    }")
	w("    if (base == 2) { // sphere shells")
	w("        float r = length(p);")
	w("        float shells = abs(fract(r * g) - 0.5) * 2.0;")
	w("        float harmonic = 0.15 * sin(3.0 * atan(p.y, p.x));")
	w("        return (shells + harmonic) * m;")
	w("    }")
	w("    if (base == 3) { // torus")
	w("        float ring = length(p.xy) - 2.0;")
	w("        float tube = sqrt(ring * ring + p.z * p.z);")
	w("        float crossTerm = min(cellEdge(fract(p.x * s)), cellEdge(fract(p.w * s)));")
	w("        return (tube + 0.5 * crossTerm) * m;")
	w("    }")
	w("    if (base == 4) { // klein")
	w("        float u = atan(p.y, p.x);")
	w("        float v = atan(p.w, p.z);")
	w("        return (sin(2.0 * u) * sin(3.0 * v) + 0.3 * length(p)) * m;")
	w("    }")
	w("    if (base == 5) { // fractal fold")
	w("        vec4 q = abs(2.0 * fract(p * s) - 1.0);")
	w("        vec4 e = max(q - 0.5, 0.0);")
	w("        float outside = length(e);")
	w("        float inside = min(max(max(q.x, q.y), max(q.z, q.w)) - 0.5, 0.0);")
	w("        return (outside + inside) * m;")
	w("    }")
	w("    if (base == 6) { // wave")
	w("        float t = u_time * u_speed;")
	w("        return sin(p.x * g - t) * sin(p.y * g - t * 1.3) * sin(p.z * g - t * 0.7) * m;")
	w("    }")
	w("    // crystal")
	w("    float d = abs(fract(p.x * s) - 0.5);")
	w("    d = max(d, abs(fract(p.y * s) - 0.5));")
	w("    d = max(d, abs(fract(p.z * s) - 0.5));")
	w("    d = max(d, abs(fract(p.w * s) - 0.5));")
	w("    return (0.5 - d) * m;")
	w("}")
	w("")

	w("float warpAmplitude() {")
	w("    return 0.3 * clamp(u_morphFactor, 0.0, 1.0) + 0.2 * clamp(u_dimension - 3.0, 0.0, 1.0);")
	w("}")
	w("")
	w("float blendWeight() {")
	w("    return %s + %s * clamp(u_morphFactor, 0.0, 1.0);", fl(geometry.BlendFloor), fl(geometry.BlendRange))
	w("}")
	w("")
	w("float coreScale(int base) {")
	w("    return 1.0 + 0.25 * float(base);")
	w("}")
	w("")

	w("vec3 warpHypersphere(vec3 p, int base) {")
	w("    float w = sin(length(p) * coreScale(base) + u_time * %s) * warpAmplitude();", fl(geometry.HyperspherePhaseRate))
	w("    vec3 proj = project4Dto3D(applyRotation(vec4(p, w)));")
	w("    return mix(p, proj, blendWeight());")
	w("}")
	w("")

	inv := fl(1.0 / 1.7320508075688772) // 1/sqrt(3)
	w("vec3 warpHypertetra(vec3 p, int base) {")
	w("    const vec3 c0 = vec3(%s, %s, %s);", inv, inv, inv)
	w("    const vec3 c1 = vec3(%s, -%s, -%s);", inv, inv, inv)
	w("    const vec3 c2 = vec3(-%s, %s, -%s);", inv, inv, inv)
	w("    const vec3 c3 = vec3(-%s, -%s, %s);", inv, inv, inv)
	w("    float d0 = dot(p, c0);")
	w("    float d1 = dot(p, c1);")
	w("    float d2 = dot(p, c2);")
	w("    float d3 = dot(p, c3);")
	w("    float sum = d0 + d1 + d2 + d3;")
	w("    float minAbs = min(min(abs(d0), abs(d1)), min(abs(d2), abs(d3)));")
	w("    float w = sin(sum * coreScale(base) + u_time * %s) * warpAmplitude();", fl(geometry.HypertetraPhaseRate))
	w("    vec3 proj = project4Dto3D(applyRotation(vec4(p, w)));")
	w("    float weight = blendWeight() * clamp(minAbs, 0.0, 1.0);")
	w("    return mix(p, proj, weight);")
	w("}")
	w("")

	// Floor modulus, so negative and out-of-range indices wrap the same
	// way the CPU codec does.
	w("int wrapMod(int i, int m) {")
	w("    float fi = float(i);")
	w("    float fm = float(m);")
	w("    return int(fi - floor(fi / fm) * fm);")
	w("}")
	w("")

	w("float %s(vec4 p) {", opts.FuncName)
	w("    int base = wrapMod(u_geometry, 8);")
	w("    int tier = int(floor(float(u_geometry) / 8.0));")
	w("    int core = wrapMod(tier, 3);")
	w("")
	w("    vec4 rotated = applyRotation(p);")
	w("    vec3 working = project4Dto3D(rotated);")
	w("")
	w("    if (core == 1) {")
	w("        working = warpHypersphere(working, base);")
	w("    } else if (core == 2) {")
	w("        working = warpHypertetra(working, base);")
	w("    }")
	w("")
	w("    vec4 q = vec4(working, rotated.w);")
	w("    float d = baseField(q, base);")
	w("    d += u_chaos * %s * sin(%s * q.x + %s * q.y + %s * q.z + u_time);",
		fl(geometry.ChaosScale), fl(geometry.ChaosFreqX), fl(geometry.ChaosFreqY), fl(geometry.ChaosFreqZ))
	w("    return d;")
	w("}")

	if opts.IncludeMain {
		w("")
		w("in vec4 v_position;")
		w("out vec4 fragColor;")
		w("")
		w("void main() {")
		w("    float d = %s(v_position);", opts.FuncName)
		w("    fragColor = vec4(vec3(clamp(d, 0.0, 1.0)), 1.0);")
		w("}")
	}

	return b.String()
}
