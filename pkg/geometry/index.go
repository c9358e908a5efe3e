package geometry

import (
	"fmt"
	"math"
)

// Base selects one of the eight base scalar fields.
type Base int

// The eight base fields, index 0-7.
const (
	BaseTetrahedron Base = iota
	BaseHypercube
	BaseSphere
	BaseTorus
	BaseKlein
	BaseFractal
	BaseWave
	BaseCrystal
)

// Core selects the warp layered on top of the base field.
type Core int

// The three cores, index 0-2.
const (
	CoreBase Core = iota
	CoreHypersphere
	CoreHypertetra
)

var baseNames = [8]string{
	"Tetrahedron", "Hypercube", "Sphere", "Torus",
	"Klein", "Fractal", "Wave", "Crystal",
}

var coreNames = [3]string{"Base", "Hypersphere", "Hypertetra"}

func (b Base) String() string {
	if b >= 0 && int(b) < len(baseNames) {
		return baseNames[b]
	}
	return fmt.Sprintf("Base(%d)", int(b))
}

func (c Core) String() string {
	if c >= 0 && int(c) < len(coreNames) {
		return coreNames[c]
	}
	return fmt.Sprintf("Core(%d)", int(c))
}

// Encode packs a base and core into the 0-23 geometry index.
func Encode(base Base, core Core) int {
	return int(core)*8 + int(base)
}

// Decode unpacks a geometry index into (base, core) using a
// wraparound-safe floor modulus, so any integer, including negative or
// out-of-range values, lands on a valid variant instead of an
// out-of-bounds dispatch.
func Decode(index int) (Base, Core) {
	i := float64(index)
	base := i - math.Floor(i/8)*8
	tier := math.Floor(i / 8)
	core := tier - math.Floor(tier/3)*3
	return Base(base), Core(core)
}

// GeometryName returns the display name of a geometry index, e.g.
// "Torus" for 3 and "Hypersphere Torus" for 11.
func GeometryName(index int) string {
	base, core := Decode(index)
	if core == CoreBase {
		return base.String()
	}
	return core.String() + " " + base.String()
}
