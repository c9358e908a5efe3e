package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/mhollis/hyperlattice/pkg/geometry"
	"github.com/mhollis/hyperlattice/pkg/math4"
	"github.com/mhollis/hyperlattice/pkg/scene"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms scene-script Lisp source before passing it
// to zygomys. It performs three transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: grid-density -> grid_density
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
//  3. ; line comments become // comments, zygomys's comment syntax.
//
// All transformations respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus
		// operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument
// list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value; treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_torus) and plain strings
// ("torus").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toBase converts a keyword or string to a geometry.Base.
func toBase(s zygo.Sexp) (geometry.Base, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected base keyword (:tetrahedron .. :crystal): %w", err)
	}
	switch strings.ToLower(name) {
	case "tetrahedron":
		return geometry.BaseTetrahedron, nil
	case "hypercube":
		return geometry.BaseHypercube, nil
	case "sphere":
		return geometry.BaseSphere, nil
	case "torus":
		return geometry.BaseTorus, nil
	case "klein":
		return geometry.BaseKlein, nil
	case "fractal":
		return geometry.BaseFractal, nil
	case "wave":
		return geometry.BaseWave, nil
	case "crystal":
		return geometry.BaseCrystal, nil
	}
	return 0, fmt.Errorf("invalid base geometry %q", name)
}

// toCore converts a keyword or string to a geometry.Core.
func toCore(s zygo.Sexp) (geometry.Core, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected core keyword (:base, :hypersphere, :hypertetra): %w", err)
	}
	switch strings.ToLower(name) {
	case "base":
		return geometry.CoreBase, nil
	case "hypersphere":
		return geometry.CoreHypersphere, nil
	case "hypertetra", "hypertetrahedron":
		return geometry.CoreHypertetra, nil
	}
	return 0, fmt.Errorf("invalid core %q", name)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs all scene-script builtins into a zygomys
// environment. The builtins mutate the provided scene during evaluation.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to recognizable string
// literals.
func registerBuiltins(env *zygo.Zlisp, sc *scene.Scene) {

	// -----------------------------------------------------------------------
	// (scene "name" ...)
	// Inner forms run before this call and mutate the scene directly; the
	// scene form itself just names the result.
	// -----------------------------------------------------------------------
	env.AddFunction("scene", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("scene requires a name argument")
		}
		n, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("scene: name: %w", err)
		}
		sc.Name = n
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (angles :xy 0.5 :xw -0.2 ...)
	// -----------------------------------------------------------------------
	env.AddFunction("angles", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		for kw, v := range pa.kw {
			plane, err := math4.ParsePlane(kw)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("angles: %w", err)
			}
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("angles: %s: %w", kw, err)
			}
			switch plane {
			case math4.PlaneXY:
				sc.Angles.XY = f
			case math4.PlaneXZ:
				sc.Angles.XZ = f
			case math4.PlaneYZ:
				sc.Angles.YZ = f
			case math4.PlaneXW:
				sc.Angles.XW = f
			case math4.PlaneYW:
				sc.Angles.YW = f
			case math4.PlaneZW:
				sc.Angles.ZW = f
			}
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (params :grid-density 8 :morph-factor 0.5 :chaos 0.1
	//         :dimension 3.8 :speed 2)
	// -----------------------------------------------------------------------
	env.AddFunction("params", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		for kw, v := range pa.kw {
			f, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("params: %s: %w", kw, err)
			}
			switch kw {
			case "grid-density":
				sc.Params.GridDensity = f
			case "morph-factor":
				sc.Params.MorphFactor = f
			case "chaos":
				sc.Params.Chaos = f
			case "dimension":
				sc.Params.Dimension = f
			case "speed":
				sc.Params.Speed = f
			default:
				return zygo.SexpNull, fmt.Errorf("params: unknown parameter %q", kw)
			}
		}
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (geometry 11)
	// (geometry :base :torus :core :hypersphere)
	// -----------------------------------------------------------------------
	env.AddFunction("geometry", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		if len(pa.positional) > 0 {
			f, err := toFloat64(pa.positional[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("geometry: index: %w", err)
			}
			sc.Geometry = int(f)
			return zygo.SexpNull, nil
		}

		base := geometry.BaseTetrahedron
		core := geometry.CoreBase
		if v, ok := pa.kw["base"]; ok {
			b, err := toBase(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("geometry: base: %w", err)
			}
			base = b
		}
		if v, ok := pa.kw["core"]; ok {
			c, err := toCore(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("geometry: core: %w", err)
			}
			core = c
		}
		sc.Geometry = geometry.Encode(base, core)
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (sample x y z w)
	// -----------------------------------------------------------------------
	env.AddFunction("sample", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("sample requires exactly 4 coordinates, got %d", len(args))
		}
		var c [4]float64
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("sample: coordinate %d: %w", i, err)
			}
			c[i] = f
		}
		sc.Samples = append(sc.Samples, math4.V4(c[0], c[1], c[2], c[3]))
		return zygo.SexpNull, nil
	})

	// -----------------------------------------------------------------------
	// (at-time 1.5)
	// -----------------------------------------------------------------------
	env.AddFunction("at_time", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("at-time requires exactly 1 argument, got %d", len(args))
		}
		f, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("at-time: %w", err)
		}
		sc.Time = f
		return zygo.SexpNull, nil
	})
}
