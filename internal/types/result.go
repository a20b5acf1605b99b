package types

import (
	"sort"
	"strconv"
	"strings"

	vmath "github.com/oxygene76/vector3/pkg/math"
)

// Tuple is the plain (x, y, z) view of a vector
type Tuple [3]float64

// OperationResult represents the result of one vector operation
type OperationResult struct {
	Operation string            `json:"operation" yaml:"operation"`
	Operands  []Tuple           `json:"operands,omitempty" yaml:"operands,omitempty"`
	Params    map[string]Number `json:"params,omitempty" yaml:"params,omitempty"`
	Vector    *Tuple            `json:"vector,omitempty" yaml:"vector,omitempty"`
	Scalar    *Number           `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Unit      string            `json:"unit,omitempty" yaml:"unit,omitempty"`
	Checks    map[string]bool   `json:"checks,omitempty" yaml:"checks,omitempty"`
	Undefined bool              `json:"undefined,omitempty" yaml:"undefined,omitempty"`
}

// NewVectorResult creates a result holding a vector
func NewVectorResult(op string, v *vmath.Vector3, operands ...*vmath.Vector3) *OperationResult {
	t := Tuple(v.ToTuple())
	r := newResult(op, operands)
	r.Vector = &t
	return r
}

// NewScalarResult creates a result holding a scalar
func NewScalarResult(op string, s float64, operands ...*vmath.Vector3) *OperationResult {
	n := Number(s)
	r := newResult(op, operands)
	r.Scalar = &n
	return r
}

// NewChecksResult creates a result holding named predicate outcomes
func NewChecksResult(op string, checks map[string]bool, operands ...*vmath.Vector3) *OperationResult {
	r := newResult(op, operands)
	r.Checks = checks
	return r
}

// NewUndefinedResult creates a result for an operation with no defined value
func NewUndefinedResult(op string, operands ...*vmath.Vector3) *OperationResult {
	r := newResult(op, operands)
	r.Undefined = true
	return r
}

func newResult(op string, operands []*vmath.Vector3) *OperationResult {
	r := &OperationResult{Operation: op}
	for _, o := range operands {
		r.Operands = append(r.Operands, Tuple(o.ToTuple()))
	}
	return r
}

// WithParam records a scalar input of the operation
func (r *OperationResult) WithParam(name string, value float64) *OperationResult {
	if r.Params == nil {
		r.Params = make(map[string]Number)
	}
	r.Params[name] = Number(value)
	return r
}

// WithUnit tags a scalar result with its unit
func (r *OperationResult) WithUnit(unit string) *OperationResult {
	r.Unit = unit
	return r
}

// Text renders the value of the result for terminal output.
// precision < 0 prints the shortest exact representation.
func (r *OperationResult) Text(precision int) string {
	switch {
	case r.Undefined:
		return "undefined"
	case r.Vector != nil:
		if precision < 0 {
			return vmath.NewVector3(r.Vector[0], r.Vector[1], r.Vector[2]).String()
		}
		parts := make([]string, len(r.Vector))
		for i, c := range r.Vector {
			parts[i] = formatFloat(c, precision)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case r.Scalar != nil:
		s := formatFloat(float64(*r.Scalar), precision)
		if r.Unit != "" {
			s += " " + r.Unit
		}
		return s
	case r.Checks != nil:
		names := make([]string, 0, len(r.Checks))
		for name := range r.Checks {
			names = append(names, name)
		}
		sort.Strings(names)
		lines := make([]string, len(names))
		for i, name := range names {
			lines[i] = name + ": " + strconv.FormatBool(r.Checks[name])
		}
		return strings.Join(lines, "\n")
	}
	return ""
}

func formatFloat(f float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', precision, 64)
}
