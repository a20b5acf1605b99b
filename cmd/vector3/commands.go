package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oxygene76/vector3/internal/types"
	vmath "github.com/oxygene76/vector3/pkg/math"
)

// operation describes a sub-command taking vectors followed by scalars.
// vectors == -1 accepts one or more vectors and no scalars.
type operation struct {
	name    string
	args    string
	short   string
	vectors int
	scalars []string
	eval    func(a *app, vs []*vmath.Vector3, ss []float64) (*types.OperationResult, error)
}

var operations = []operation{
	{
		name: "magnitude", args: "V", short: "Length of a vector", vectors: 1,
		eval: func(a *app, vs []*vmath.Vector3, _ []float64) (*types.OperationResult, error) {
			return types.NewScalarResult("magnitude", vs[0].Magnitude(), vs...), nil
		},
	},
	{
		name: "normalize", args: "V", short: "Unit vector in the direction of V", vectors: 1,
		eval: func(a *app, vs []*vmath.Vector3, _ []float64) (*types.OperationResult, error) {
			n, err := vs[0].Normalize()
			if err != nil {
				return nil, err
			}
			return types.NewVectorResult("normalize", n, vs...), nil
		},
	},
	{
		name: "add", args: "V [W...]", short: "Sum of the vectors", vectors: -1,
		eval: func(a *app, vs []*vmath.Vector3, _ []float64) (*types.OperationResult, error) {
			return types.NewVectorResult("add", vs[0].Add(vs[1:]...), vs...), nil
		},
	},
	{
		name: "sub", args: "V [W...]", short: "V minus the sum of the other vectors", vectors: -1,
		eval: func(a *app, vs []*vmath.Vector3, _ []float64) (*types.OperationResult, error) {
			return types.NewVectorResult("sub", vs[0].Sub(vs[1:]...), vs...), nil
		},
	},
	{
		name: "scale", args: "V S", short: "V multiplied by the scalar S", vectors: 1, scalars: []string{"scalar"},
		eval: func(a *app, vs []*vmath.Vector3, ss []float64) (*types.OperationResult, error) {
			return types.NewVectorResult("scale", vs[0].Scale(ss[0]), vs...).WithParam("scalar", ss[0]), nil
		},
	},
	{
		name: "dot", args: "V W", short: "Dot product", vectors: 2,
		eval: func(a *app, vs []*vmath.Vector3, _ []float64) (*types.OperationResult, error) {
			return types.NewScalarResult("dot", vs[0].Dot(vs[1]), vs...), nil
		},
	},
	{
		name: "cross", args: "V W", short: "Cross product", vectors: 2,
		eval: func(a *app, vs []*vmath.Vector3, _ []float64) (*types.OperationResult, error) {
			return types.NewVectorResult("cross", vs[0].Cross(vs[1]), vs...), nil
		},
	},
	{
		name: "triple-scalar", args: "U V W", short: "Scalar triple product U · (V × W)", vectors: 3,
		eval: func(a *app, vs []*vmath.Vector3, _ []float64) (*types.OperationResult, error) {
			return types.NewScalarResult("triple-scalar", vs[0].TripleScalar(vs[1], vs[2]), vs...), nil
		},
	},
	{
		name: "triple-vector", args: "U V W", short: "Vector triple product U × (V × W)", vectors: 3,
		eval: func(a *app, vs []*vmath.Vector3, _ []float64) (*types.OperationResult, error) {
			return types.NewVectorResult("triple-vector", vs[0].TripleVector(vs[1], vs[2]), vs...), nil
		},
	},
	{
		name: "distance", args: "V W", short: "Distance between two points", vectors: 2,
		eval: func(a *app, vs []*vmath.Vector3, _ []float64) (*types.OperationResult, error) {
			return types.NewScalarResult("distance", vs[0].Distance(vs[1]), vs...), nil
		},
	},
	{
		name: "project", args: "V ONTO", short: "Projection of V onto ONTO", vectors: 2,
		eval: func(a *app, vs []*vmath.Vector3, _ []float64) (*types.OperationResult, error) {
			p, err := vs[0].Projection(vs[1])
			if err != nil {
				return nil, err
			}
			return types.NewVectorResult("project", p, vs...), nil
		},
	},
	{
		name: "reject", args: "V FROM", short: "Component of V orthogonal to FROM", vectors: 2,
		eval: func(a *app, vs []*vmath.Vector3, _ []float64) (*types.OperationResult, error) {
			r, err := vs[0].Rejection(vs[1])
			if err != nil {
				return nil, err
			}
			return types.NewVectorResult("reject", r, vs...), nil
		},
	},
	{
		name: "reflect", args: "V NORMAL", short: "Reflection of V across the plane perpendicular to NORMAL", vectors: 2,
		eval: func(a *app, vs []*vmath.Vector3, _ []float64) (*types.OperationResult, error) {
			r, err := vs[0].Reflect(vs[1])
			if err != nil {
				return nil, err
			}
			return types.NewVectorResult("reflect", r, vs...), nil
		},
	},
	{
		name: "angle", args: "V W", short: "Smallest angle between two vectors", vectors: 2,
		eval: func(a *app, vs []*vmath.Vector3, _ []float64) (*types.OperationResult, error) {
			theta, err := vs[0].AngleBetween(vs[1], a.cfg.Angles.Degrees)
			if err != nil {
				return nil, err
			}
			return types.NewScalarResult("angle", theta, vs...).WithUnit(a.cfg.AngleUnit()), nil
		},
	},
	{
		name: "rotate", args: "V AXIS ANGLE", short: "Rotate V around AXIS (Rodrigues' formula)", vectors: 2, scalars: []string{"angle"},
		eval: func(a *app, vs []*vmath.Vector3, ss []float64) (*types.OperationResult, error) {
			if !vs[1].IsUnit() {
				a.log.Debug().Stringer("axis", vs[1]).Msg("normalizing rotation axis")
			}
			r, err := vs[0].RotateAround(vs[1], ss[0], a.cfg.Angles.Degrees)
			if err != nil {
				return nil, err
			}
			return types.NewVectorResult("rotate", r, vs...).WithParam("angle", ss[0]).WithUnit(a.cfg.AngleUnit()), nil
		},
	},
	{
		name: "lerp", args: "V W T", short: "Linear interpolation V*(1-T) + W*T", vectors: 2, scalars: []string{"t"},
		eval: func(a *app, vs []*vmath.Vector3, ss []float64) (*types.OperationResult, error) {
			if ss[0] < 0 || ss[0] > 1 {
				a.log.Debug().Float64("t", ss[0]).Msg("t outside [0, 1], extrapolating")
			}
			return types.NewVectorResult("lerp", vs[0].Lerp(vs[1], ss[0]), vs...).WithParam("t", ss[0]), nil
		},
	},
	{
		name: "direction-cosine", args: "V", short: "Cosines of the angles between V and the axes", vectors: 1,
		eval: func(a *app, vs []*vmath.Vector3, _ []float64) (*types.OperationResult, error) {
			cosines, ok := vs[0].DirectionCosine()
			if !ok {
				a.log.Warn().Stringer("vector", vs[0]).Msg("direction cosines are undefined for a zero vector")
				return types.NewUndefinedResult("direction-cosine", vs...), nil
			}
			return types.NewVectorResult("direction-cosine", vmath.NewVector3(cosines[0], cosines[1], cosines[2]), vs...), nil
		},
	},
}

func (a *app) operationCmds() []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(operations))
	for _, op := range operations {
		cmds = append(cmds, a.operationCmd(op))
	}
	return cmds
}

func (a *app) operationCmd(op operation) *cobra.Command {
	nargs := cobra.ExactArgs(op.vectors + len(op.scalars))
	if op.vectors < 0 {
		nargs = cobra.MinimumNArgs(1)
	}

	return &cobra.Command{
		Use:   op.name + " " + op.args,
		Short: op.short,
		Args:  nargs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nv := op.vectors
			if nv < 0 {
				nv = len(args)
			}
			vs, ss, err := parseArgs(args, nv, op.scalars)
			if err != nil {
				return err
			}

			a.log.Debug().Str("operation", op.name).Strs("args", args).Msg("evaluating")
			result, err := op.eval(a, vs, ss)
			if err != nil {
				return fmt.Errorf("%s: %w", op.name, err)
			}
			return a.emit(result)
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check V [W]",
		Short: "Report whether V is zero or unit, and its relation to W",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, _, err := parseArgs(args, len(args), nil)
			if err != nil {
				return err
			}
			return a.emit(checks(vs...))
		},
	}
}

func checks(vs ...*vmath.Vector3) *types.OperationResult {
	v := vs[0]
	result := map[string]bool{
		"zero": v.IsZero(),
		"unit": v.IsUnit(),
	}
	if len(vs) > 1 {
		w := vs[1]
		result["parallel"] = v.IsParallel(w)
		result["perpendicular"] = v.IsPerpendicular(w)
		result["equal"] = v.Equal(w)
	}
	return types.NewChecksResult("check", result, vs...)
}

// parseArgs reads nv vectors followed by one scalar per name in scalars
func parseArgs(args []string, nv int, scalars []string) ([]*vmath.Vector3, []float64, error) {
	vs := make([]*vmath.Vector3, nv)
	for i := 0; i < nv; i++ {
		v, err := vmath.Parse(args[i])
		if err != nil {
			return nil, nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		vs[i] = v
	}

	ss := make([]float64, len(scalars))
	for i, name := range scalars {
		s, err := strconv.ParseFloat(strings.TrimSpace(args[nv+i]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("argument %d: invalid %s %q", nv+i+1, name, args[nv+i])
		}
		ss[i] = s
	}

	return vs, ss, nil
}
