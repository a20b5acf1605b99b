package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/oxygene76/vector3/internal/types"
	vmath "github.com/oxygene76/vector3/pkg/math"
	"github.com/oxygene76/vector3/pkg/utils"
)

const labelWidth = 17

// emit prints results in the configured format. A single result is printed
// bare; several are printed as a list.
func (a *app) emit(results ...*types.OperationResult) error {
	switch a.cfg.Output.Format {
	case utils.FormatJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)

	case utils.FormatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		var err error
		if len(results) == 1 {
			err = enc.Encode(results[0])
		} else {
			err = enc.Encode(results)
		}
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	if len(results) == 1 {
		_, err := fmt.Fprintln(a.out, results[0].Text(a.cfg.Output.Precision))
		return err
	}

	pad := "\n" + strings.Repeat(" ", labelWidth+1)
	for _, r := range results {
		text := strings.ReplaceAll(r.Text(a.cfg.Output.Precision), "\n", pad)
		if _, err := fmt.Fprintf(a.out, "%-*s %s\n", labelWidth, r.Operation, text); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every operation on the sample vectors (1,2,3), (4,5,6) and (7,8,9)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.demo()
			if err != nil {
				return err
			}
			return a.emit(results...)
		},
	}
}

// demo evaluates each operation on the sample vectors
func (a *app) demo() ([]*types.OperationResult, error) {
	v1 := vmath.NewVector3(1, 2, 3)
	v2 := vmath.NewVector3(4, 5, 6)
	v3 := vmath.NewVector3(7, 8, 9)

	quarterTurn := 90.0
	if !a.cfg.Angles.Degrees {
		quarterTurn = math.Pi / 2
	}

	inputs := map[string]struct {
		vs []*vmath.Vector3
		ss []float64
	}{
		"add":           {vs: []*vmath.Vector3{v1, v2, v3}},
		"sub":           {vs: []*vmath.Vector3{v1, v2, v3}},
		"scale":         {vs: []*vmath.Vector3{v1}, ss: []float64{2}},
		"triple-scalar": {vs: []*vmath.Vector3{v1, v2, v3}},
		"triple-vector": {vs: []*vmath.Vector3{v1, v2, v3}},
		"rotate":        {vs: []*vmath.Vector3{v1, v3}, ss: []float64{quarterTurn}},
		"lerp":          {vs: []*vmath.Vector3{v1, v2}, ss: []float64{0.5}},
	}

	results := make([]*types.OperationResult, 0, len(operations)+1)
	for _, op := range operations {
		in, ok := inputs[op.name]
		if !ok {
			in.vs = []*vmath.Vector3{v1, v2}[:op.vectors]
		}
		a.log.Debug().Str("operation", op.name).Msg("evaluating")
		r, err := op.eval(a, in.vs, in.ss)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op.name, err)
		}
		results = append(results, r)
	}

	return append(results, checks(v1, v2)), nil
}
