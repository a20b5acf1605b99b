package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	vmath "github.com/oxygene76/vector3/pkg/math"
)

func TestResultText(t *testing.T) {
	a := vmath.NewVector3(1, 0, 0)
	b := vmath.NewVector3(0, 1, 0)

	cross := NewVectorResult("cross", a.Cross(b), a, b)
	assert.Equal(t, "(0.0, 0.0, 1.0)", cross.Text(-1))
	assert.Equal(t, "(0.00, 0.00, 1.00)", cross.Text(2))

	angle := NewScalarResult("angle", 90, a, b).WithUnit("deg")
	assert.Equal(t, "90 deg", angle.Text(-1))
	assert.Equal(t, "90.0 deg", angle.Text(1))

	checks := NewChecksResult("check", map[string]bool{"zero": false, "parallel": true}, a, b)
	assert.Equal(t, "parallel: true\nzero: false", checks.Text(-1))

	assert.Equal(t, "undefined", NewUndefinedResult("direction-cosine", vmath.Zero()).Text(-1))
}

func TestResultEncoding(t *testing.T) {
	v := vmath.NewVector3(1, 2, 3)
	r := NewVectorResult("scale", v.Scale(2), v).WithParam("scalar", 2)

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"operation": "scale",
		"operands": [[1, 2, 3]],
		"params": {"scalar": 2},
		"vector": [2, 4, 6]
	}`, string(data))

	out, err := yaml.Marshal(r)
	require.NoError(t, err)
	var decoded OperationResult
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, r, &decoded)
}
