package math

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestZeroValue(t *testing.T) {
	var v Vector3
	assert.Equal(t, [3]float64{0, 0, 0}, v.ToTuple())
	assert.Equal(t, 0.0, v.Magnitude())
	assert.True(t, v.IsZero())
	assert.True(t, Zero().Equal(&v))
}

func TestNilReadsAsZero(t *testing.T) {
	var nilVec *Vector3
	v := NewVector3(1, 2, 3)

	assert.Equal(t, [3]float64{0, 0, 0}, nilVec.ToTuple())
	assert.Equal(t, 0.0, nilVec.Magnitude())
	assert.Equal(t, 0.0, nilVec.X())
	assert.True(t, nilVec.IsZero())
	assert.True(t, v.Add(nil).Equal(v))
	assert.True(t, v.Sub(nil, v).Equal(Zero()))
	assert.Equal(t, 0.0, v.Dot(nil))
	assert.True(t, v.Cross(nil).IsZero())
	assert.True(t, Zero().Equal(nil))
	assert.Equal(t, "(0.0, 0.0, 0.0)", nilVec.String())

	_, err := v.Projection(nil)
	assert.ErrorIs(t, err, ErrZeroVector)
	_, err = nilVec.Normalize()
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestAccessors(t *testing.T) {
	v := NewVector3(1, 2, 3)
	assert.Equal(t, 1.0, v.X())
	assert.Equal(t, 2.0, v.Y())
	assert.Equal(t, 3.0, v.Z())

	v.SetX(-1)
	v.SetY(math.Inf(1))
	v.SetZ(math.NaN())
	assert.Equal(t, -1.0, v.X())
	assert.True(t, math.IsInf(v.Y(), 1))
	assert.True(t, math.IsNaN(v.Z()))
}

func TestMagnitudeCacheInvalidation(t *testing.T) {
	v := NewVector3(3, 4, 0)
	require.Equal(t, 5.0, v.Magnitude())
	require.True(t, v.magnitudeValid)

	v.SetX(0)
	assert.False(t, v.magnitudeValid)
	assert.Equal(t, 4.0, v.Magnitude())

	v.SetZ(3)
	assert.Equal(t, 5.0, v.Magnitude())

	v.SetY(0)
	assert.Equal(t, 3.0, v.Magnitude())
}

func TestConcurrentAccess(t *testing.T) {
	v := NewVector3(3, 4, 0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			v.SetZ(float64(i))
		}(i)
		go func() {
			defer wg.Done()
			_ = v.Magnitude()
			_ = v.Add(v)
		}()
	}
	wg.Wait()

	z := v.Z()
	assert.Equal(t, math.Sqrt(25+z*z), v.Magnitude())
}

func TestArithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)
	c := NewVector3(7, 8, 9)

	assert.Equal(t, [3]float64{5, 7, 9}, a.Add(b).ToTuple())
	assert.Equal(t, [3]float64{12, 15, 18}, a.Add(b, c).ToTuple())
	assert.Equal(t, a.ToTuple(), a.Add().ToTuple())
	assert.Equal(t, [3]float64{-3, -3, -3}, a.Sub(b).ToTuple())
	assert.Equal(t, [3]float64{-10, -11, -12}, a.Sub(b, c).ToTuple())
	assert.Equal(t, [3]float64{2, 4, 6}, a.Scale(2).ToTuple())
	assert.Equal(t, a.Scale(2).ToTuple(), Mul(2, a).ToTuple())
	assert.Equal(t, [3]float64{-1, -2, -3}, a.Neg().ToTuple())

	// operands are left untouched
	assert.Equal(t, [3]float64{1, 2, 3}, a.ToTuple())
	assert.Equal(t, [3]float64{4, 5, 6}, b.ToTuple())
}

func TestProducts(t *testing.T) {
	i := NewVector3(1, 0, 0)
	j := NewVector3(0, 1, 0)
	k := NewVector3(0, 0, 1)

	assert.True(t, i.Cross(j).Equal(k))
	assert.True(t, j.Cross(i).Equal(k.Neg()))
	assert.Equal(t, 1.0, i.TripleScalar(j, k))
	assert.Equal(t, -1.0, i.TripleScalar(k, j))

	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)
	c := NewVector3(7, 8, 9)
	assert.Equal(t, 32.0, a.Dot(b))
	assert.Equal(t, [3]float64{-3, 6, -3}, a.Cross(b).ToTuple())
	assert.Equal(t, 0.0, a.TripleScalar(b, c))
	assert.Equal(t, [3]float64{-24, -6, 12}, a.TripleVector(b, c).ToTuple())
	assert.True(t, a.TripleVector(b, c).Equal(a.Cross(b.Cross(c))))
}

func TestProductsMatchR3(t *testing.T) {
	a := NewVector3(1.5, -2.25, 3)
	b := NewVector3(-4, 0.5, 7.75)

	assert.Equal(t, r3.Dot(toR3(a), toR3(b)), a.Dot(b))
	assert.True(t, a.Cross(b).Equal(fromR3(r3.Cross(toR3(a), toR3(b)))))
	assert.InDelta(t, r3.Norm(toR3(a)), a.Magnitude(), 1e-12)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, NewVector3(1, 1, 1).Distance(NewVector3(4, 5, 1)))
}

func TestEqual(t *testing.T) {
	a := NewVector3(1, 2, 3)
	assert.True(t, a.Equal(NewVector3(1+1e-12, 2, 3-1e-12)))
	assert.True(t, NewVector3(1e12, 0, 0).Equal(NewVector3(1e12+1, 0, 0)))
	assert.False(t, a.Equal(NewVector3(1.001, 2, 3)))
	assert.False(t, a.Equal(nil))
}

func TestPredicates(t *testing.T) {
	assert.True(t, NewVector3(1e-12, 0, 0).IsZero())
	assert.False(t, NewVector3(1e-3, 0, 0).IsZero())
	assert.True(t, NewVector3(0, 0, 1).IsUnit())
	assert.True(t, NewVector3(0.6, 0.8, 0).IsUnit())
	assert.False(t, NewVector3(1, 1, 0).IsUnit())

	assert.True(t, NewVector3(1, 2, 3).IsParallel(NewVector3(-2, -4, -6)))
	assert.False(t, NewVector3(1, 2, 3).IsParallel(NewVector3(1, 2, 4)))
	assert.True(t, NewVector3(1, 0, 0).IsPerpendicular(NewVector3(0, 5, 5)))
	assert.False(t, NewVector3(1, 1, 0).IsPerpendicular(NewVector3(1, 0, 0)))
}

func TestTextForms(t *testing.T) {
	tests := []struct {
		v     *Vector3
		str   string
		goStr string
	}{
		{NewVector3(1, 2, 3), "(1.0, 2.0, 3.0)", "Vector3(x=1.0, y=2.0, z=3.0)"},
		{NewVector3(0.5, -1, 1e21), "(0.5, -1.0, 1e+21)", "Vector3(x=0.5, y=-1.0, z=1e+21)"},
		{NewVector3(math.Inf(-1), math.NaN(), 0), "(-Inf, NaN, 0.0)", "Vector3(x=-Inf, y=NaN, z=0.0)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.str, tt.v.String())
		assert.Equal(t, tt.str, fmt.Sprint(tt.v))
		assert.Equal(t, tt.goStr, fmt.Sprintf("%#v", tt.v))
	}
}
