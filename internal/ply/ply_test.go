package ply

import (
	"math"
	"testing"

	"github.com/alexiusacademia/golam/internal/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func cfrp(t *testing.T) *material.Material {
	t.Helper()
	m, err := material.ReadLaminaProp(1600, 142.5e3, 8.7e3, 0.28, 5.1e3, 5.1e3, 2.9e3)
	require.NoError(t, err)
	return m
}

func rotated(p *Ply) []float64 {
	return []float64{p.Q11L, p.Q12L, p.Q16L, p.Q22L, p.Q26L, p.Q66L, p.Q44L, p.Q45L, p.Q55L}
}

func TestRebuild_ZeroAngle(t *testing.T) {
	m := cfrp(t)
	p, err := New(m, 0.125, 0)
	require.NoError(t, err)

	den := 1 - m.Nu12*m.Nu21
	assert.InDelta(t, m.E1/den, p.Q11L, 1e-9)
	assert.InDelta(t, m.E2/den, p.Q22L, 1e-9)
	assert.InDelta(t, m.Nu12*m.E2/den, p.Q12L, 1e-9)
	assert.InDelta(t, m.G12, p.Q66L, 1e-9)
	assert.InDelta(t, m.G23, p.Q44L, 1e-9)
	assert.InDelta(t, m.G13, p.Q55L, 1e-9)
	assert.Zero(t, p.Q16L)
	assert.Zero(t, p.Q26L)
	assert.Zero(t, p.Q45L)
}

func TestRebuild_NinetyDegrees(t *testing.T) {
	m := cfrp(t)
	p0, err := New(m, 0.125, 0)
	require.NoError(t, err)
	p90, err := New(m, 0.125, 90)
	require.NoError(t, err)

	assert.InDelta(t, p0.Q11L, p90.Q22L, 1e-6)
	assert.InDelta(t, p0.Q22L, p90.Q11L, 1e-6)
	assert.InDelta(t, p0.Q12L, p90.Q12L, 1e-6)
	assert.InDelta(t, p0.Q66L, p90.Q66L, 1e-6)
	assert.InDelta(t, p0.Q44L, p90.Q55L, 1e-6)
	assert.InDelta(t, 0, p90.Q16L, 1e-6)
	assert.InDelta(t, 0, p90.Q26L, 1e-6)
	assert.InDelta(t, 0, p90.Q45L, 1e-6)
}

func TestRebuild_PiPeriodic(t *testing.T) {
	m := cfrp(t)
	for _, angle := range []float64{-60, -45, 15, 30, 45, 72.5} {
		a, err := New(m, 0.2, angle)
		require.NoError(t, err)
		b, err := New(m, 0.2, angle+180)
		require.NoError(t, err)
		assert.InDeltaSlice(t, rotated(a), rotated(b), 1e-6, "angle %v", angle)
	}
}

func TestRebuild_MatchesInvariants(t *testing.T) {
	m := cfrp(t)
	u := m.InvariantMatrix()
	for _, angle := range []float64{0, 22.5, 45, 60, -30, 90} {
		p, err := New(m, 0.1, angle)
		require.NoError(t, err)

		xi := mat.NewVecDense(5, []float64{1, p.Cos2T, p.Sin2T, p.Cos4T, p.Sin4T})
		var q mat.VecDense
		q.MulVec(u, xi)

		// rows q11, q22, q12, q55, q66, q56, q44, q14, q24
		want := []float64{p.Q11L, p.Q22L, p.Q12L, p.Q44L, p.Q55L, p.Q45L, p.Q66L, p.Q16L, p.Q26L}
		assert.InDeltaSlice(t, want, q.RawVector().Data, 1e-6, "angle %v", angle)
	}
}

func TestRebuild_Errors(t *testing.T) {
	_, err := New(nil, 1, 0)
	require.ErrorIs(t, err, ErrNoMaterial)

	var verr *ValidationError
	_, err = New(cfrp(t), 0, 0)
	require.ErrorAs(t, err, &verr)
	_, err = New(cfrp(t), -1, 0)
	require.ErrorAs(t, err, &verr)
}

func TestConstitutiveMatrix(t *testing.T) {
	p, err := New(cfrp(t), 0.125, 30)
	require.NoError(t, err)

	c := p.ConstitutiveMatrix()
	r, cols := c.Dims()
	require.Equal(t, 5, r)
	require.Equal(t, 5, cols)
	assert.True(t, mat.Equal(c, c.T()))
	assert.Equal(t, p.Q16L, c.At(0, 2))
	assert.Equal(t, p.Q45L, c.At(4, 3))
	assert.Zero(t, c.At(2, 3))
}

func TestTransfMatrices(t *testing.T) {
	p, err := New(cfrp(t), 0.125, 35)
	require.NoError(t, err)

	r := p.TransfMatrixDisplToLaminate()
	var rrt mat.Dense
	rrt.Mul(r, r.T())
	assert.True(t, mat.EqualApprox(&rrt, eye(3), 1e-12), "displacement transform must be orthogonal")
	assert.InDelta(t, 1, mat.Det(r), 1e-12)

	toLamina := p.TransfMatrixStressToLamina()
	toLaminate := p.TransfMatrixStressToLaminate()
	var prod mat.Dense
	prod.Mul(toLamina, toLaminate)
	assert.True(t, mat.EqualApprox(&prod, eye(6), 1e-12), "stress transforms must be mutual inverses")

	// Voigt transform agrees with the tensor rotation R sigma R^T
	sigma := []float64{120, -35, 8, 4, -6, 22} // 11, 22, 33, 23, 13, 12
	tensor := mat.NewDense(3, 3, []float64{
		sigma[0], sigma[5], sigma[4],
		sigma[5], sigma[1], sigma[3],
		sigma[4], sigma[3], sigma[2],
	})
	var tmp, rotatedTensor mat.Dense
	tmp.Mul(r, tensor)
	rotatedTensor.Mul(&tmp, r.T())

	var v mat.VecDense
	v.MulVec(toLaminate, mat.NewVecDense(6, sigma))
	want := []float64{
		rotatedTensor.At(0, 0), rotatedTensor.At(1, 1), rotatedTensor.At(2, 2),
		rotatedTensor.At(1, 2), rotatedTensor.At(0, 2), rotatedTensor.At(0, 1),
	}
	assert.InDeltaSlice(t, want, v.RawVector().Data, 1e-9)
}

func TestRotatedStiffness_MatchesStressTransform(t *testing.T) {
	m := cfrp(t)
	p0, err := New(m, 0.125, 0)
	require.NoError(t, err)
	p, err := New(m, 0.125, -40)
	require.NoError(t, err)

	// in-plane block (11, 22, 12) of the stress transform
	full := p.TransfMatrixStressToLaminate()
	idx := []int{0, 1, 5}
	tr := mat.NewDense(3, 3, nil)
	for i, a := range idx {
		for j, b := range idx {
			tr.Set(i, j, full.At(a, b))
		}
	}

	q := p0.ConstitutiveMatrix().Slice(0, 3, 0, 3)
	var tmp, qbar mat.Dense
	tmp.Mul(tr, q)
	qbar.Mul(&tmp, tr.T())

	assert.True(t, mat.EqualApprox(&qbar, p.ConstitutiveMatrix().Slice(0, 3, 0, 3), 1e-6))
	assert.False(t, math.IsNaN(p.Q16L))
}

func eye(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}
	return d
}
