package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-9

func TestRebuild_IsotropicInPlane(t *testing.T) {
	e, nu := 70e3, 0.3
	g := e / (2 * (1 + nu))
	m := &Material{E1: e, E2: e, Nu12: nu, Nu21: nu, G12: g, G13: g, G23: g}
	require.NoError(t, m.Rebuild())

	q11 := e / (1 - nu*nu)
	q12 := nu * e / (1 - nu*nu)
	assert.InDelta(t, q11, m.Q11, tol*q11)
	assert.InDelta(t, q11, m.Q22, tol*q11)
	assert.InDelta(t, q12, m.Q12, tol*q11)
	assert.InDelta(t, q12, m.Q21, tol*q11)
	assert.Equal(t, g, m.Q44)
	assert.Equal(t, g, m.Q55)
	assert.Equal(t, g, m.Q66)

	// isotropic invariants collapse to the plate constants
	assert.InDelta(t, q11, m.U1, tol*q11)
	assert.InDelta(t, 0, m.U2, tol*q11)
	assert.InDelta(t, 0, m.U3, tol*q11)
	assert.InDelta(t, q12, m.U4, tol*q11)
	assert.InDelta(t, g, m.U5, tol*q11)
	assert.InDelta(t, g, m.U6, tol*q11)
	assert.InDelta(t, 0, m.U7, tol*q11)
}

func TestRebuild_Isotropic3D(t *testing.T) {
	e, nu := 200e3, 0.25
	m, err := Isotropic(e, nu, 7850)
	require.NoError(t, err)

	lambda := e * nu / ((1 + nu) * (1 - 2*nu))
	mu := e / (2 * (1 + nu))
	for _, v := range []float64{m.C11, m.C22, m.C33, m.Q11, m.Q22, m.Q33} {
		assert.InDelta(t, lambda+2*mu, v, tol*e)
	}
	for _, v := range []float64{m.C12, m.C13, m.C23, m.Q12, m.Q13, m.Q23} {
		assert.InDelta(t, lambda, v, tol*e)
	}
	assert.Equal(t, mu, m.C44)
	assert.Equal(t, mu, m.C55)
	assert.Equal(t, mu, m.C66)
	assert.Equal(t, 7850.0, m.Rho)
}

func TestRebuild_Errors(t *testing.T) {
	var verr *ValidationError

	err := (&Material{E1: 0, E2: 1}).Rebuild()
	require.ErrorAs(t, err, &verr)

	// nu12*nu21 = 1 makes both determinants vanish
	err = (&Material{E1: 1, E2: 1, G12: 1, Nu12: 1, Nu21: 1}).Rebuild()
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "degenerate")

	err = (&Material{E1: 1, E2: 1}).Rebuild()
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "g12")

	err = (&Material{E1: 1, E2: 1, G12: 1, E3: -1}).Rebuild()
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "e3")

	_, err = ReadLaminaProp(0, 142.5e3, 8.7e3, 0.28, 0, 5.1e3, 2.9e3)
	require.ErrorAs(t, err, &verr)
}

func TestConstitutiveMatrix(t *testing.T) {
	m, err := ReadLaminaProp(0, 142.5e3, 8.7e3, 0.28, 5.1e3, 5.1e3, 2.9e3)
	require.NoError(t, err)

	c := m.ConstitutiveMatrix()
	r, cols := c.Dims()
	require.Equal(t, 6, r)
	require.Equal(t, 6, cols)
	assert.True(t, mat.EqualApprox(c, c.T(), tol), "constitutive matrix must be symmetric")
	for i := 0; i < 3; i++ {
		for j := 3; j < 6; j++ {
			assert.Zero(t, c.At(i, j))
			assert.Zero(t, c.At(j, i))
		}
	}
	assert.Equal(t, m.G23, c.At(3, 3))
	assert.Equal(t, m.G13, c.At(4, 4))
	assert.Equal(t, m.G12, c.At(5, 5))

	// stiffness inverts the orthotropic compliance
	s := mat.NewDense(3, 3, []float64{
		1 / m.E1, -m.Nu21 / m.E2, -m.Nu31 / m.E3,
		-m.Nu12 / m.E1, 1 / m.E2, -m.Nu32 / m.E3,
		-m.Nu13 / m.E1, -m.Nu23 / m.E2, 1 / m.E3,
	})
	var prod mat.Dense
	prod.Mul(s, c.Slice(0, 3, 0, 3))
	assert.True(t, mat.EqualApprox(&prod, eye(3), 1e-9))
}

func TestInvariantMatrix_Shape(t *testing.T) {
	m, err := ReadLaminaProp(0, 142.5e3, 8.7e3, 0.28, 5.1e3, 5.1e3, 2.9e3)
	require.NoError(t, err)

	u := m.InvariantMatrix()
	r, c := u.Dims()
	assert.Equal(t, 9, r)
	assert.Equal(t, 5, c)
	assert.Equal(t, m.U1, u.At(0, 0))
	assert.Equal(t, -m.U2, u.At(1, 1))
	assert.Equal(t, m.U5, u.At(6, 0))
	assert.Equal(t, -m.U3, u.At(8, 4))
}

func TestReadLaminaProp(t *testing.T) {
	tests := []struct {
		name  string
		props []float64
		e3    float64
		nu13  float64
		g23   float64
	}{
		{"isotropic", []float64{70e3, 0.3}, 70e3, 0.3, 70e3 / 2.6},
		{"isotropic legacy", []float64{70e3, 70e3, 0.3}, 70e3, 0.3, 70e3 / 2.6},
		{"orthotropic", []float64{142.5e3, 8.7e3, 0.28, 5.1e3, 5.1e3, 2.9e3}, 8.7e3, 0.28, 2.9e3},
		{"full", []float64{142.5e3, 8.7e3, 0.28, 5.1e3, 5.1e3, 2.9e3, 9e3, 0.27, 0.4}, 9e3, 0.27, 2.9e3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ReadLaminaProp(1500, tt.props...)
			require.NoError(t, err)
			assert.InDelta(t, tt.e3, m.E3, 1e-9)
			assert.InDelta(t, tt.nu13, m.Nu13, 1e-12)
			assert.InDelta(t, tt.g23, m.G23, 1e-9)
			assert.InDelta(t, m.Nu12/m.E1, m.Nu21/m.E2, 1e-15)
			assert.InDelta(t, m.Nu13/m.E1, m.Nu31/m.E3, 1e-15)
			assert.InDelta(t, m.Nu23/m.E2, m.Nu32/m.E3, 1e-15)
			assert.NotZero(t, m.Q11, "material must be rebuilt")
		})
	}

	props := []float64{1, 2, 3, 4, 5, 6}
	_, err := ReadLaminaProp(0, props...)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, props, "caller slice must not be modified")

	_, err = ReadLaminaProp(0, 1, 2, 3, 4)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func eye(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}
	return d
}
