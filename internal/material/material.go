package material

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Material holds the engineering constants of an orthotropic lamina material
// and the stiffness terms derived from them.
//
// The derived terms are only valid after Rebuild has been called with the
// current constants. Changing any constant afterwards requires a new Rebuild.
// A rebuilt Material can be shared by any number of plies.
type Material struct {
	Name string

	// Elastic constants
	E1, E2, E3    float64 // Young's moduli
	G12, G13, G23 float64 // shear moduli
	Nu12, Nu21    float64 // nu12/e1 = nu21/e2
	Nu13, Nu31    float64 // nu13/e1 = nu31/e3
	Nu23, Nu32    float64 // nu23/e2 = nu32/e3
	Rho           float64 // density
	A1, A2, A3    float64 // thermal expansion coefficients
	Tref          float64 // reference temperature
	St1, St2      float64 // tensile allowables
	Sc1, Sc2      float64 // compressive allowables
	Ss12          float64 // in-plane shear allowable

	// 3D stiffness constants
	C11, C12, C13, C22, C23, C33 float64
	C44, C55, C66                float64

	// Reduced stiffness (q44 is in-plane shear, q55 and q66 transverse shear)
	Q11, Q12, Q13 float64
	Q21, Q22, Q23 float64
	Q31, Q32, Q33 float64
	Q44, Q55, Q66 float64

	// Rotation invariants
	U1, U2, U3, U4, U5, U6, U7 float64
}

// Rebuild recomputes the stiffness constants, reduced stiffness and rotation
// invariants from the engineering constants. The Poisson's ratios must
// already satisfy the reciprocity relations; they are not derived here.
func (m *Material) Rebuild() error {
	if m.E1 <= 0 || m.E2 <= 0 {
		return &ValidationError{msg: fmt.Sprintf("moduli must be positive: e1=%g, e2=%g", m.E1, m.E2)}
	}
	if m.G12 <= 0 {
		return &ValidationError{msg: fmt.Sprintf("in-plane shear modulus must be positive, got g12=%g", m.G12)}
	}
	if m.E3 < 0 {
		return &ValidationError{msg: fmt.Sprintf("e3 must not be negative, got %g", m.E3)}
	}

	e1, e2, e3 := m.E1, m.E2, m.E3
	nu12, nu21 := m.Nu12, m.Nu21
	nu13, nu31 := m.Nu13, m.Nu31
	nu23, nu32 := m.Nu23, m.Nu32

	// Reddy, Mechanics of Laminated Composite Plates and Shells, Eq. 2.2.16
	delta := (1 - nu12*nu21 - nu23*nu32 - nu31*nu13 - 2*nu21*nu32*nu13) / (e1 * e2)
	if delta == 0 {
		return &ValidationError{msg: "degenerate Poisson's ratios: compliance determinant is zero"}
	}
	m.C11 = (1 - nu23*nu32) / (delta * e2)
	m.C12 = (nu21 + nu23*nu31) / (delta * e2)
	m.C13 = (nu31 + nu21*nu32) / (delta * e2)
	m.C22 = (1 - nu13*nu31) / (delta * e1)
	m.C23 = (nu32 + nu12*nu31) / (delta * e1)
	m.C33 = e3 * (1 - nu12*nu21) / (delta * e1 * e2)
	m.C44 = m.G23
	m.C55 = m.G13
	m.C66 = m.G12

	// Jones, Mechanics of Composite Materials, B.2 and B.3
	den := 1 - nu12*nu21 - nu13*nu31 - nu23*nu32 - nu12*nu23*nu31 - nu13*nu21*nu32
	if den == 0 {
		return &ValidationError{msg: "degenerate Poisson's ratios: reduced stiffness denominator is zero"}
	}
	m.Q11 = e1 * (1 - nu23*nu32) / den
	m.Q12 = e1 * (nu21 + nu31*nu23) / den
	m.Q13 = e1 * (nu31 + nu21*nu32) / den
	m.Q21 = e2 * (nu12 + nu13*nu32) / den
	m.Q22 = e2 * (1 - nu13*nu31) / den
	m.Q23 = e2 * (nu32 + nu12*nu31) / den
	m.Q31 = e3 * (nu13 + nu12*nu23) / den
	m.Q32 = e3 * (nu23 + nu13*nu21) / den
	m.Q33 = e3 * (1 - nu12*nu21) / den
	m.Q44 = m.G12
	m.Q55 = m.G23
	m.Q66 = m.G13

	// The in-plane invariants use the plane-stress reduced stiffness, the
	// same terms a Ply rotates. They equal q11, q12, q22 when the
	// out-of-plane Poisson's ratios are zero.
	ps := 1 - nu12*nu21
	if ps == 0 {
		return &ValidationError{msg: "degenerate Poisson's ratios: nu12*nu21 = 1"}
	}
	// not m.Q11, m.Q12, m.Q22: those differ once nu13 or nu23 is non-zero
	q11, q12, q22 := e1/ps, nu12*e2/ps, e2/ps

	m.U1 = (3*q11 + 3*q22 + 2*q12 + 4*m.Q44) / 8
	m.U2 = (q11 - q22) / 2
	m.U3 = (q11 + q22 - 2*q12 - 4*m.Q44) / 8
	m.U4 = (q11 + q22 + 6*q12 - 4*m.Q44) / 8
	m.U5 = (m.U1 - m.U4) / 2
	m.U6 = (m.Q55 + m.Q66) / 2
	m.U7 = (m.Q55 - m.Q66) / 2

	return nil
}

// ConstitutiveMatrix returns the 6x6 3D stiffness matrix in Voigt order
// (11, 22, 33, 23, 13, 12). Normal and shear blocks are uncoupled.
func (m *Material) ConstitutiveMatrix() *mat.Dense {
	return mat.NewDense(6, 6, []float64{
		m.C11, m.C12, m.C13, 0, 0, 0,
		m.C12, m.C22, m.C23, 0, 0, 0,
		m.C13, m.C23, m.C33, 0, 0, 0,
		0, 0, 0, m.C44, 0, 0,
		0, 0, 0, 0, m.C55, 0,
		0, 0, 0, 0, 0, m.C66,
	})
}

// InvariantMatrix returns the 9x5 matrix mapping (1, xi1, xi2, xi3, xi4) to
// the rotated stiffness terms, one row each for
// q11, q22, q12, q55, q66, q56, q44, q14, q24.
func (m *Material) InvariantMatrix() *mat.Dense {
	return mat.NewDense(9, 5, []float64{
		m.U1, m.U2, 0, m.U3, 0,   // q11
		m.U1, -m.U2, 0, m.U3, 0,  // q22
		m.U4, 0, 0, -m.U3, 0,     // q12
		m.U6, m.U7, 0, 0, 0,      // q55
		m.U6, -m.U7, 0, 0, 0,     // q66
		0, 0, -m.U7, 0, 0,        // q56
		m.U5, 0, 0, -m.U3, 0,     // q44
		0, m.U2 / 2, 0, 0, m.U3,  // q14
		0, m.U2 / 2, 0, 0, -m.U3, // q24
	})
}

// ValidationError represents an invalid set of material constants
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
