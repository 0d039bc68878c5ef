package laminate

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/golam/internal/material"
	"github.com/alexiusacademia/golam/internal/ply"
	"gonum.org/v1/gonum/mat"
)

// DefaultSCF is the shear correction factor of a homogeneous plate
const DefaultSCF = 5.0 / 6.0

var (
	// ErrNoPlies is returned by operations that need a ply stack
	ErrNoPlies = errors.New("laminate has no plies")

	// ErrOffset is returned when an idealisation is requested on a laminate
	// whose reference surface is offset from the mid-plane
	ErrOffset = errors.New("laminate offset must be zero")
)

// Laminate is an ordered stack of plies analysed as a single plate.
//
// Plies are listed bottom to top. The reference surface sits at Offset
// from the geometric mid-plane, so the stack spans
// [-H/2 + Offset, H/2 + Offset].
type Laminate struct {
	Plies  []*ply.Ply
	Offset float64

	// Shear correction factors
	SCFk13 float64
	SCFk23 float64

	// Set when the matrices were reconstructed from lamination parameters
	Material *material.Material

	H        float64 // total thickness
	Rho      float64 // thickness averaged density
	IntRho   float64 // integral of rho dz
	IntRhoZ  float64 // integral of rho z dz
	IntRhoZ2 float64 // integral of rho z^2 dz

	// Extensional stiffness
	A11, A12, A16, A22, A26, A66 float64

	// Coupling stiffness
	B11, B12, B16, B22, B26, B66 float64

	// Bending stiffness
	D11, D12, D16, D22, D26, D66 float64

	// Transverse shear stiffness
	E44, E45, E55 float64

	// Equivalent engineering constants
	E1, E2, G12, Nu12, Nu21 float64
}

// New creates an empty laminate with the default shear correction factors
func New() *Laminate {
	return &Laminate{SCFk13: DefaultSCF, SCFk23: DefaultSCF}
}

// AddPly appends a ply at the top of the stack
func (l *Laminate) AddPly(m *material.Material, h, angle float64) {
	l.Plies = append(l.Plies, &ply.Ply{Material: m, H: h, Angle: angle})
}

// Rebuild rebuilds every ply and recomputes the total thickness and the
// average density. Without plies H and Rho are left as they are.
func (l *Laminate) Rebuild() error {
	if len(l.Plies) == 0 {
		return nil
	}

	l.H = 0
	var mass float64
	for i, p := range l.Plies {
		if err := p.Rebuild(); err != nil {
			return fmt.Errorf("ply %d: %w", i+1, err)
		}
		l.H += p.H
		mass += p.Material.Rho * p.H
	}
	l.Rho = 0
	if l.H > 0 {
		l.Rho = mass / l.H
	}
	return nil
}

// CalcConstitutiveMatrix integrates the rotated ply stiffness through the
// thickness, filling A, B, D, E and the mass integrals. The plies must be
// rebuilt. Every call starts from zero, so it may be repeated freely.
func (l *Laminate) CalcConstitutiveMatrix() {
	l.H = l.thickness()
	l.IntRho, l.IntRhoZ, l.IntRhoZ2 = 0, 0, 0
	l.A11, l.A12, l.A16, l.A22, l.A26, l.A66 = 0, 0, 0, 0, 0, 0
	l.B11, l.B12, l.B16, l.B22, l.B26, l.B66 = 0, 0, 0, 0, 0, 0
	l.D11, l.D12, l.D16, l.D22, l.D26, l.D66 = 0, 0, 0, 0, 0, 0
	l.E44, l.E45, l.E55 = 0, 0, 0

	h0 := -l.H/2 + l.Offset
	for _, p := range l.Plies {
		hk1 := h0
		h0 += p.H
		hk := h0

		dz := hk - hk1
		dz2 := (hk*hk - hk1*hk1) / 2
		dz3 := (hk*hk*hk - hk1*hk1*hk1) / 3

		rho := p.Material.Rho
		l.IntRho += rho * dz
		l.IntRhoZ += rho * dz2
		l.IntRhoZ2 += rho * dz3

		l.A11 += p.Q11L * dz
		l.A12 += p.Q12L * dz
		l.A16 += p.Q16L * dz
		l.A22 += p.Q22L * dz
		l.A26 += p.Q26L * dz
		l.A66 += p.Q66L * dz

		l.B11 += p.Q11L * dz2
		l.B12 += p.Q12L * dz2
		l.B16 += p.Q16L * dz2
		l.B22 += p.Q22L * dz2
		l.B26 += p.Q26L * dz2
		l.B66 += p.Q66L * dz2

		l.D11 += p.Q11L * dz3
		l.D12 += p.Q12L * dz3
		l.D16 += p.Q16L * dz3
		l.D22 += p.Q22L * dz3
		l.D26 += p.Q26L * dz3
		l.D66 += p.Q66L * dz3

		l.E44 += p.Q44L * dz
		l.E45 += p.Q45L * dz
		l.E55 += p.Q55L * dz
	}
}

// thickness sums the ply thicknesses. Laminates without plies keep the
// thickness they were given.
func (l *Laminate) thickness() float64 {
	if len(l.Plies) == 0 {
		return l.H
	}
	var h float64
	for _, p := range l.Plies {
		h += p.H
	}
	return h
}

// A returns the 3x3 extensional stiffness matrix
func (l *Laminate) A() *mat.Dense {
	return sym3(l.A11, l.A12, l.A16, l.A22, l.A26, l.A66)
}

// B returns the 3x3 extension-bending coupling matrix
func (l *Laminate) B() *mat.Dense {
	return sym3(l.B11, l.B12, l.B16, l.B22, l.B26, l.B66)
}

// D returns the 3x3 bending stiffness matrix
func (l *Laminate) D() *mat.Dense {
	return sym3(l.D11, l.D12, l.D16, l.D22, l.D26, l.D66)
}

// E returns the 2x2 transverse shear stiffness matrix
func (l *Laminate) E() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		l.E44, l.E45,
		l.E45, l.E55,
	})
}

// ABD returns the 6x6 matrix [A B; B D]
func (l *Laminate) ABD() *mat.Dense {
	abd := mat.NewDense(6, 6, nil)
	place(abd, 0, 0, l.A())
	place(abd, 0, 3, l.B())
	place(abd, 3, 0, l.B())
	place(abd, 3, 3, l.D())
	return abd
}

// ABDE returns the 8x8 matrix with ABD and E on the diagonal
func (l *Laminate) ABDE() *mat.Dense {
	abde := mat.NewDense(8, 8, nil)
	place(abde, 0, 0, l.ABD())
	place(abde, 6, 6, l.E())
	return abde
}

func sym3(x11, x12, x16, x22, x26, x66 float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		x11, x12, x16,
		x12, x22, x26,
		x16, x26, x66,
	})
}

func place(dst *mat.Dense, i, j int, src mat.Matrix) {
	r, c := src.Dims()
	dst.Slice(i, i+r, j, j+c).(*mat.Dense).Copy(src)
}

// ValidationError represents an invalid laminate definition
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
