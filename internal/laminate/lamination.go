package laminate

import (
	"fmt"

	"github.com/alexiusacademia/golam/internal/material"
	"gonum.org/v1/gonum/mat"
)

// LaminationParameters are the thickness weighted moments of cos 2θ, sin 2θ,
// cos 4θ and sin 4θ for the extensional (A), coupling (B), bending (D) and
// transverse shear (E) stiffness families.
type LaminationParameters struct {
	XiA1, XiA2, XiA3, XiA4 float64
	XiB1, XiB2, XiB3, XiB4 float64
	XiD1, XiD2, XiD3, XiD4 float64
	XiE1, XiE2, XiE3, XiE4 float64
}

// CalcLaminationParameters rebuilds every ply and integrates the lamination
// parameters of the stack.
func (l *Laminate) CalcLaminationParameters() (LaminationParameters, error) {
	var lp LaminationParameters
	if len(l.Plies) == 0 {
		return lp, fmt.Errorf("lamination parameters: %w", ErrNoPlies)
	}
	for i, p := range l.Plies {
		if err := p.Rebuild(); err != nil {
			return lp, fmt.Errorf("ply %d: %w", i+1, err)
		}
	}

	h := l.thickness()
	h0 := -h/2 + l.Offset
	for _, p := range l.Plies {
		hk1 := h0
		h0 += p.H
		hk := h0

		afac := p.H / h
		bfac := (2 / (h * h)) * (hk*hk - hk1*hk1)
		dfac := (4 / (h * h * h)) * (hk*hk*hk - hk1*hk1*hk1)
		efac := (1 / h) * (hk - hk1)

		lp.XiA1 += afac * p.Cos2T
		lp.XiA2 += afac * p.Sin2T
		lp.XiA3 += afac * p.Cos4T
		lp.XiA4 += afac * p.Sin4T

		lp.XiB1 += bfac * p.Cos2T
		lp.XiB2 += bfac * p.Sin2T
		lp.XiB3 += bfac * p.Cos4T
		lp.XiB4 += bfac * p.Sin4T

		lp.XiD1 += dfac * p.Cos2T
		lp.XiD2 += dfac * p.Sin2T
		lp.XiD3 += dfac * p.Cos4T
		lp.XiD4 += dfac * p.Sin4T

		lp.XiE1 += efac * p.Cos2T
		lp.XiE2 += efac * p.Sin2T
		lp.XiE3 += efac * p.Cos4T
		lp.XiE4 += efac * p.Sin4T
	}
	return lp, nil
}

// ForceBalancedLP zeroes XiA2 and XiA4 in place and returns lp
func ForceBalancedLP(lp *LaminationParameters) *LaminationParameters {
	lp.XiA2 = 0
	lp.XiA4 = 0
	return lp
}

// ForceSymmetricLP zeroes the coupling parameters XiB1..XiB4 in place and
// returns lp
func ForceSymmetricLP(lp *LaminationParameters) *LaminationParameters {
	lp.XiB1, lp.XiB2, lp.XiB3, lp.XiB4 = 0, 0, 0, 0
	return lp
}

// FromParameters reconstructs the A, B, D and E matrices of a laminate of the
// given thickness made of a single material, without a ply stack. The
// returned laminate has no plies, a zero offset and its mass integrals set
// for a homogeneous density.
func FromParameters(thickness float64, m *material.Material, lp LaminationParameters) (*Laminate, error) {
	if thickness <= 0 {
		return nil, &ValidationError{msg: fmt.Sprintf("laminate thickness must be positive, got %g", thickness)}
	}
	if m == nil {
		return nil, &ValidationError{msg: "material is required"}
	}

	u := m.InvariantMatrix()
	t := thickness
	a := project(u, t, 1, lp.XiA1, lp.XiA2, lp.XiA3, lp.XiA4)
	b := project(u, t*t/4, 0, lp.XiB1, lp.XiB2, lp.XiB3, lp.XiB4)
	d := project(u, t*t*t/12, 1, lp.XiD1, lp.XiD2, lp.XiD3, lp.XiD4)
	e := project(u, t, 1, lp.XiE1, lp.XiE2, lp.XiE3, lp.XiE4)

	l := New()
	l.Material = m
	l.H = t
	l.Rho = m.Rho
	l.IntRho = m.Rho * t
	l.IntRhoZ2 = m.Rho * t * t * t / 12

	// rows 3 to 5 hold the transverse shear terms, used for E only
	l.A11, l.A22, l.A12, l.A66, l.A16, l.A26 = a[0], a[1], a[2], a[6], a[7], a[8]
	l.B11, l.B22, l.B12, l.B66, l.B16, l.B26 = b[0], b[1], b[2], b[6], b[7], b[8]
	l.D11, l.D22, l.D12, l.D66, l.D16, l.D26 = d[0], d[1], d[2], d[6], d[7], d[8]
	l.E44, l.E55, l.E45 = e[3], e[4], e[5]
	return l, nil
}

// FromParameterValues is FromParameters taking the 16 lamination parameters
// as separate values.
func FromParameterValues(thickness float64, m *material.Material,
	xiA1, xiA2, xiA3, xiA4,
	xiB1, xiB2, xiB3, xiB4,
	xiD1, xiD2, xiD3, xiD4,
	xiE1, xiE2, xiE3, xiE4 float64) (*Laminate, error) {
	lp := LaminationParameters{
		XiA1: xiA1, XiA2: xiA2, XiA3: xiA3, XiA4: xiA4,
		XiB1: xiB1, XiB2: xiB2, XiB3: xiB3, XiB4: xiB4,
		XiD1: xiD1, XiD2: xiD2, XiD3: xiD3, XiD4: xiD4,
		XiE1: xiE1, XiE2: xiE2, XiE3: xiE3, XiE4: xiE4,
	}
	return FromParameters(thickness, m, lp)
}

// project returns scale * U * [xi0, xi1, xi2, xi3, xi4]
func project(u *mat.Dense, scale, xi0, xi1, xi2, xi3, xi4 float64) []float64 {
	var v mat.VecDense
	v.MulVec(u, mat.NewVecDense(5, []float64{xi0, xi1, xi2, xi3, xi4}))
	v.ScaleVec(scale, &v)
	return v.RawVector().Data
}
