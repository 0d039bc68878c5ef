package laminate

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/golam/internal/ply"
	"gonum.org/v1/gonum/mat"
)

// CalcEquivalentProperties derives the membrane engineering constants of the
// laminate from the inverse of its ABD matrix. CalcConstitutiveMatrix must
// have been called.
func (l *Laminate) CalcEquivalentProperties() error {
	if l.H <= 0 {
		return &ValidationError{msg: fmt.Sprintf("laminate thickness must be positive, got %g", l.H)}
	}

	var inv mat.Dense
	if err := inv.Inverse(l.ABD()); err != nil {
		return fmt.Errorf("inverting ABD matrix: %w", err)
	}

	a11, a12, a22, a33 := inv.At(0, 0), inv.At(0, 1), inv.At(1, 1), inv.At(2, 2)
	l.E1 = 1 / (l.H * a11)
	l.E2 = 1 / (l.H * a22)
	l.G12 = 1 / (l.H * a33)
	l.Nu12 = -a12 / a11
	l.Nu21 = -a12 / a22
	return nil
}

// CalcSCF computes the transverse shear correction factors k13 and k23 with
// the single-factor method of Vlachoutsis (Int. J. Numer. Meth. Engng 33,
// 1992) and stores them in SCFk13 and SCFk23.
//
// Each ply contributes constant bending and shear moduli. The bending moduli
// interpolate between the material directions with |cos| and |sin| of the
// ply angle (not their squares), which keeps them positive. The shear stress follows from equilibrium,
// g(z) = int Eb (z - zn) dz, and
//
//	k = R^2 / (int G dz * int g^2/G dz),  R = int Eb (z - zn)^2 dz
//
// with every integral evaluated in closed form ply by ply.
func (l *Laminate) CalcSCF() (k13, k23 float64, err error) {
	if len(l.Plies) == 0 {
		return 0, 0, fmt.Errorf("shear correction factors: %w", ErrNoPlies)
	}

	layers := make([]scfLayer, 0, len(l.Plies))
	z := -l.thickness()/2 + l.Offset
	for i, p := range l.Plies {
		if p.Material == nil {
			return 0, 0, fmt.Errorf("ply %d: %w", i+1, ply.ErrNoMaterial)
		}
		m := p.Material
		theta := p.Angle * math.Pi / 180
		// |cos|, |sin| so that θ, -θ and θ+180° give the same moduli
		c, s := math.Abs(math.Cos(theta)), math.Abs(math.Sin(theta))

		e1 := m.E1*c + m.E2*s
		e2 := m.E2*c + m.E1*s
		nu12 := m.Nu12*c + m.Nu21*s
		nu21 := m.Nu21*c + m.Nu12*s
		den := 1 - nu12*nu21
		if den == 0 {
			return 0, 0, &ValidationError{msg: fmt.Sprintf("ply %d: degenerate Poisson's ratios", i+1)}
		}

		layers = append(layers, scfLayer{
			z1:  z,
			z2:  z + p.H,
			eb1: e1 / den,
			eb2: e2 / den,
			g13: m.G13,
			g23: m.G23,
		})
		z += p.H
	}

	k13, err = shearCorrection(layers, func(ly scfLayer) (float64, float64) { return ly.eb1, ly.g13 })
	if err != nil {
		return 0, 0, fmt.Errorf("k13: %w", err)
	}
	k23, err = shearCorrection(layers, func(ly scfLayer) (float64, float64) { return ly.eb2, ly.g23 })
	if err != nil {
		return 0, 0, fmt.Errorf("k23: %w", err)
	}

	l.SCFk13, l.SCFk23 = k13, k23
	return k13, k23, nil
}

type scfLayer struct {
	z1, z2   float64
	eb1, eb2 float64
	g13, g23 float64
}

func shearCorrection(layers []scfLayer, moduli func(scfLayer) (eb, g float64)) (float64, error) {
	// neutral axis of the bending modulus distribution
	var s0, s1 float64
	for _, ly := range layers {
		eb, _ := moduli(ly)
		s0 += eb * (ly.z2 - ly.z1)
		s1 += eb * (ly.z2*ly.z2 - ly.z1*ly.z1) / 2
	}
	if s0 == 0 {
		return 0, &ValidationError{msg: "bending stiffness is zero"}
	}
	zn := s1 / s0

	var d, r, energy, gint float64
	for _, ly := range layers {
		eb, g := moduli(ly)
		if g <= 0 {
			return 0, &ValidationError{msg: fmt.Sprintf("transverse shear modulus must be positive, got %g", g)}
		}
		u1, u2 := ly.z1-zn, ly.z2-zn

		// g(u) = c + eb*u^2/2 inside the ply, d is g at the ply bottom
		c := d - eb*u1*u1/2
		antiderivative := func(u float64) float64 {
			u3 := u * u * u
			return c*c*u + c*eb*u3/3 + eb*eb*u3*u*u/20
		}
		energy += (antiderivative(u2) - antiderivative(u1)) / g

		r += eb * (u2*u2*u2 - u1*u1*u1) / 3
		d += eb * (u2*u2 - u1*u1) / 2
		gint += g * (ly.z2 - ly.z1)
	}
	if energy == 0 || gint == 0 {
		return 0, &ValidationError{msg: "shear energy is zero"}
	}
	return r * r / (gint * energy), nil
}

// ShearStiffness returns the transverse shear matrix E scaled by the shear
// correction factors.
func (l *Laminate) ShearStiffness() *mat.Dense {
	k45 := math.Sqrt(l.SCFk13 * l.SCFk23)
	return mat.NewDense(2, 2, []float64{
		l.SCFk23 * l.E44, k45 * l.E45,
		k45 * l.E45, l.SCFk13 * l.E55,
	})
}
