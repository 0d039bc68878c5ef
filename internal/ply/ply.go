package ply

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/golam/internal/material"
	"gonum.org/v1/gonum/mat"
)

// ErrNoMaterial is returned when a ply is rebuilt without a material
var ErrNoMaterial = errors.New("ply has no material")

// Ply is a single layer of a laminate: a material oriented at Angle degrees
// from the laminate 1-axis, with thickness H.
//
// The material is referenced, not owned. Several plies may point to the
// same Material, which must have been rebuilt before Ply.Rebuild is called.
type Ply struct {
	Material *material.Material
	H        float64 // thickness
	Angle    float64 // degrees

	// Trigonometric cache
	CosT, Cos2T, Cos4T float64
	SinT, Sin2T, Sin4T float64

	// Reduced stiffness in the laminate frame
	Q11L, Q12L, Q16L float64
	Q22L, Q26L, Q66L float64
	Q44L, Q45L, Q55L float64
}

// New creates a ply and rebuilds it
func New(m *material.Material, h, angle float64) (*Ply, error) {
	p := &Ply{Material: m, H: h, Angle: angle}
	if err := p.Rebuild(); err != nil {
		return nil, err
	}
	return p, nil
}

// Rebuild recomputes the trigonometric cache and the rotated reduced
// stiffness from the material constants and the ply angle.
func (p *Ply) Rebuild() error {
	if p.Material == nil {
		return ErrNoMaterial
	}
	if p.H <= 0 {
		return &ValidationError{msg: fmt.Sprintf("ply thickness must be positive, got %g", p.H)}
	}

	theta := p.Angle * math.Pi / 180
	p.CosT, p.SinT = math.Cos(theta), math.Sin(theta)
	p.Cos2T, p.Sin2T = math.Cos(2*theta), math.Sin(2*theta)
	p.Cos4T, p.Sin4T = math.Cos(4*theta), math.Sin(4*theta)

	m := p.Material
	den := 1 - m.Nu12*m.Nu21
	if den == 0 {
		return &ValidationError{msg: "degenerate material: nu12*nu21 = 1"}
	}

	// plane stress, orthotropic in the material axes (q16 = q26 = 0)
	q11 := m.E1 / den
	q12 := m.Nu12 * m.E2 / den
	q22 := m.E2 / den
	q44 := m.G23
	q55 := m.G13
	q66 := m.G12

	c, s := p.CosT, p.SinT
	c2, s2 := c*c, s*s
	c3, s3 := c2*c, s2*s
	c4, s4 := c2*c2, s2*s2

	// Reddy, Eq. 2.3.17
	p.Q11L = q11*c4 + 2*(q12+2*q66)*s2*c2 + q22*s4
	p.Q12L = (q11+q22-4*q66)*s2*c2 + q12*(s4+c4)
	p.Q22L = q11*s4 + 2*(q12+2*q66)*s2*c2 + q22*c4
	p.Q16L = (q11-q12-2*q66)*s*c3 + (q12-q22+2*q66)*s3*c
	p.Q26L = (q11-q12-2*q66)*s3*c + (q12-q22+2*q66)*s*c3
	p.Q66L = (q11+q22-2*q12-2*q66)*s2*c2 + q66*(s4+c4)

	p.Q44L = q44*c2 + q55*s2
	p.Q45L = (q55 - q44) * s * c
	p.Q55L = q55*c2 + q44*s2

	return nil
}

// ConstitutiveMatrix returns the 5x5 rotated stiffness matrix: the in-plane
// 3x3 block (11, 22, 12) followed by the transverse shear 2x2 block (23, 13).
func (p *Ply) ConstitutiveMatrix() *mat.Dense {
	return mat.NewDense(5, 5, []float64{
		p.Q11L, p.Q12L, p.Q16L, 0, 0,
		p.Q12L, p.Q22L, p.Q26L, 0, 0,
		p.Q16L, p.Q26L, p.Q66L, 0, 0,
		0, 0, 0, p.Q44L, p.Q45L,
		0, 0, 0, p.Q45L, p.Q55L,
	})
}

// ValidationError represents an invalid ply definition
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
