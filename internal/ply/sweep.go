package ply

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/golam/internal/material"
)

// MaxSweepPoints bounds the number of angles a Sweep evaluates
const MaxSweepPoints = 10000

// Terms are the names of the rotated stiffness terms
var Terms = []string{"q11", "q12", "q16", "q22", "q26", "q66", "q44", "q45", "q55"}

// Term returns the rotated stiffness term called name, e.g. "q16"
func (p *Ply) Term(name string) (float64, error) {
	switch strings.ToLower(name) {
	case "q11":
		return p.Q11L, nil
	case "q12":
		return p.Q12L, nil
	case "q16":
		return p.Q16L, nil
	case "q22":
		return p.Q22L, nil
	case "q26":
		return p.Q26L, nil
	case "q66":
		return p.Q66L, nil
	case "q44":
		return p.Q44L, nil
	case "q45":
		return p.Q45L, nil
	case "q55":
		return p.Q55L, nil
	}
	return 0, &ValidationError{msg: fmt.Sprintf("unknown stiffness term %q, want one of %s", name, strings.Join(Terms, ", "))}
}

// Sweep evaluates a rotated stiffness term of m for the angles from, from+step,
// ... up to and including to (degrees).
func Sweep(m *material.Material, term string, from, to, step float64) (angles, values []float64, err error) {
	if step <= 0 {
		return nil, nil, &ValidationError{msg: fmt.Sprintf("sweep step must be positive, got %g", step)}
	}
	if to < from {
		return nil, nil, &ValidationError{msg: fmt.Sprintf("sweep end %g is before start %g", to, from)}
	}

	steps := math.Floor((to-from)/step + 1e-9)
	if steps+1 > MaxSweepPoints {
		return nil, nil, &ValidationError{msg: fmt.Sprintf("sweep of %g points exceeds the limit of %d", steps+1, MaxSweepPoints)}
	}
	n := int(steps) + 1
	angles = make([]float64, 0, n)
	values = make([]float64, 0, n)

	p := &Ply{Material: m, H: 1}
	for i := 0; i < n; i++ {
		p.Angle = from + float64(i)*step
		if err := p.Rebuild(); err != nil {
			return nil, nil, err
		}
		v, err := p.Term(term)
		if err != nil {
			return nil, nil, err
		}
		angles = append(angles, p.Angle)
		values = append(values, v)
	}
	return angles, values, nil
}
