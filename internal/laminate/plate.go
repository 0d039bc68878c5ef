package laminate

import (
	"fmt"

	"github.com/alexiusacademia/golam/internal/material"
)

// PlateOptions describes the plies of a laminated plate. Either the uniform
// value or the per-ply slice must be given for thickness and properties;
// per-ply slices take precedence and must match the stack length.
type PlateOptions struct {
	PlyT  float64   // uniform ply thickness
	PlyTs []float64 // thickness of each ply

	LaminaProp  []float64   // uniform property tuple, see material.ReadLaminaProp
	LaminaProps [][]float64 // property tuple of each ply

	Rho  float64   // uniform density
	Rhos []float64 // density of each ply

	Offset float64

	// SkipSCF keeps the default 5/6 shear correction factors
	SkipSCF bool
}

// LaminatedPlate builds a laminate from the ply angles of stack (bottom to
// top, degrees), rebuilds it and computes its constitutive matrices and,
// unless SkipSCF is set, its shear correction factors.
func LaminatedPlate(stack []float64, opts PlateOptions) (*Laminate, error) {
	n := len(stack)
	if n == 0 {
		return nil, fmt.Errorf("laminated plate: %w", ErrNoPlies)
	}

	plyts := opts.PlyTs
	if plyts == nil {
		if opts.PlyT == 0 {
			return nil, &ValidationError{msg: "ply thickness or ply thicknesses must be supplied"}
		}
		plyts = repeat(opts.PlyT, n)
	}
	if len(plyts) != n {
		return nil, &ValidationError{msg: fmt.Sprintf("got %d ply thicknesses for %d plies", len(plyts), n)}
	}

	rhos := opts.Rhos
	if rhos == nil {
		rhos = repeat(opts.Rho, n)
	}
	if len(rhos) != n {
		return nil, &ValidationError{msg: fmt.Sprintf("got %d densities for %d plies", len(rhos), n)}
	}

	materials := make([]*material.Material, n)
	switch {
	case opts.LaminaProps != nil:
		if len(opts.LaminaProps) != n {
			return nil, &ValidationError{msg: fmt.Sprintf("got %d lamina properties for %d plies", len(opts.LaminaProps), n)}
		}
		for i, props := range opts.LaminaProps {
			m, err := material.ReadLaminaProp(rhos[i], props...)
			if err != nil {
				return nil, fmt.Errorf("ply %d: %w", i+1, err)
			}
			materials[i] = m
		}
	case opts.LaminaProp != nil:
		// plies with the same density share one material
		shared := make(map[float64]*material.Material)
		for i, rho := range rhos {
			m, ok := shared[rho]
			if !ok {
				var err error
				m, err = material.ReadLaminaProp(rho, opts.LaminaProp...)
				if err != nil {
					return nil, err
				}
				shared[rho] = m
			}
			materials[i] = m
		}
	default:
		return nil, &ValidationError{msg: "lamina properties must be supplied"}
	}

	l := New()
	l.Offset = opts.Offset
	for i, angle := range stack {
		l.AddPly(materials[i], plyts[i], angle)
	}
	if err := l.Rebuild(); err != nil {
		return nil, err
	}
	l.CalcConstitutiveMatrix()
	if !opts.SkipSCF {
		if _, _, err := l.CalcSCF(); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// IsotropicPlate builds a single-ply laminate of an isotropic material
func IsotropicPlate(thickness, e, nu, offset float64, calcSCF bool) (*Laminate, error) {
	return LaminatedPlate([]float64{0}, PlateOptions{
		PlyT:       thickness,
		LaminaProp: []float64{e, nu},
		Offset:     offset,
		SkipSCF:    !calcSCF,
	})
}

func repeat(v float64, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}
