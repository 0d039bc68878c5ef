package material

import "fmt"

// ReadLaminaProp builds and rebuilds a Material from a property tuple.
//
// Accepted forms:
//
//	(e, nu)                                   isotropic
//	(e, _, nu)                                isotropic, legacy form
//	(e1, e2, nu12, g12, g13, g23)             transversely isotropic, e3 = e2
//	(e1, e2, nu12, g12, g13, g23, e3, nu13, nu23)
//
// nu21, nu31 and nu32 are derived from the reciprocity relations.
func ReadLaminaProp(rho float64, props ...float64) (*Material, error) {
	switch len(props) {
	case 2, 3:
		e := props[0]
		nu := props[len(props)-1]
		g := e / (2 * (1 + nu))
		props = []float64{e, e, nu, g, g, g, e, nu, nu}
	case 6:
		props = append(props[:6:6], props[1], props[2], props[2])
	case 9:
	default:
		return nil, &ValidationError{msg: fmt.Sprintf("lamina properties must have 2, 3, 6 or 9 values, got %d", len(props))}
	}

	m := &Material{
		E1:   props[0],
		E2:   props[1],
		E3:   props[6],
		Nu12: props[2],
		Nu13: props[7],
		Nu23: props[8],
		G12:  props[3],
		G13:  props[4],
		G23:  props[5],
		Rho:  rho,
	}
	if m.E1 <= 0 || m.E2 <= 0 {
		return nil, &ValidationError{msg: fmt.Sprintf("moduli must be positive: e1=%g, e2=%g", m.E1, m.E2)}
	}
	m.Nu21 = m.Nu12 * m.E2 / m.E1
	m.Nu31 = m.Nu13 * m.E3 / m.E1
	m.Nu32 = m.Nu23 * m.E3 / m.E2

	if err := m.Rebuild(); err != nil {
		return nil, err
	}
	return m, nil
}

// Isotropic returns a rebuilt isotropic material with G = E/(2(1+nu)).
func Isotropic(e, nu, rho float64) (*Material, error) {
	return ReadLaminaProp(rho, e, nu)
}
