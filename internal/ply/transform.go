package ply

import "gonum.org/v1/gonum/mat"

// TransfMatrixDisplToLaminate returns the 3x3 rotation taking displacement
// components from the ply axes to the laminate axes.
func (p *Ply) TransfMatrixDisplToLaminate() *mat.Dense {
	c, s := p.CosT, p.SinT
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// TransfMatrixStressToLamina returns the 6x6 transformation of a stress
// vector (11, 22, 33, 23, 13, 12) from the laminate axes to the ply axes.
func (p *Ply) TransfMatrixStressToLamina() *mat.Dense {
	c, s := p.CosT, p.SinT
	cs := p.Sin2T / 2
	return mat.NewDense(6, 6, []float64{
		c * c, s * s, 0, 0, 0, p.Sin2T,
		s * s, c * c, 0, 0, 0, -p.Sin2T,
		0, 0, 1, 0, 0, 0,
		0, 0, 0, c, -s, 0,
		0, 0, 0, s, c, 0,
		-cs, cs, 0, 0, 0, p.Cos2T,
	})
}

// TransfMatrixStressToLaminate is the inverse of TransfMatrixStressToLamina.
func (p *Ply) TransfMatrixStressToLaminate() *mat.Dense {
	c, s := p.CosT, p.SinT
	cs := p.Sin2T / 2
	return mat.NewDense(6, 6, []float64{
		c * c, s * s, 0, 0, 0, -p.Sin2T,
		s * s, c * c, 0, 0, 0, p.Sin2T,
		0, 0, 1, 0, 0, 0,
		0, 0, 0, c, s, 0,
		0, 0, 0, -s, c, 0,
		cs, -cs, 0, 0, 0, p.Cos2T,
	})
}
