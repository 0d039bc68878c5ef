package cmd

import (
	"testing"

	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaminaMaterial(t *testing.T) {
	m, err := laminaMaterial([]float64{70e3, 0.3}, "", 2700)
	require.NoError(t, err)
	assert.Equal(t, "custom", m.Name)
	assert.Equal(t, 2700.0, m.Rho)

	// props win over the preset
	m, err = laminaMaterial([]float64{70e3, 0.3}, "T300/5208", 0)
	require.NoError(t, err)
	assert.Equal(t, 70e3, m.E1)

	m, err = laminaMaterial(nil, "t300/5208", 0)
	require.NoError(t, err)
	assert.Equal(t, "T300/5208", m.Name)
	assert.Equal(t, 1600.0, m.Rho)

	m, err = laminaMaterial(nil, "T300/5208", 1550)
	require.NoError(t, err)
	assert.Equal(t, 1550.0, m.Rho)

	_, err = laminaMaterial(nil, "", 0)
	assert.Error(t, err)
	_, err = laminaMaterial(nil, "balsa", 0)
	assert.ErrorContains(t, err, "balsa")
	_, err = laminaMaterial([]float64{1, 2, 3, 4}, "", 0)
	assert.Error(t, err)
}

func TestStackData(t *testing.T) {
	l, err := laminate.LaminatedPlate([]float64{0, 90, 45}, laminate.PlateOptions{
		PlyTs:      []float64{0.1, 0.2, 0.3},
		LaminaProp: []float64{70e3, 0.3},
		Offset:     0.05,
		SkipSCF:    true,
	})
	require.NoError(t, err)

	data := stackData("plate", l)
	assert.Equal(t, "plate", data.Name)
	assert.Equal(t, 0.05, data.Offset)
	require.Len(t, data.Plies, 3)
	assert.InDelta(t, -0.25, data.Plies[0].Bottom, 1e-12)
	assert.InDelta(t, data.Plies[0].Top, data.Plies[1].Bottom, 1e-12)
	assert.InDelta(t, 0.35, data.Plies[2].Top, 1e-12)
	assert.Equal(t, 45.0, data.Plies[2].Angle)
	assert.InDelta(t, 0.6, data.Thickness(), 1e-12)
}
