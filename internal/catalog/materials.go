package catalog

import (
	"sort"
	"strings"

	"github.com/alexiusacademia/golam/internal/material"
)

// Preset is a named set of lamina properties.
// Moduli are in MPa and densities in kg/m³.
type Preset struct {
	Name        string
	Description string
	Props       []float64 // see material.ReadLaminaProp
	Rho         float64
}

// Typical unidirectional lamina properties
// (Tsai & Hahn; Daniel & Ishai, Engineering Mechanics of Composite Materials)
var Presets = []Preset{
	{
		Name:        "T300/5208",
		Description: "Carbon/epoxy, standard modulus",
		Props:       []float64{181e3, 10.3e3, 0.28, 7.17e3, 7.17e3, 3.5e3},
		Rho:         1600,
	},
	{
		Name:        "AS4/3501-6",
		Description: "Carbon/epoxy, aerospace prepreg",
		Props:       []float64{142e3, 10.3e3, 0.27, 7.2e3, 7.2e3, 3.1e3},
		Rho:         1580,
	},
	{
		Name:        "IM7/8552",
		Description: "Carbon/epoxy, intermediate modulus",
		Props:       []float64{171.4e3, 9.08e3, 0.32, 5.29e3, 5.29e3, 3.98e3},
		Rho:         1570,
	},
	{
		Name:        "E-glass/epoxy",
		Description: "Glass/epoxy, unidirectional",
		Props:       []float64{38.6e3, 8.27e3, 0.26, 4.14e3, 4.14e3, 3.0e3},
		Rho:         1800,
	},
	{
		Name:        "Kevlar49/epoxy",
		Description: "Aramid/epoxy, unidirectional",
		Props:       []float64{76e3, 5.5e3, 0.34, 2.3e3, 2.3e3, 1.8e3},
		Rho:         1460,
	},
	{
		Name:        "Al2024-T3",
		Description: "Aluminium alloy, isotropic",
		Props:       []float64{73.1e3, 0.33},
		Rho:         2780,
	},
}

// Lookup finds a preset by name, ignoring case
func Lookup(name string) (Preset, bool) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// Names returns the sorted preset names
func Names() []string {
	names := make([]string, 0, len(Presets))
	for _, p := range Presets {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// Material builds and rebuilds the material of the preset
func (p Preset) Material() (*material.Material, error) {
	m, err := material.ReadLaminaProp(p.Rho, p.Props...)
	if err != nil {
		return nil, err
	}
	m.Name = p.Name
	return m, nil
}
