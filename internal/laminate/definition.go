package laminate

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/golam/internal/catalog"
	"github.com/alexiusacademia/golam/internal/material"
)

// Definition is a laminate described in a JSON file.
//
// Plies are listed bottom to top. A ply names either an entry of Materials
// or a catalog preset.
type Definition struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Offset of the reference surface from the mid-plane
	Offset float64 `json:"offset,omitempty"`

	Materials map[string]MaterialDef `json:"materials,omitempty"`
	Plies     []PlyDef               `json:"plies"`
}

// MaterialDef is a lamina property tuple, see material.ReadLaminaProp
type MaterialDef struct {
	Props []float64 `json:"props"`
	Rho   float64   `json:"rho,omitempty"`
}

// PlyDef is one ply of a Definition
type PlyDef struct {
	Angle     float64 `json:"angle"`     // degrees
	Thickness float64 `json:"thickness"` // same length unit as the moduli
	Material  string  `json:"material"`
}

// LoadFromFile loads a laminate definition from a JSON file
func LoadFromFile(filepath string) (*Definition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, err
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// Validate checks if the laminate definition is valid
func (d *Definition) Validate() error {
	if len(d.Plies) == 0 {
		return &ValidationError{"laminate must have at least one ply"}
	}
	for name, m := range d.Materials {
		switch len(m.Props) {
		case 2, 3, 6, 9:
		default:
			return &ValidationError{msg: fmt.Sprintf("material %q must have 2, 3, 6 or 9 properties", name)}
		}
	}
	for i, p := range d.Plies {
		if p.Thickness <= 0 {
			return &ValidationError{msg: fmt.Sprintf("ply %d must have positive thickness", i+1)}
		}
		if _, ok := d.Materials[p.Material]; ok {
			continue
		}
		if _, ok := catalog.Lookup(p.Material); !ok {
			return &ValidationError{msg: fmt.Sprintf("ply %d: unknown material %q", i+1, p.Material)}
		}
	}
	return nil
}

// Build creates the laminate, rebuilds it and computes its constitutive
// matrices. Plies naming the same material share one Material.
func (d *Definition) Build() (*Laminate, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	materials := make(map[string]*material.Material)
	l := New()
	l.Offset = d.Offset
	for i, p := range d.Plies {
		m, ok := materials[p.Material]
		if !ok {
			var err error
			m, err = d.material(p.Material)
			if err != nil {
				return nil, fmt.Errorf("ply %d: %w", i+1, err)
			}
			materials[p.Material] = m
		}
		l.AddPly(m, p.Thickness, p.Angle)
	}

	if err := l.Rebuild(); err != nil {
		return nil, err
	}
	l.CalcConstitutiveMatrix()
	return l, nil
}

func (d *Definition) material(name string) (*material.Material, error) {
	if def, ok := d.Materials[name]; ok {
		m, err := material.ReadLaminaProp(def.Rho, def.Props...)
		if err != nil {
			return nil, err
		}
		m.Name = name
		return m, nil
	}
	preset, ok := catalog.Lookup(name)
	if !ok {
		return nil, &ValidationError{msg: fmt.Sprintf("unknown material %q", name)}
	}
	return preset.Material()
}

// ParametersDefinition describes a laminate by its lamination parameters in
// a JSON file.
type ParametersDefinition struct {
	Name      string       `json:"name,omitempty"`
	Thickness float64      `json:"thickness"`
	Material  *MaterialDef `json:"material,omitempty"`
	Preset    string       `json:"preset,omitempty"`

	XiA [4]float64 `json:"xiA"`
	XiB [4]float64 `json:"xiB"`
	XiD [4]float64 `json:"xiD"`
	XiE [4]float64 `json:"xiE"`
}

// LoadParametersFromFile loads a lamination parameter definition from a JSON
// file
func LoadParametersFromFile(filepath string) (*ParametersDefinition, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var def ParametersDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, err
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// Validate checks if the lamination parameter definition is valid
func (d *ParametersDefinition) Validate() error {
	if d.Thickness <= 0 {
		return &ValidationError{"thickness must be positive"}
	}
	if d.Material == nil && d.Preset == "" {
		return &ValidationError{"either material or preset must be given"}
	}
	if d.Material == nil {
		if _, ok := catalog.Lookup(d.Preset); !ok {
			return &ValidationError{msg: fmt.Sprintf("unknown preset %q", d.Preset)}
		}
	}
	for _, xi := range [][4]float64{d.XiA, d.XiB, d.XiD, d.XiE} {
		for _, v := range xi {
			if v < -1 || v > 1 {
				return &ValidationError{msg: fmt.Sprintf("lamination parameter %g outside [-1, 1]", v)}
			}
		}
	}
	return nil
}

// Parameters returns the lamination parameters of the definition
func (d *ParametersDefinition) Parameters() LaminationParameters {
	return LaminationParameters{
		XiA1: d.XiA[0], XiA2: d.XiA[1], XiA3: d.XiA[2], XiA4: d.XiA[3],
		XiB1: d.XiB[0], XiB2: d.XiB[1], XiB3: d.XiB[2], XiB4: d.XiB[3],
		XiD1: d.XiD[0], XiD2: d.XiD[1], XiD3: d.XiD[2], XiD4: d.XiD[3],
		XiE1: d.XiE[0], XiE2: d.XiE[1], XiE3: d.XiE[2], XiE4: d.XiE[3],
	}
}

// LaminaMaterial builds the material of the definition
func (d *ParametersDefinition) LaminaMaterial() (*material.Material, error) {
	if d.Material != nil {
		m, err := material.ReadLaminaProp(d.Material.Rho, d.Material.Props...)
		if err != nil {
			return nil, err
		}
		m.Name = "custom"
		return m, nil
	}
	preset, ok := catalog.Lookup(d.Preset)
	if !ok {
		return nil, &ValidationError{msg: fmt.Sprintf("unknown preset %q", d.Preset)}
	}
	return preset.Material()
}
