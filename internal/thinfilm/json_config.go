package thinfilm

import (
	"encoding/json"
	"fmt"
	"os"
)

// DispersionCfg selects one dispersion model for a medium. Build uses the
// first group that is set, in the order below, and ignores any later ones;
// a config that sets none is an error.
type DispersionCfg struct {
	// constant index n + ik
	N *Real `json:"n,omitempty"`
	K Real  `json:"k,omitempty"`
	// Cauchy coefficients [A, B, C] (C optional), wavelength unit matching
	// the stack's thickness unit
	Cauchy []Real `json:"cauchy,omitempty"`
	// three-term Sellmeier coefficients
	SellmeierB []Real `json:"sellmeierB,omitempty"`
	SellmeierC []Real `json:"sellmeierC,omitempty"`
	// CSV file with header lambda,n[,k]
	TableCSV string `json:"tableCSV,omitempty"`
}

func (c *DispersionCfg) Build() (Dispersion, error) {
	switch {
	case c.N != nil:
		return Constant(complex(*c.N, c.K)), nil
	case len(c.Cauchy) > 0:
		if len(c.Cauchy) < 2 || len(c.Cauchy) > 3 {
			return nil, fmt.Errorf("cauchy wants [A, B] or [A, B, C], got %d values", len(c.Cauchy))
		}
		cc := 0.0
		if len(c.Cauchy) == 3 {
			cc = c.Cauchy[2]
		}
		return NewCauchy(c.Cauchy[0], c.Cauchy[1], cc), nil
	case len(c.SellmeierB) > 0 || len(c.SellmeierC) > 0:
		if len(c.SellmeierB) != 3 || len(c.SellmeierC) != 3 {
			return nil, fmt.Errorf("sellmeier wants 3 B and 3 C coefficients, got %d and %d",
				len(c.SellmeierB), len(c.SellmeierC))
		}
		s := &Sellmeier{}
		copy(s.B[:], c.SellmeierB)
		copy(s.C[:], c.SellmeierC)
		return s, nil
	case c.TableCSV != "":
		return LoadTableCSV(c.TableCSV)
	}
	return nil, fmt.Errorf("dispersion config selects no model")
}

// LayerCfg is one finite film of the multilayer.
type LayerCfg struct {
	Material  DispersionCfg `json:"material"`
	Thickness Real          `json:"thickness"` // same unit as wavelengths (nm)
}

// SweepCfg describes an even wavelength grid.
type SweepCfg struct {
	From  Real `json:"from"`
	To    Real `json:"to"`
	Steps int  `json:"steps"`
}

// Config is the on-disk description of a job: the stack from top to
// bottom, the illumination, and the requested outputs.
type Config struct {
	Top    DispersionCfg `json:"top"`
	Bottom DispersionCfg `json:"bottom"`
	Films  []LayerCfg    `json:"films,omitempty"`

	Polarization string    `json:"polarization,omitempty"` // "s", "p" or "u" (default "u")
	AngleDeg     Real      `json:"angleDeg,omitempty"`
	Wavelength   Real      `json:"wavelength,omitempty"`
	Sweep        *SweepCfg `json:"sweep,omitempty"`

	PlotOut    string `json:"plotOut,omitempty"`
	PrintStack bool   `json:"printStack,omitempty"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &cfg, nil
}

// BuildStack assembles the configured multilayer, top to bottom.
func (c *Config) BuildStack() (*Stack, error) {
	top, err := c.Top.Build()
	if err != nil {
		return nil, fmt.Errorf("top: %w", err)
	}
	bottom, err := c.Bottom.Build()
	if err != nil {
		return nil, fmt.Errorf("bottom: %w", err)
	}
	s := NewStack(top, bottom)
	for i, f := range c.Films {
		m, err := f.Material.Build()
		if err != nil {
			return nil, fmt.Errorf("film %d: %w", i, err)
		}
		if err := s.InsertLayer(m, f.Thickness); err != nil {
			return nil, fmt.Errorf("film %d: %w", i, err)
		}
	}
	return s, nil
}
