package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// ErrMalformedCatalog marks a structural defect in a catalog document:
// missing required keys, wrong value types, duplicate identifiers, zero or
// negative base volumes, or component maps whose unit-system keys do not
// match the product's base units. Load-time only; not recoverable by retry.
var ErrMalformedCatalog = errors.New("malformed catalog")

// Load reads and parses a catalog document from path.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	cat, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes a catalog document and validates it. An empty product or
// supplement list is valid; a missing "nutrients" key is not.
func Parse(raw []byte) (*Catalog, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	if _, ok := probe["nutrients"]; !ok {
		return nil, fmt.Errorf("%w: missing \"nutrients\" key", ErrMalformedCatalog)
	}

	var cat Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Nutrients))
	for _, p := range c.Nutrients {
		if p.Manufacturer == "" || p.Series == "" {
			return fmt.Errorf("%w: product with empty manufacturer or series", ErrMalformedCatalog)
		}
		key := p.Manufacturer + "\x00" + p.Series
		if seen[key] {
			return fmt.Errorf("%w: duplicate product %q / %q", ErrMalformedCatalog, p.Manufacturer, p.Series)
		}
		seen[key] = true

		if len(p.BaseUnit) == 0 {
			return fmt.Errorf("%w: product %q / %q has no base units", ErrMalformedCatalog, p.Manufacturer, p.Series)
		}
		if err := validBaseUnits(p.BaseUnit); err != nil {
			return fmt.Errorf("%w: product %q / %q: %v", ErrMalformedCatalog, p.Manufacturer, p.Series, err)
		}
		for stage, comps := range p.Stages {
			for _, comp := range comps {
				if comp.Name == "" {
					return fmt.Errorf("%w: product %q / %q stage %q has an unnamed component", ErrMalformedCatalog, p.Manufacturer, p.Series, stage)
				}
				if err := comp.validate(p.BaseUnit); err != nil {
					return fmt.Errorf("%w: product %q / %q stage %q component %q: %v", ErrMalformedCatalog, p.Manufacturer, p.Series, stage, comp.Name, err)
				}
			}
		}
	}

	seenSupp := make(map[string]bool, len(c.CalMagSupplements))
	for _, s := range c.CalMagSupplements {
		if s.Product == "" {
			return fmt.Errorf("%w: supplement with empty product name", ErrMalformedCatalog)
		}
		if seenSupp[s.Product] {
			return fmt.Errorf("%w: duplicate supplement %q", ErrMalformedCatalog, s.Product)
		}
		seenSupp[s.Product] = true

		if len(s.BaseUnit) == 0 {
			return fmt.Errorf("%w: supplement %q has no base units", ErrMalformedCatalog, s.Product)
		}
		if err := validBaseUnits(s.BaseUnit); err != nil {
			return fmt.Errorf("%w: supplement %q: %v", ErrMalformedCatalog, s.Product, err)
		}
		if err := coveredKeys(s.Concentration, s.BaseUnit, "concentration"); err != nil {
			return fmt.Errorf("%w: supplement %q: %v", ErrMalformedCatalog, s.Product, err)
		}
		for unit, conc := range s.Concentration {
			if conc < 0 || math.IsNaN(conc) || math.IsInf(conc, 0) {
				return fmt.Errorf("%w: supplement %q: bad %s concentration %v", ErrMalformedCatalog, s.Product, unit, conc)
			}
		}
	}
	return nil
}

// validate checks a component's concentration and unit-label maps against
// the owning product's base-unit map: the key sets must match in both
// directions, and concentrations must be finite and non-negative.
func (comp Component) validate(base map[string]BaseUnit) error {
	if err := coveredKeys(comp.Concentration, base, "concentration"); err != nil {
		return err
	}
	for unit := range comp.Unit {
		if _, ok := base[unit]; !ok {
			return fmt.Errorf("unit label for unknown unit system %q", unit)
		}
	}
	for unit := range base {
		if _, ok := comp.Unit[unit]; !ok {
			return fmt.Errorf("no unit label for unit system %q", unit)
		}
	}
	for unit, conc := range comp.Concentration {
		if conc < 0 || math.IsNaN(conc) || math.IsInf(conc, 0) {
			return fmt.Errorf("bad %s concentration %v", unit, conc)
		}
	}
	return nil
}

func coveredKeys(m map[string]float64, base map[string]BaseUnit, what string) error {
	for unit := range m {
		if _, ok := base[unit]; !ok {
			return fmt.Errorf("%s for unknown unit system %q", what, unit)
		}
	}
	for unit := range base {
		if _, ok := m[unit]; !ok {
			return fmt.Errorf("no %s for unit system %q", what, unit)
		}
	}
	return nil
}

// A zero base volume would later divide out to +Inf; reject it at load time
// so the calculator never has to care.
func validBaseUnits(base map[string]BaseUnit) error {
	for unit, b := range base {
		if b.Volume <= 0 || math.IsNaN(b.Volume) || math.IsInf(b.Volume, 0) {
			return fmt.Errorf("base volume for %q must be a positive finite number, got %v", unit, b.Volume)
		}
	}
	return nil
}
