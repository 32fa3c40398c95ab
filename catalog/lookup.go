package catalog

import "sort"

// Product returns the product identified by the manufacturer+series pair,
// or (nil, false) if the catalog has no such product.
func (c *Catalog) Product(manufacturer, series string) (*Product, bool) {
	for i := range c.Nutrients {
		p := &c.Nutrients[i]
		if p.Manufacturer == manufacturer && p.Series == series {
			return p, true
		}
	}
	return nil, false
}

// Supplement returns the supplement with the given product name, or
// (nil, false) if absent.
func (c *Catalog) Supplement(name string) (*Supplement, bool) {
	for i := range c.CalMagSupplements {
		s := &c.CalMagSupplements[i]
		if s.Product == name {
			return s, true
		}
	}
	return nil, false
}

// HasCategory reports whether the catalog knows the plant category.
func (c *Catalog) HasCategory(name string) bool {
	_, ok := c.PlantCategories[name]
	return ok
}

// Adjustment is the soft three-level adjustment lookup: absence at any
// level (category, stage, component) means "no adjustment" and yields zero,
// never an error.
func (c *Catalog) Adjustment(category, stage, component string) float64 {
	cat, ok := c.PlantCategories[category]
	if !ok {
		return 0
	}
	stageAdj, ok := cat.RecommendedAdjustments[stage]
	if !ok {
		return 0
	}
	return stageAdj[component]
}

// Stage returns the ordered component list for a stage, or (nil, false) if
// the product has no such stage.
func (p *Product) Stage(name string) ([]Component, bool) {
	comps, ok := p.Stages[name]
	return comps, ok
}

// BaseVolume resolves the reference volume for a unit-system key. This is a
// pure per-product lookup; metric and imperial baselines are independently
// authored and must not be assumed convertible through a constant factor.
func (p *Product) BaseVolume(unit string) (float64, bool) {
	b, ok := p.BaseUnit[unit]
	return b.Volume, ok
}

// BaseVolume resolves the supplement's reference volume for a unit-system key.
func (s *Supplement) BaseVolume(unit string) (float64, bool) {
	b, ok := s.BaseUnit[unit]
	return b.Volume, ok
}

// StageNames returns the product's stage names, sorted.
func (p *Product) StageNames() []string {
	names := make([]string, 0, len(p.Stages))
	for name := range p.Stages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnitSystems returns the product's unit-system keys, sorted.
func (p *Product) UnitSystems() []string {
	units := make([]string, 0, len(p.BaseUnit))
	for unit := range p.BaseUnit {
		units = append(units, unit)
	}
	sort.Strings(units)
	return units
}

// Categories returns the catalog's plant-category names, sorted.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.PlantCategories))
	for name := range c.PlantCategories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SupplementNames returns the supplement product names in catalog order.
func (c *Catalog) SupplementNames() []string {
	names := make([]string, 0, len(c.CalMagSupplements))
	for _, s := range c.CalMagSupplements {
		names = append(names, s.Product)
	}
	return names
}
