// Package catalog defines the nutrient catalog data model and its loader.
//
// A catalog is loaded once at session start and treated as immutable from
// then on; every calculation reads from the same value, so concurrent use
// needs no locking.
package catalog

// BaseUnit defines the reference volume for one unit system, e.g. 1 litre
// for "metric" or 1 gallon for "imperial". Concentrations are expressed per
// this volume. The two systems are independently authored baselines, not
// values convertible through a fixed ratio.
type BaseUnit struct {
	Volume float64 `json:"volume"`
}

// Component is one nutrient ingredient within a growth stage. Name doubles
// as the join key against category adjustments.
type Component struct {
	Name          string             `json:"name"`
	Concentration map[string]float64 `json:"concentration"`
	Unit          map[string]string  `json:"unit"`
}

// Product is one manufacturer+series nutrient line. The pair identifies the
// product uniquely within a catalog. Stage component slices keep the order
// of the source document; it reflects the manufacturer's mixing sequence.
type Product struct {
	Manufacturer string                 `json:"manufacturer"`
	Series       string                 `json:"series"`
	BaseUnit     map[string]BaseUnit    `json:"base_unit"`
	Stages       map[string][]Component `json:"stages"`
}

// Supplement is a cal/mag style additive dosed independently of the stage
// table. Unlike Component, the display label is a single flat string rather
// than a per-unit-system map; existing catalog files are authored that way.
type Supplement struct {
	Product       string              `json:"product"`
	BaseUnit      map[string]BaseUnit `json:"base_unit"`
	Concentration map[string]float64  `json:"concentration"`
	Unit          string              `json:"unit"`
}

// CategoryAdjustments holds per-stage additive corrections for one plant
// category, keyed stage name -> component name -> delta.
type CategoryAdjustments struct {
	RecommendedAdjustments map[string]map[string]float64 `json:"recommended_adjustments"`
}

// Catalog is the root document: nutrient products, supplements and the
// plant-category adjustment table.
type Catalog struct {
	Nutrients         []Product                      `json:"nutrients"`
	CalMagSupplements []Supplement                   `json:"cal_mag_supplements"`
	PlantCategories   map[string]CategoryAdjustments `json:"plant_categories"`
}
