// Package dosing contains the core logic for computing nutrient dosing
// amounts from a loaded catalog and a user selection.
package dosing

import (
	"fmt"
	"log"
	"math"

	"gardenpip/catalog"
)

// NoSupplement is the selector sentinel meaning "no cal/mag supplement".
// An empty CalMag field means the same thing.
const NoSupplement = "None"

// Selection is one calculation request. It exists only for the duration of
// a single Calculate call and is never persisted by the engine itself.
type Selection struct {
	Manufacturer  string  `json:"manufacturer"`
	Series        string  `json:"series"`
	Stage         string  `json:"stage"`
	PlantCategory string  `json:"plant_category"`
	Unit          string  `json:"unit"`
	Volume        float64 `json:"volume"`
	CalMag        string  `json:"cal_mag,omitempty"`
}

// Dose is one computed row: the final amount for a component (baseline
// scaled to the requested volume, plus any category adjustment) together
// with the adjustment that went into it.
type Dose struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Adjustment float64 `json:"adjustment,omitempty"`
	Unit       string  `json:"unit"`
}

// Result is an ordered dosing plan. Doses and Lines run in the stage's
// stored component order (the manufacturer's mixing sequence), with the
// supplement, when present, appended last.
type Result struct {
	Doses []Dose   `json:"doses"`
	Lines []string `json:"lines"`
}

// Calculate validates the selection against the catalog and computes the
// dosing plan.
//
// Validation is fail-fast with the most specific error first: product,
// then stage, then plant category, then unit system, then volume. An empty
// plant category is treated as "no category" and is always valid. On any
// validation failure no lines are produced.
//
// A cal/mag supplement that cannot be resolved is intentionally soft: the
// supplement line is omitted and the primary lines are returned as usual.
func Calculate(cat *catalog.Catalog, sel Selection) (*Result, error) {
	product, ok := cat.Product(sel.Manufacturer, sel.Series)
	if !ok {
		return nil, fmt.Errorf("%w: %q / %q", ErrUnknownProduct, sel.Manufacturer, sel.Series)
	}
	components, ok := product.Stage(sel.Stage)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no stage %q", ErrUnknownStage, sel.Series, sel.Stage)
	}
	if sel.PlantCategory != "" && !cat.HasCategory(sel.PlantCategory) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, sel.PlantCategory)
	}
	base, ok := product.BaseVolume(sel.Unit)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no unit system %q", ErrUnknownUnit, sel.Series, sel.Unit)
	}
	if sel.Volume <= 0 || math.IsNaN(sel.Volume) || math.IsInf(sel.Volume, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidVolume, sel.Volume)
	}
	// Load-time validation excludes zero base volumes; guard anyway so a
	// hand-built catalog surfaces a typed error instead of a division fault.
	if base <= 0 {
		return nil, fmt.Errorf("%w: base volume %v for unit system %q", catalog.ErrMalformedCatalog, base, sel.Unit)
	}

	factor := sel.Volume / base
	result := &Result{
		Doses: make([]Dose, 0, len(components)+1),
		Lines: make([]string, 0, len(components)+1),
	}
	for _, comp := range components {
		conc, ok := comp.Concentration[sel.Unit]
		if !ok {
			return nil, fmt.Errorf("%w: component %q has no %q concentration", catalog.ErrMalformedCatalog, comp.Name, sel.Unit)
		}
		adj := cat.Adjustment(sel.PlantCategory, sel.Stage, comp.Name)
		dose := Dose{
			Name:       comp.Name,
			Amount:     conc*factor + adj,
			Adjustment: adj,
			Unit:       comp.Unit[sel.Unit],
		}
		result.Doses = append(result.Doses, dose)
		result.Lines = append(result.Lines, FormatDose(dose))
	}

	if name := sel.CalMag; name != "" && name != NoSupplement {
		if dose, ok := supplementDose(cat, name, sel.Unit, sel.Volume); ok {
			result.Doses = append(result.Doses, dose)
			result.Lines = append(result.Lines, FormatDose(dose))
		}
	}
	return result, nil
}

// supplementDose computes the appended supplement row. Resolution failures
// (unknown supplement, supplement lacking the chosen unit system) degrade to
// "no supplement line" rather than aborting the calculation.
func supplementDose(cat *catalog.Catalog, name, unit string, volume float64) (Dose, bool) {
	supp, ok := cat.Supplement(name)
	if !ok {
		log.Printf("Warning: supplement %q not in catalog, omitting supplement line", name)
		return Dose{}, false
	}
	base, ok := supp.BaseVolume(unit)
	if !ok || base <= 0 {
		log.Printf("Warning: supplement %q has no usable base volume for unit system %q, omitting supplement line", name, unit)
		return Dose{}, false
	}
	return Dose{
		Name:   supp.Product,
		Amount: supp.Concentration[unit] * (volume / base),
		Unit:   supp.Unit,
	}, true
}
