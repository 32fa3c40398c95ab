package dosing

import "fmt"

// FormatDose renders one dosing line. Amounts are fixed to two decimal
// places for nutrient and supplement lines alike; a non-zero adjustment is
// annotated with its raw value so the user can see what was modified versus
// the manufacturer baseline.
//
//	Micro: 200.00 ml
//	Micro: 205.00 ml (adjusted 5)
func FormatDose(d Dose) string {
	if d.Adjustment != 0 {
		return fmt.Sprintf("%s: %.2f %s (adjusted %g)", d.Name, d.Amount, d.Unit, d.Adjustment)
	}
	return fmt.Sprintf("%s: %.2f %s", d.Name, d.Amount, d.Unit)
}
