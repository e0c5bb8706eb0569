package report

import (
	"fmt"

	"tradelog/internal/models"
)

// Renderer writes analysis output in the supported formats. Precision is the
// decimal precision applied at this edge; zero means DefaultPrecision. The
// report itself stays full precision.
type Renderer struct {
	Precision int
}

// Places returns the effective decimal precision.
func (rn Renderer) Places() int {
	if rn.Precision > 0 {
		return rn.Precision
	}
	return DefaultPrecision
}

func (rn Renderer) money(v float64) string {
	return fmt.Sprintf("$%.*f", rn.Places(), v)
}

func (rn Renderer) pct(v float64) string {
	return fmt.Sprintf("%.*f%%", rn.Places(), v)
}

func (rn Renderer) ratio(r models.Ratio) string {
	if r.IsInf() {
		return "inf"
	}
	return fmt.Sprintf("%.*f", rn.Places(), float64(r))
}
