package nscp

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L + 0.5(Lr or R)", Dead: 1.2, Live: 1.6, Roof: 0.5, Rain: 0.5},
	{ID: "3", Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)", Dead: 1.2, Live: 1.0, Roof: 1.6, Rain: 1.6, Wind: 0.5},
	{ID: "4", Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)", Dead: 1.2, Live: 1.0, Wind: 1.0, Roof: 0.5, Rain: 0.5},
	{ID: "5", Description: "1.2D + 1.0E + 1.0L", Dead: 1.2, Live: 1.0, Earthquake: 1.0},
	{ID: "6", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "7", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// SimplifiedCombinations covers gravity loads only
var SimplifiedCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L", Dead: 1.2, Live: 1.6},
}

// LoadComponents holds the unfactored magnitudes of one load shape by load
// type. Units follow the shape: kN for a point load, kN/m for distributed loads.
type LoadComponents struct {
	Dead       float64 `json:"dead,omitempty" yaml:"dead,omitempty"`
	Live       float64 `json:"live,omitempty" yaml:"live,omitempty"`
	Roof       float64 `json:"roof,omitempty" yaml:"roof,omitempty"`
	Wind       float64 `json:"wind,omitempty" yaml:"wind,omitempty"`
	Earthquake float64 `json:"earthquake,omitempty" yaml:"earthquake,omitempty"`
	Rain       float64 `json:"rain,omitempty" yaml:"rain,omitempty"`
}

// IsZero reports whether no component was given
func (c LoadComponents) IsZero() bool {
	return c == LoadComponents{}
}

// Factored calculates the factored magnitude for a given load combination
func (lc LoadCombination) Factored(c LoadComponents) float64 {
	return lc.Dead*c.Dead +
		lc.Live*c.Live +
		lc.Roof*c.Roof +
		lc.Wind*c.Wind +
		lc.Earthquake*c.Earthquake +
		lc.Rain*c.Rain
}

// Governing finds the maximum factored magnitude from all combinations
func Governing(c LoadComponents, combinations []LoadCombination) (float64, LoadCombination) {
	var maxValue float64
	var governingCombo LoadCombination

	for _, combo := range combinations {
		v := combo.Factored(c)
		if v > maxValue {
			maxValue = v
			governingCombo = combo
		}
	}

	return maxValue, governingCombo
}
