package priority

import "math"

// weightTable maps a rounded portfolio weight (0..10) to the planner's
// implementation multiplier. The midpoint weight 5 is neutral.
var weightTable = [11]float64{
	0.6, 0.7, 0.8, 0.9, 0.95, 1.0, 1.1, 1.25, 1.4, 1.6, 1.8,
}

// DefaultPriorityWeight is used for applications that carry no weight.
const DefaultPriorityWeight = 5

// ImplementationMultiplier resolves an application's priority weight to its
// score multiplier. Out-of-range weights are clamped into the table.
func ImplementationMultiplier(weight float64) float64 {
	idx := int(math.Round(weight))
	if idx < 0 {
		idx = 0
	}
	if idx > 10 {
		idx = 10
	}
	return weightTable[idx]
}
