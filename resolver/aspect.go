package resolver

import "math"

// AspectAuto is reported when no canonical ratio is close enough.
const AspectAuto = "auto"

// AspectTolerance is the maximum absolute decimal-ratio difference for a
// canonical label to apply.
const AspectTolerance = 0.01

type namedRatio struct {
	label string
	value float64
}

var canonicalRatios = []namedRatio{
	{"1:1", 1.0},
	{"3:2", 3.0 / 2.0},
	{"2:3", 2.0 / 3.0},
	{"3:4", 3.0 / 4.0},
	{"4:3", 4.0 / 3.0},
	{"4:5", 4.0 / 5.0},
	{"5:4", 5.0 / 4.0},
	{"9:16", 9.0 / 16.0},
	{"16:9", 16.0 / 9.0},
	{"21:9", 21.0 / 9.0},
}

// DetectAspect reports the canonical ratio closest to width/height, or
// AspectAuto when the closest one still differs by more than
// AspectTolerance. A misleading label is worse than none.
func DetectAspect(width, height int) string {
	if width <= 0 || height <= 0 {
		return AspectAuto
	}

	ratio := float64(width) / float64(height)
	label := AspectAuto
	bestDiff := math.MaxFloat64

	for _, c := range canonicalRatios {
		if diff := math.Abs(c.value - ratio); diff < bestDiff {
			label, bestDiff = c.label, diff
		}
	}

	if bestDiff > AspectTolerance {
		return AspectAuto
	}
	return label
}
