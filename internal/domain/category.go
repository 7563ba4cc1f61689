package domain

// Category is one step on a storm intensity scale: a display label plus an
// ordinal severity from -1 (Tropical Depression) to 5 (Category 5).
type Category struct {
	Name    string `json:"name"`
	Ordinal int    `json:"ordinal"`
}

// CategoryUnknown is returned for values outside a scale's bounds.
var CategoryUnknown = Category{Name: "Unknown", Ordinal: -999}

// windScale holds the Saffir-Simpson wind thresholds in knots. Bounds are
// half-open: a fix at exactly 34 kt is a Tropical Storm.
var windScale = []struct {
	lower, upper float64
	cat          Category
}{
	{0, 34, Category{"Tropical Depression", -1}},
	{34, 64, Category{"Tropical Storm", 0}},
	{64, 83, Category{"Category 1", 1}},
	{83, 96, Category{"Category 2", 2}},
	{96, 113, Category{"Category 3", 3}},
	{113, 137, Category{"Category 4", 4}},
}

var windCat5 = Category{"Category 5", 5}

// WindCategory classifies a maximum sustained wind speed in knots.
func WindCategory(kt float64) Category {
	if kt < 0 {
		return CategoryUnknown
	}
	for _, band := range windScale {
		if kt >= band.lower && kt < band.upper {
			return band.cat
		}
	}
	return windCat5
}

// pressureScale holds central-pressure thresholds in millibars. Pressure is
// inversely related to intensity, so bands run downward.
var pressureScale = []struct {
	floor float64
	cat   Category
}{
	{990, Category{"Tropical Storm", 0}},
	{980, Category{"Category 1", 1}},
	{965, Category{"Category 2", 2}},
	{945, Category{"Category 3", 3}},
	{920, Category{"Category 4", 4}},
}

// PressureCategory classifies a minimum central pressure in millibars. Note
// that an unreported pressure of zero falls below 920 mb and classifies as
// Category 5; the displayed category is therefore always the wind-based one,
// and the pressure scale only feeds [MaxSeverity].
func PressureCategory(mb float64) Category {
	for _, band := range pressureScale {
		if mb >= band.floor {
			return band.cat
		}
	}
	return Category{"Category 5", 5}
}

// MaxSeverity returns the higher ordinal of the two scales, for downstream
// severity reasoning. Unknown categories never raise the result.
func MaxSeverity(wind, pressure Category) int {
	if wind.Ordinal >= pressure.Ordinal {
		return wind.Ordinal
	}
	return pressure.Ordinal
}
