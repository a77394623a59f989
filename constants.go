package spline

// Vector dimension limits
const (
	// MinTerms is the smallest legal number of vector components.
	MinTerms = 2

	// MaxTerms is the largest legal number of vector components.
	MaxTerms = 5
)

// Minimum entry counts per computation model
const (
	minEntriesLocal  = 2 // linear and other pairwise models
	minEntriesWindow = 4 // four-point windows: Catmull-Rom, SOR, Akima
)

// Coefficient layout constants
const (
	cubicCoeffs  = 4 // coefficients per segment for power-basis cubics
	windowPoints = 4 // points per local fitting window
)

// X-spline shape limits
const (
	basicShapeMin    = 0.0  // Basic variant: approximating only
	basicShapeMax    = 1.0  // full neighbor reach
	extendedShapeMin = -1.0 // fully sharp (interpolating corner)
	extendedShapeMax = 1.0
)

// tridiagThird and tridiagSixth are the h-weights of the natural cubic
// second-derivative system.
const (
	tridiagThird = 1.0 / 3.0
	tridiagSixth = 1.0 / 6.0
)

// sorCondLimit is the condition-number cutoff above which a four-point
// Vandermonde window is treated as singular and the segment falls back to
// its linear model.
const sorCondLimit = 1e12
