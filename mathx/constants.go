package mathx

// Published constants. These keep the exact literals downstream vector and
// easing code was tuned against, so they are not derived from math.Pi.
const (
	Pi      float32 = 3.14159265359
	PiOver2 float32 = 1.570796326
	TwoPi   float32 = 6.28318530718
	E       float32 = 2.71828182845

	DegToRad float32 = Pi / 180.0
	RadToDeg float32 = 180.0 / Pi
)

// DefaultEpsilon is the tolerance used by Approx.
const DefaultEpsilon float32 = 0.000001

// =============================================================================
// CORDIC constants
// =============================================================================

// cordicIterations is the number of micro-rotations per Sin/Cos/Atan2 call.
const cordicIterations = 16

// cordicGain is prod(cos(atan(2^-i))) for i in [0, 16). Seeding the rotation
// with it cancels the vector growth of the micro-rotations.
const cordicGain float32 = 0.6072529

// cordicAtan holds atan(2^-i) for i in [0, 16).
var cordicAtan = [cordicIterations]float32{
	0.78539816, // atan(1)
	0.46364761, // atan(1/2)
	0.24497866,
	0.12435499,
	0.06241881,
	0.03123983,
	0.01562373,
	0.00781234,
	0.00390623,
	0.00195312,
	0.00097656,
	0.00048828,
	0.00024414,
	0.00012207,
	0.00006104,
	0.00003052, // atan(1/32768)
}

// =============================================================================
// Square root constants
// =============================================================================

// sqrtMaxIterations caps the Newton-Raphson loop in Sqrt.
const sqrtMaxIterations = 50

// sqrtTolerance bounds the residual value - x*x while Sqrt keeps iterating.
const sqrtTolerance float32 = 0.000001

// truncExact is 2^23. Every float32 at or above it in magnitude is an integer.
const truncExact float32 = 8388608
