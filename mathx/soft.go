package mathx

// Soft is the dependency-free Kernel. It needs nothing beyond float32
// add, multiply, divide, compare and float32<->int32 conversion, so it runs
// unchanged on targets without a math runtime.
type Soft struct{}

var _ Kernel = Soft{}

// Name returns "soft".
func (Soft) Name() string { return "soft" }

func (Soft) Sqrt(value float32) float32  { return sqrtSoft(value) }
func (Soft) Trunc(value float32) float32 { return truncSoft(value) }
func (Soft) Floor(value float32) float32 { return floorSoft(value) }
func (Soft) Ceil(value float32) float32  { return ceilSoft(value) }
func (Soft) Frac(value float32) float32  { return fracSoft(value) }

// Sin runs a full reduction and rotation; it does not share work with Cos.
func (Soft) Sin(angle float32) float32 {
	sin, _ := sinCosSoft(angle)
	return sin
}

// Cos runs a full reduction and rotation; it does not share work with Sin.
func (Soft) Cos(angle float32) float32 {
	_, cos := sinCosSoft(angle)
	return cos
}

func (Soft) SinCos(angle float32) (sin, cos float32) { return sinCosSoft(angle) }
func (Soft) Atan2(y, x float32) float32              { return atan2Soft(y, x) }
