package rdp

// CombineInput enumerates the fixed vocabulary of combiner sub-inputs.
type CombineInput uint8

const (
	CombCombined CombineInput = iota
	CombTexel0
	CombTexel1
	CombPrimitive
	CombShade
	CombEnvironment
	CombKeyCenter
	CombKeyScale
	CombCombinedAlpha
	CombTexel0Alpha
	CombTexel1Alpha
	CombPrimitiveAlpha
	CombShadeAlpha
	CombEnvironmentAlpha
	CombLODFraction
	CombPrimLODFrac
	CombNoise
	CombConvertK4
	CombConvertK5
	CombOne
	CombZero
)

// CycleInputs are the four sub-inputs (A, B, C, D) of one color or alpha
// channel for one combiner cycle: output = (A - B) * C + D.
type CycleInputs struct {
	A, B, C, D CombineInput
}

// Combine is the RDP's two-cycle color combiner configuration, stored both
// as the raw 64-bit pattern written by setCombine (for equality/state-delta
// checks) and pre-decoded per-cycle, per-channel inputs.
type Combine struct {
	Raw uint64

	ColorCycle [2]CycleInputs
	AlphaCycle [2]CycleInputs
}

// colorInputs / alphaInputs map a 5-bit or 3-bit combiner field value to its
// CombineInput; values outside the known vocabulary decode as CombZero,
// matching the N64's behavior for undefined combiner bit patterns.
var colorInputsA = []CombineInput{CombCombined, CombTexel0, CombTexel1, CombPrimitive, CombShade, CombEnvironment, CombOne, CombNoise}
var colorInputsBC = []CombineInput{CombCombined, CombTexel0, CombTexel1, CombPrimitive, CombShade, CombEnvironment, CombKeyCenter, CombConvertK4}
var alphaInputs = []CombineInput{CombCombinedAlpha, CombTexel0Alpha, CombTexel1Alpha, CombPrimitiveAlpha, CombShadeAlpha, CombEnvironmentAlpha, CombOne, CombZero}

func lookup(table []CombineInput, idx uint64) CombineInput {
	if int(idx) < len(table) {
		return table[idx]
	}
	return CombZero
}

// DecodeCombine unpacks the raw 64-bit setCombine pattern into per-cycle,
// per-channel sub-inputs.
//
// Bit layout (high to low, matching the order setCombine's RDP command
// packs its fields in): a0(4) c0(5) Aa0(3) Ac0(3) a1(4) c1(5) b0(4) b1(4)
// Aa1(3) Ac1(3) d0(3) Ab0(3) Ad0(3) d1(3) Ab1(3) Ad1(3).
func DecodeCombine(raw uint64) Combine {
	c := Combine{Raw: raw}
	field := func(shift, width uint) uint64 {
		return (raw >> shift) & (1<<width - 1)
	}
	c.ColorCycle[0] = CycleInputs{
		A: lookup(colorInputsA, field(52, 4)),
		B: lookup(colorInputsA, field(28, 4)),
		C: lookup(colorInputsBC, field(47, 5)),
		D: lookup(colorInputsA, field(15, 3)),
	}
	c.ColorCycle[1] = CycleInputs{
		A: lookup(colorInputsA, field(37, 4)),
		B: lookup(colorInputsA, field(24, 4)),
		C: lookup(colorInputsBC, field(32, 5)),
		D: lookup(colorInputsA, field(6, 3)),
	}
	c.AlphaCycle[0] = CycleInputs{
		A: lookup(alphaInputs, field(44, 3)),
		B: lookup(alphaInputs, field(12, 3)),
		C: lookup(alphaInputs, field(41, 3)),
		D: lookup(alphaInputs, field(9, 3)),
	}
	c.AlphaCycle[1] = CycleInputs{
		A: lookup(alphaInputs, field(21, 3)),
		B: lookup(alphaInputs, field(3, 3)),
		C: lookup(alphaInputs, field(18, 3)),
		D: lookup(alphaInputs, field(0, 3)),
	}
	return c
}
