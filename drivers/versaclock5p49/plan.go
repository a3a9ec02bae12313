package versaclock5p49

// Divider is a 64-bit fixed-point divider value produced by truncating
// unsigned division. Two scalings are in use:
//
//   - feedback divider: Q32.32, (vco << 32) / ref; integer ratio in the
//     high 32 bits, fraction in the low 32.
//   - output divider: (vco << 31) / out. The one-bit-narrower shift is the
//     chip's output-divider register scaling; an off-by-one shift here
//     silently doubles or halves every output frequency.
type Divider uint64

// Int returns the high 32 bits.
func (d Divider) Int() uint32 { return uint32(d >> 32) }

// Frac returns the low 32 bits.
func (d Divider) Frac() uint32 { return uint32(d) }

// SDOrder selects the sigma-delta modulator order used for fractional
// feedback division.
type SDOrder uint8

const (
	SDOff    SDOrder = 0 // bypass; exact integer ratio
	SDOrder1 SDOrder = 1 // representable, never selected by current policy
	SDOrder2 SDOrder = 2 // representable, never selected by current policy
	SDOrder3 SDOrder = 3
)

// FrequencyRequest is the caller's clock plan. All fields must be > 0.
type FrequencyRequest struct {
	// RefHz is the reference input frequency on CLKIN or XTAL.
	RefHz uint32
	// VCOHz is the target VCO frequency.
	VCOHz uint32
	// OutHz are the four output frequencies, channel 1 first.
	OutHz [4]uint32
}

// FrequencyPlan holds the divider values derived from a FrequencyRequest.
type FrequencyPlan struct {
	Feedback Divider
	SD       SDOrder
	Out      [4]Divider
}

// Plan computes the feedback and output dividers for req. Pure and
// deterministic; the only error source is a zero frequency, rejected
// before any division.
func Plan(req FrequencyRequest) (FrequencyPlan, error) {
	if err := req.Validate(); err != nil {
		return FrequencyPlan{}, err
	}
	p := FrequencyPlan{
		Feedback: Divider((uint64(req.VCOHz) << 32) / uint64(req.RefHz)),
		SD:       SDOrder3,
	}
	if p.Feedback.Frac() == 0 {
		// VCO is an exact integer multiple of the reference; bypass the
		// sigma-delta modulator.
		p.SD = SDOff
	}
	for i, out := range req.OutHz {
		p.Out[i] = Divider((uint64(req.VCOHz) << 31) / uint64(out))
	}
	return p, nil
}
