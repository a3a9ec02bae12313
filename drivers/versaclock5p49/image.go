package versaclock5p49

// The register image is the exact byte sequence written to the chip in one
// block transaction: a start-address byte (always 0x00) followed by the
// 106 registers 0x00..0x69.
const (
	regCount = 0x6A
	// ImageLen is the total block write length.
	ImageLen = 1 + regCount
)

// field places part of a 64-bit divider value into one register byte.
// Fields never overlap defaults; they are OR-ed onto the image so flag
// bits sharing a register (SD order in 0x18) stay intact.
type field struct {
	reg   byte  // register address, relative to a channel base for odFields
	shift uint8 // right shift of the 64-bit source value
	mask  byte  // mask applied after the shift
}

// Feedback divider layout (0x17..0x1B). The low nibble of 0x18 carries the
// sigma-delta order in bits 2..3, merged separately in buildImage.
var fbFields = [...]field{
	{regFBDivIntHi, 36, 0xFF},
	{regFBDivIntLo, 28, 0xF0},
	{regFBDivFrac2, 24, 0xFF},
	{regFBDivFrac1, 16, 0xFF},
	{regFBDivFrac0, 8, 0xFF},
}

// Output divider layout, identical for all four channels, relative to the
// channel base (0x21, 0x31, 0x41, 0x51).
var odFields = [...]field{
	{odFracOff + 0, 30, 0x03},
	{odFracOff + 1, 22, 0xFF},
	{odFracOff + 2, 14, 0xFF},
	{odFracOff + 3, 6, 0xFC},
	{odIntOff + 0, 36, 0xFF},
	{odIntOff + 1, 28, 0xF0},
}

// chipDefaults holds the register values of registers 0x00..0x69 that do
// not depend on the frequency plan. Computed fields and flag registers are
// zero here and merged in buildImage. Values are the part's documented
// defaults; 0x60..0x67 select 3.3V output at the fastest slew rate and
// 0x68..0x69 enable all outputs.
var chipDefaults = [regCount]byte{
	0x00: 0x61,
	0x01: 0x0F,
	0x09: 0xFF,
	0x0A: 0x01,
	0x0B: 0xC0,
	0x0D: 0xB6,
	0x0E: 0xB4,
	0x0F: 0x92,
	regXtalLoadCap: 0x81,
	0x15:           0x03,
	0x16:           0x84,
	0x1E:           0xC8,
	0x1F:           0x80,

	// Per-channel output divider blocks (stride 0x10): control byte at the
	// base, a constant 0x04 at base+9, everything else zero or computed.
	regOD1Base + 0*odStride: 0x81,
	regOD1Base + 0*odStride + 9: 0x04,
	regOD1Base + 1*odStride:     0x81,
	regOD1Base + 1*odStride + 9: 0x04,
	regOD1Base + 2*odStride:     0x81,
	regOD1Base + 2*odStride + 9: 0x04,
	regOD1Base + 3*odStride:     0x81,
	regOD1Base + 3*odStride + 9: 0x04,

	regClkOutCfg + 0: 0x3B, regClkOutCfg + 1: 0x01, // clock 1 output
	regClkOutCfg + 2: 0x3B, regClkOutCfg + 3: 0x01, // clock 2 output
	regClkOutCfg + 4: 0x3B, regClkOutCfg + 5: 0x01, // clock 3 output
	regClkOutCfg + 6: 0x3B, regClkOutCfg + 7: 0x01, // clock 4 output

	regOutEnableHi: 0xFF,
	regOutEnableLo: 0xFC,
}

// buildImage packs a frequency plan and board policy into the block write
// image. Pure function of its inputs; same plan and config produce a
// byte-identical image.
func buildImage(p FrequencyPlan, cfg Config) [ImageLen]byte {
	var img [ImageLen]byte
	img[0] = regBase
	reg := img[1:] // registers 0x00..0x69, indexed by address
	copy(reg, chipDefaults[:])

	var ps byte
	if cfg.GlobalShutdown {
		ps |= psGlobalShutdown
	}
	if cfg.Sleep {
		ps |= psSleep
	}
	if cfg.ClkinInput {
		ps |= psClkinEnable
	}
	if cfg.XtalInput {
		ps |= psXtalEnable
	}
	reg[regPrimSrcShutdn] = ps

	reg[regVCOBand] = cfg.VCOBand & vbBandMask
	if cfg.VCOBandTestMode {
		reg[regVCOBand] |= vbTestMode
	}

	reg[regPrimSrcSel] = psSelBase
	if cfg.PrimarySource {
		reg[regPrimSrcSel] |= psSelPrimary
	}

	reg[regVCOCtrl] = vcBase
	if cfg.StartCalibration {
		reg[regVCOCtrl] |= vcCalStart
	}

	reg[regVCOMonitor] = vmBase
	if cfg.VCOMonitor {
		reg[regVCOMonitor] |= vmMonitorEn
	}

	applyFields(reg, 0, fbFields[:], uint64(p.Feedback))
	reg[regFBDivIntLo] |= byte(p.SD) << 2

	for i, od := range p.Out {
		applyFields(reg, regOD1Base+byte(i)*odStride, odFields[:], uint64(od))
	}

	return img
}

func applyFields(reg []byte, base byte, fs []field, v uint64) {
	for _, f := range fs {
		reg[base+f.reg] |= byte(v>>f.shift) & f.mask
	}
}
