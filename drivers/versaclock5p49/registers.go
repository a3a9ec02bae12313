package versaclock5p49

const (
	// 7-bit I2C address (fixed for this part).
	AddressDefault = 0x6A

	// --- Register sub-addresses (8-bit registers, auto-incrementing pointer) ---

	regBase = 0x00 // block write start address

	regPrimSrcShutdn = 0x10 // primary source and shutdown flags
	regVCOBand       = 0x11 // VCO band code + test-mode bit
	regXtalLoadCap   = 0x12 // crystal X1 load capacitor
	regPrimSrcSel    = 0x13 // primary source select (factory reserved base)

	regFBDivIntHi = 0x17 // feedback divider integer, source bits 36..43
	regFBDivIntLo = 0x18 // feedback divider integer low nibble + SD order in bits 2..3
	regFBDivFrac2 = 0x19 // feedback divider fraction, source bits 24..31
	regFBDivFrac1 = 0x1A // feedback divider fraction, source bits 16..23
	regFBDivFrac0 = 0x1B // feedback divider fraction, source bits 8..15

	regVCOCtrl    = 0x1C // calibration start/control bit (bit 7)
	regVCOMonitor = 0x1D // VCO monitor enable (bit 1)

	regClkOutCfg   = 0x60 // 0x60..0x67: per-output slew/voltage pairs
	regOutEnableHi = 0x68 // global output enables
	regOutEnableLo = 0x69

	regVCOBandRead = 0x99 // calibration result, band in the top 5 bits

	// Per-channel output divider blocks: control byte at the base,
	// fraction at base+1..+4, integer at base+12..+13, 0x10 stride.
	regOD1Base = 0x21
	odStride   = 0x10
	odFracOff  = 1
	odIntOff   = 12

	// --- Bit flags ---

	// regPrimSrcShutdn (0x10)
	psGlobalShutdown = 0x01
	psSleep          = 0x02
	psClkinEnable    = 0x40
	psXtalEnable     = 0x80

	// regVCOBand (0x11)
	vbTestMode = 0x20
	vbBandMask = 0x1F

	// regPrimSrcSel (0x13): keep the factory reserved bit set.
	psSelBase    = 0x80
	psSelPrimary = 0x02

	// regVCOCtrl (0x1C): low 5 bits are factory reserved, keep set.
	vcBase     = 0x1F
	vcCalStart = 0x80

	// regVCOMonitor (0x1D): factory reserved bits, keep set.
	// Monitor enable does not actually work on the 5P49V6965.
	vmBase      = 0xFD
	vmMonitorEn = 0x02
)
