// Package versaclock5p49 provides a TinyGo driver for the Renesas
// VersaClock 5P49V69xx programmable clock generator.
//
// The driver computes the chip's fractional feedback and output dividers
// from requested frequencies, writes the full register file in a single
// 107-byte block transaction, and runs the VCO calibration handshake that
// 6th-generation parts require after programming:
//
//	pll := versaclock5p49.New(i2c)
//	band, err := pll.Program(req)   // WriteConfig + CalibrateVCO
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when
// both w and r are provided, without releasing the bus.
//
// The driver is integer-only; dividers are truncating 64-bit fixed point.
package versaclock5p49

import (
	"time"

	"tinygo.org/x/drivers"
)

// Config carries board policy: input path selection, shutdown behaviour
// and the VCO band seed. Chip register semantics live in image.go;
// everything here is a choice the board designer makes.
type Config struct {
	// Address defaults to 0x6A if zero.
	Address uint16
	// GlobalShutdown powers the whole part down.
	GlobalShutdown bool
	// Sleep holds the part in sleep mode.
	Sleep bool
	// XtalInput enables the crystal input path.
	XtalInput bool
	// ClkinInput enables the external clock input path.
	ClkinInput bool
	// PrimarySource selects the primary reference for the PLL.
	PrimarySource bool
	// VCOBand seeds the VCO band code (low 5 bits, default 0x0D).
	VCOBand byte
	// VCOBandTestMode forces the seeded band instead of the calibrated one.
	VCOBandTestMode bool
	// StartCalibration sets the calibration-start bit inside the main
	// register image. Harmless either way; the real calibration is the
	// CalibrateVCO handshake.
	StartCalibration bool
	// VCOMonitor enables the VCO monitor output. Does not work on the
	// 5P49V6965; kept for other 69xx parts.
	VCOMonitor bool
}

// DefaultConfig returns the documented power-on policy for a board feeding
// an external reference into CLKIN.
func DefaultConfig() Config {
	return Config{
		Address:          AddressDefault,
		ClkinInput:       true,
		PrimarySource:    true,
		VCOBand:          0x0D,
		StartCalibration: true,
	}
}

// Device wraps an I2C connection to a 5P49V69xx device.
type Device struct {
	bus  drivers.I2C
	addr uint16
	cfg  Config

	programmed bool

	// Fixed buffers to avoid per-call heap allocations.
	w [2]byte
	r [1]byte

	// Injectable for tests; time.Sleep on hardware.
	sleep func(time.Duration)
}

// New creates a driver instance with DefaultConfig. The I2C bus must
// already be configured. This function only creates the Device object;
// it does not touch the device.
func New(bus drivers.I2C) *Device {
	return &Device{
		bus:   bus,
		addr:  AddressDefault,
		cfg:   DefaultConfig(),
		sleep: time.Sleep,
	}
}

// Configure replaces the board policy. It does not touch the device;
// the policy takes effect at the next WriteConfig.
func (d *Device) Configure(cfg Config) error {
	if cfg.VCOBand > vbBandMask {
		return ErrBadVCOBand
	}
	if cfg.Address == 0 {
		cfg.Address = AddressDefault
	}
	d.cfg = cfg
	d.addr = cfg.Address
	return nil
}

// WriteConfig plans the dividers for req, builds the 107-byte register
// image and writes it in one block transaction starting at register 0x00.
// The chip's register pointer auto-increments across the write.
//
// The chip has no tolerance for malformed writes (it silently
// misconfigures rather than NACKing), so the image is all-or-nothing:
// any planning error aborts before the bus is touched.
func (d *Device) WriteConfig(req FrequencyRequest) error {
	plan, err := Plan(req)
	if err != nil {
		return err
	}
	img := buildImage(plan, d.cfg)
	if err := d.bus.Tx(d.addr, img[:], nil); err != nil {
		d.programmed = false
		return &StepError{Step: StepWriteImage, Err: err}
	}
	d.programmed = true
	return nil
}

// Program runs the full bring-up: WriteConfig followed by the VCO
// calibration handshake. Calibration is skipped when the configuration
// write fails, so a dead bus costs exactly one failed transaction and the
// chip is never calibrated against an unknown register state.
func (d *Device) Program(req FrequencyRequest) (byte, error) {
	if err := d.WriteConfig(req); err != nil {
		return 0, err
	}
	return d.CalibrateVCO()
}

// Programmed reports whether the last configuration write completed.
func (d *Device) Programmed() bool { return d.programmed }

// Low-level single-byte register ops.

func (d *Device) readReg(reg byte) (byte, error) {
	d.w[0] = reg
	if err := d.bus.Tx(d.addr, d.w[:1], d.r[:1]); err != nil {
		return 0, err
	}
	return d.r[0], nil
}

func (d *Device) writeReg(reg, val byte) error {
	d.w[0] = reg
	d.w[1] = val
	return d.bus.Tx(d.addr, d.w[:2], nil)
}
