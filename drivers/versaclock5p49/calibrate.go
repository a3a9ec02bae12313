package versaclock5p49

import "time"

// Step identifies one bus transaction in the driver's protocol, for error
// reporting. The calibration handshake is strictly linear; a failure at
// any step skips the remaining ones.
type Step uint8

const (
	StepWriteImage      Step = iota // 107-byte configuration block write
	StepReadControl                 // read the VCO control register 0x1C
	StepClearStart                  // write control with bit 7 clear
	StepSetStart                    // write control with bit 7 set
	StepClearStartAgain             // write control with bit 7 clear again
	StepReadBand                    // read the calibrated band from 0x99
)

func (s Step) String() string {
	switch s {
	case StepWriteImage:
		return "write_image"
	case StepReadControl:
		return "read_control"
	case StepClearStart:
		return "clear_start"
	case StepSetStart:
		return "set_start"
	case StepClearStartAgain:
		return "clear_start_again"
	case StepReadBand:
		return "read_band"
	}
	return "unknown"
}

// StepError wraps a transport failure with the step it happened in.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return "versaclock5p49: " + e.Step.String() + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error { return e.Err }

// calSettleDelay is the fixed settle time after each calibration write.
const calSettleDelay = time.Millisecond

// CalibrateVCO drives the VCO self-calibration handshake: read the control
// register, pulse the calibration-start bit clear-set-clear with a settle
// delay after each write, then read back the selected VCO band (the top
// five bits of register 0x99).
//
// A transport failure aborts the sequence and is reported via StepError;
// nothing is retried and no recovery write is attempted, so a failure
// between SetStart and ClearStartAgain can leave the start bit set. The
// caller should re-run WriteConfig before trusting the chip after any
// calibration error.
func (d *Device) CalibrateVCO() (byte, error) {
	ctl, err := d.readReg(regVCOCtrl)
	if err != nil {
		return 0, &StepError{Step: StepReadControl, Err: err}
	}

	pulse := [...]struct {
		step Step
		val  byte
	}{
		{StepClearStart, ctl &^ vcCalStart},
		{StepSetStart, ctl | vcCalStart},
		{StepClearStartAgain, ctl &^ vcCalStart},
	}
	for _, s := range pulse {
		if err := d.writeReg(regVCOCtrl, s.val); err != nil {
			return 0, &StepError{Step: s.step, Err: err}
		}
		d.sleep(calSettleDelay)
	}

	band, err := d.readReg(regVCOBandRead)
	if err != nil {
		return 0, &StepError{Step: StepReadBand, Err: err}
	}
	return band >> 3, nil
}
