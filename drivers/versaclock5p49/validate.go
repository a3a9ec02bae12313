package versaclock5p49

import "errors"

var (
	// Sentinel errors (TinyGo-safe; no fmt)
	ErrZeroReference = errors.New("versaclock5p49: reference frequency is zero")
	ErrZeroVCO       = errors.New("versaclock5p49: VCO frequency is zero")
	ErrZeroOutput    = errors.New("versaclock5p49: output frequency is zero")
	ErrBadVCOBand    = errors.New("versaclock5p49: VCO band code out of range")
)

// Validate rejects requests that would divide by zero downstream.
func (r FrequencyRequest) Validate() error {
	if r.RefHz == 0 {
		return ErrZeroReference
	}
	if r.VCOHz == 0 {
		return ErrZeroVCO
	}
	for _, f := range r.OutHz {
		if f == 0 {
			return ErrZeroOutput
		}
	}
	return nil
}
