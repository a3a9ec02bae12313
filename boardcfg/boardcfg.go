// Package boardcfg resolves embedded per-board clock profiles into a
// frequency request and chip policy for the versaclock5p49 driver.
//
// Profiles are small JSON blobs compiled into the binary and keyed by
// board ID, so a single firmware image can carry the clock plans for every
// board revision it supports.
package boardcfg

import (
	"errors"

	"github.com/andreyvit/tinyjson"

	"versaclock-go/drivers/versaclock5p49"
)

var (
	ErrUnknownBoard = errors.New("boardcfg: no embedded profile for board")
	ErrBadProfile   = errors.New("boardcfg: malformed profile")
)

// EmbeddedProfileLookup allows overriding how profiles are resolved.
var EmbeddedProfileLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedProfiles[board]
	return b, ok
}

// Profile is a validated board clock plan: what frequencies to program and
// which chip policy flags to apply.
type Profile struct {
	Request versaclock5p49.FrequencyRequest
	Config  versaclock5p49.Config
}

// Load resolves, parses and validates the profile for the given board ID.
// Required keys: ref_hz, vco_hz, outputs_hz (array of 4). Optional policy
// keys override DefaultConfig: clkin_input, xtal_input, primary_source,
// vco_band, vco_monitor, global_shutdown, sleep.
func Load(board string) (Profile, error) {
	raw, ok := EmbeddedProfileLookup(board)
	if !ok || len(raw) == 0 {
		return Profile{}, ErrUnknownBoard
	}

	r := tinyjson.Raw(raw)
	val := r.Value() // should be a map[string]any
	r.EnsureEOF()

	m, ok := val.(map[string]any)
	if !ok {
		return Profile{}, ErrBadProfile
	}

	p := Profile{Config: versaclock5p49.DefaultConfig()}

	ref, ok := asUint32(m["ref_hz"])
	if !ok {
		return Profile{}, ErrBadProfile
	}
	vco, ok := asUint32(m["vco_hz"])
	if !ok {
		return Profile{}, ErrBadProfile
	}
	p.Request.RefHz = ref
	p.Request.VCOHz = vco

	outs, ok := m["outputs_hz"].([]any)
	if !ok || len(outs) != len(p.Request.OutHz) {
		return Profile{}, ErrBadProfile
	}
	for i, v := range outs {
		f, ok := asUint32(v)
		if !ok {
			return Profile{}, ErrBadProfile
		}
		p.Request.OutHz[i] = f
	}

	if v, present := m["clkin_input"]; present {
		if p.Config.ClkinInput, ok = v.(bool); !ok {
			return Profile{}, ErrBadProfile
		}
	}
	if v, present := m["xtal_input"]; present {
		if p.Config.XtalInput, ok = v.(bool); !ok {
			return Profile{}, ErrBadProfile
		}
	}
	if v, present := m["primary_source"]; present {
		if p.Config.PrimarySource, ok = v.(bool); !ok {
			return Profile{}, ErrBadProfile
		}
	}
	if v, present := m["vco_monitor"]; present {
		if p.Config.VCOMonitor, ok = v.(bool); !ok {
			return Profile{}, ErrBadProfile
		}
	}
	if v, present := m["global_shutdown"]; present {
		if p.Config.GlobalShutdown, ok = v.(bool); !ok {
			return Profile{}, ErrBadProfile
		}
	}
	if v, present := m["sleep"]; present {
		if p.Config.Sleep, ok = v.(bool); !ok {
			return Profile{}, ErrBadProfile
		}
	}
	if v, present := m["vco_band"]; present {
		band, ok := asUint32(v)
		if !ok || band > 0x1F {
			return Profile{}, ErrBadProfile
		}
		p.Config.VCOBand = byte(band)
	}

	if err := p.Request.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// asUint32 coerces the numeric types a JSON parser may hand back.
func asUint32(v any) (uint32, bool) {
	switch n := v.(type) {
	case int:
		if n < 0 || int64(n) > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(n), true
	case int64:
		if n < 0 || n > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(n), true
	case uint64:
		if n > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(n), true
	case float64:
		if n < 0 || n > 0xFFFFFFFF || n != float64(uint32(n)) {
			return 0, false
		}
		return uint32(n), true
	}
	return 0, false
}
