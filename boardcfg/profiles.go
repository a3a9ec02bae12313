package boardcfg

// -----------------------------------------------------------------------------
// Embedded profiles
//
// Populate embeddedProfiles at build time (e.g. via code generation) or
// manually during development.
// Key: board ID
// Val: raw JSON bytes for that board's clock plan
// -----------------------------------------------------------------------------

// Stock eval wiring: 10 MHz reference into CLKIN, 2.7 GHz VCO, outputs at
// 40 / 25 / 24 / 28.8 MHz.
const profilePico = `{
  "ref_hz": 10000000,
  "vco_hz": 2700000000,
  "outputs_hz": [40000000, 25000000, 24000000, 28800000],
  "clkin_input": true,
  "primary_source": true,
  "vco_band": 13
}`

var embeddedProfiles = map[string][]byte{
	"pico": []byte(profilePico),
}
