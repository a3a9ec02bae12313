package versaclock5p49

import "testing"

func TestPlan_FeedbackDivider(t *testing.T) {
	type C struct {
		ref, vco uint32
	}
	for _, c := range []C{
		{10_000_000, 2_700_000_000},  // exact ratio 270
		{25_000_000, 2_800_000_000},  // exact ratio 112
		{10_000_000, 2_700_000_001},  // just off an integer ratio
		{19_200_000, 2_680_000_000},  // fractional ratio
		{1, 4_294_967_295},           // extremes
		{4_294_967_295, 1},           // ratio < 1
	} {
		p, err := Plan(FrequencyRequest{RefHz: c.ref, VCOHz: c.vco, OutHz: [4]uint32{1, 1, 1, 1}})
		if err != nil {
			t.Fatalf("Plan(%d,%d): %v", c.ref, c.vco, err)
		}
		fb := p.Feedback
		if got, want := fb.Int(), c.vco/c.ref; got != want {
			t.Fatalf("fb int for %d/%d = %d, want %d", c.vco, c.ref, got, want)
		}
		// Decoding (int + frac/2^32) * ref recovers vco within one
		// fractional-bit quantization step: the truncation remainder of
		// vco<<32 / ref is below ref.
		rem := (uint64(c.vco) << 32) - uint64(fb)*uint64(c.ref)
		if rem >= uint64(c.ref) {
			t.Fatalf("fb remainder for %d/%d = %d, want < %d", c.vco, c.ref, rem, c.ref)
		}
		wantSD := SDOrder3
		if c.vco%c.ref == 0 {
			wantSD = SDOff
		}
		if p.SD != wantSD {
			t.Fatalf("SD order for %d/%d = %d, want %d", c.vco, c.ref, p.SD, wantSD)
		}
	}
}

func TestPlan_ExactRatioScenario(t *testing.T) {
	p, err := Plan(demoRequest)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if p.Feedback.Int() != 270 {
		t.Fatalf("fb int = %d, want 270", p.Feedback.Int())
	}
	if p.Feedback.Frac() != 0 {
		t.Fatalf("fb frac = %#x, want 0", p.Feedback.Frac())
	}
	if p.SD != SDOff {
		t.Fatalf("SD = %d, want SDOff", p.SD)
	}
}

func TestPlan_OutputDividers(t *testing.T) {
	for _, out := range []uint32{40_000_000, 25_000_000, 24_000_000, 28_800_000, 1_000, 3} {
		req := demoRequest
		req.OutHz = [4]uint32{out, out, out, out}
		p, err := Plan(req)
		if err != nil {
			t.Fatalf("Plan(out=%d): %v", out, err)
		}
		for i, od := range p.Out {
			// The output scaling is vco<<31, one bit narrower than the
			// feedback divider; decode within one quantization step.
			rem := (uint64(req.VCOHz) << 31) - uint64(od)*uint64(out)
			if rem >= uint64(out) {
				t.Fatalf("od%d remainder for out=%d: %d, want < %d", i+1, out, rem, out)
			}
			if p.Out[0] != od {
				t.Fatalf("od%d differs for identical output frequencies", i+1)
			}
		}
	}
}

// 2.7 GHz / 40 MHz is the documented half-integer case: the divider ratio
// is 67.5, so the fraction below the 31-bit point must be non-zero and
// land inside the packed fraction bytes.
func TestPlan_HalfIntegerOutputRatio(t *testing.T) {
	p, err := Plan(demoRequest)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	od := p.Out[0]
	if got := uint64(od) >> 31; got != 67 {
		t.Fatalf("integer ratio = %d, want 67", got)
	}
	if frac := uint64(od) & (1<<31 - 1); frac != 1<<30 {
		t.Fatalf("fraction bits = %#x, want %#x (exactly .5)", frac, uint64(1)<<30)
	}
}

func TestDividerAccessors(t *testing.T) {
	d := Divider(0x0000010E_80000000)
	if d.Int() != 0x10E {
		t.Fatalf("Int = %#x, want 0x10e", d.Int())
	}
	if d.Frac() != 0x80000000 {
		t.Fatalf("Frac = %#x, want 0x80000000", d.Frac())
	}
}
