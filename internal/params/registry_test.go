package params

import "testing"

func TestNew_DefaultsInRange(t *testing.T) {
	ps := New()
	for _, name := range ps.Names() {
		p, ok := ps.Get(name)
		if !ok {
			t.Fatalf("Get(%q) missing after New()", name)
		}
		if p.Value != p.Default {
			t.Errorf("%s: value %v != default %v", name, p.Value, p.Default)
		}
		if p.Lo > p.Default || p.Default > p.Hi {
			t.Errorf("%s: default %v not within [%v, %v]", name, p.Default, p.Lo, p.Hi)
		}
	}
}

func TestNew_FittingFlags(t *testing.T) {
	ps := New()
	fitting := map[string]bool{}
	for _, name := range ps.FittingNames() {
		fitting[name] = true
	}
	for _, want := range []string{"Rcs", "LV_Ees", "Qvs_initial", "RA_V0"} {
		if !fitting[want] {
			t.Errorf("expected %s to be fitting-enabled", want)
		}
	}
	for _, want := range []string{"HR", "Rda", "Cda", "Ravr"} {
		if fitting[want] {
			t.Errorf("expected %s to be fixed (non-fitting)", want)
		}
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	ps := New()
	v := 42.0
	ps.Update("Rcs", &v, nil, nil, nil)
	p, _ := ps.Get("Rcs")
	if p.Value != 42.0 {
		t.Errorf("Rcs value = %v, want 42", p.Value)
	}
	if p.Lo != 400 || p.Hi != 1000 {
		t.Errorf("Rcs range changed unexpectedly: [%v, %v]", p.Lo, p.Hi)
	}

	fitting := false
	ps.Update("Rcs", nil, nil, nil, &fitting)
	p, _ = ps.Get("Rcs")
	if p.Fitting {
		t.Error("Rcs should no longer be fitting-enabled")
	}
	if p.Value != 42.0 {
		t.Error("Rcs value should not change when only fitting is updated")
	}
}

func TestUpdate_UnknownNameIgnored(t *testing.T) {
	ps := New()
	v := 1.0
	ps.Update("NotARealParam", &v, nil, nil, nil)
	if _, ok := ps.Get("NotARealParam"); ok {
		t.Error("unknown parameter name should not be inserted")
	}
}

func TestClone_Independent(t *testing.T) {
	ps := New()
	clone := ps.Clone()
	clone.SetValue("Rcs", 1.0)

	orig, _ := ps.Get("Rcs")
	cloned, _ := clone.Get("Rcs")
	if orig.Value == cloned.Value {
		t.Error("mutating the clone should not affect the original")
	}
}

func TestValues_Snapshot(t *testing.T) {
	ps := New()
	snap := ps.Values()
	if len(snap) != len(ps.Names()) {
		t.Fatalf("snapshot has %d entries, want %d", len(snap), len(ps.Names()))
	}
	if snap["HR"] != 90 {
		t.Errorf("HR = %v, want 90", snap["HR"])
	}
}
