package nbt

import "testing"

func TestFloatNormalizedToSevenSigFigs(t *testing.T) {
	f := NewFloatWithValue(1.0 / 3.0)
	got := f.Value()
	want := float32(0.3333333)
	if got != want {
		t.Errorf("Value() = %v, want %v", got, want)
	}
}

func TestDoubleNormalizedToFifteenSigFigs(t *testing.T) {
	d := NewDoubleWithValue(1.0 / 3.0)
	got := d.Value()
	want := 0.333333333333333
	if got != want {
		t.Errorf("Value() = %v, want %v", got, want)
	}
}

func TestFloatSetValueRenormalizes(t *testing.T) {
	f := NewFloat()
	if err := f.SetValue(2.0 / 3.0); err != nil {
		t.Fatal(err)
	}
	if f.Value() != normalizeFloat32(2.0/3.0) {
		t.Errorf("SetValue did not normalize: %v", f.Value())
	}
}
