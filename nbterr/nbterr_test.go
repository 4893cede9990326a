package nbterr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessageFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"with offset", Formatf(42, "bad thing"), "nbt: FormatError: bad thing (offset 42)"},
		{"without offset", Formatf(-1, "bad thing"), "nbt: FormatError: bad thing"},
		{"range", Rangef(7, "value %d out of range", 999), "nbt: RangeError: value 999 out of range (offset 7)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAgainstSentinel(t *testing.T) {
	err := Formatf(3, "duplicate name %q", "foo")
	if !errors.Is(err, Format) {
		t.Errorf("errors.Is(err, Format) = false, want true")
	}
	if errors.Is(err, Range) {
		t.Errorf("errors.Is(err, Range) = true, want false")
	}
	if errors.Is(err, EndOfStream) {
		t.Errorf("errors.Is(err, EndOfStream) = true, want false")
	}
}

func TestWrapPreservesUnderlying(t *testing.T) {
	underlying := errors.New("gzip: unexpected EOF")
	err := Wrap(KindFormat, 0, underlying, "gzip: invalid stream")
	if !errors.Is(err, Format) {
		t.Errorf("wrapped error does not match Format sentinel")
	}
	if !errors.Is(err, underlying) {
		t.Errorf("errors.Is(err, underlying) = false, want true")
	}
}

func TestIsKindWalksChain(t *testing.T) {
	inner := Formatf(-1, "inner")
	outer := fmt.Errorf("outer: %w", inner)
	if !IsKind(outer, KindFormat) {
		t.Errorf("IsKind(outer, KindFormat) = false, want true")
	}
	if IsKind(outer, KindRange) {
		t.Errorf("IsKind(outer, KindRange) = true, want false")
	}
	if IsKind(errors.New("plain"), KindFormat) {
		t.Errorf("IsKind on a non-Error chain should be false")
	}
}

func TestKindString(t *testing.T) {
	if KindEndOfStream.String() != "EndOfStream" {
		t.Errorf("KindEndOfStream.String() = %q", KindEndOfStream.String())
	}
	if Kind(99).String() != "Kind(99)" {
		t.Errorf("unknown Kind.String() = %q", Kind(99).String())
	}
}
