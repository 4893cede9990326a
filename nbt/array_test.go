package nbt

import (
	"errors"
	"testing"

	"github.com/ipshing/nbt-go/nbterr"
)

func TestByteArrayWithLengthIsZeroFilled(t *testing.T) {
	a := NewByteArrayWithLength(5)
	if a.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", a.Len())
	}
	for i, v := range a.Values() {
		if v != 0 {
			t.Errorf("element %d = %d, want 0", i, v)
		}
	}
}

func TestIntArraySetAtRangeChecked(t *testing.T) {
	a := NewIntArrayWithLength(1)
	if err := a.SetAt(0, 1<<40); !errors.Is(err, nbterr.Range) {
		t.Errorf("expected RangeError, got %v", err)
	}
	if err := a.SetAt(0, 42); err != nil {
		t.Fatal(err)
	}
	if v, _ := a.At(0); v != 42 {
		t.Errorf("At(0) = %d, want 42", v)
	}
}

func TestArrayAtOutOfRangeIsFormatError(t *testing.T) {
	a := NewByteArray()
	if _, err := a.At(0); !errors.Is(err, nbterr.Format) {
		t.Errorf("expected FormatError, got %v", err)
	}
}

func TestLongArrayAppendGrows(t *testing.T) {
	a := NewLongArray()
	a.Append(1)
	a.Append(2)
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	if v, _ := a.At(1); v != 2 {
		t.Errorf("At(1) = %d, want 2", v)
	}
}

func TestArrayValuesReturnsSnapshot(t *testing.T) {
	a := NewIntArrayWithValue([]int32{1, 2, 3})
	snap := a.Values()
	snap[0] = 999
	if v, _ := a.At(0); v != 1 {
		t.Errorf("mutating Values() snapshot affected the array: At(0) = %d", v)
	}
}
