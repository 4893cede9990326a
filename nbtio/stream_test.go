package nbtio

import (
	"errors"
	"testing"

	"github.com/ipshing/nbt-go/nbterr"
)

func TestWriteReadRoundTripScalars(t *testing.T) {
	s := New(true)
	if err := s.WriteInt8(-5); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteInt16(1234); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteInt32(-99999); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteInt64(1 << 40); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteFloat32(3.5); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteFloat64(2.718281828); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteString("hello"); err != nil {
		t.Fatal(err)
	}

	r := WrapBytes(s.Bytes(), true)
	if v, err := r.ReadInt8(); err != nil || v != -5 {
		t.Errorf("ReadInt8 = %d, %v", v, err)
	}
	if v, err := r.ReadInt16(); err != nil || v != 1234 {
		t.Errorf("ReadInt16 = %d, %v", v, err)
	}
	if v, err := r.ReadInt32(); err != nil || v != -99999 {
		t.Errorf("ReadInt32 = %d, %v", v, err)
	}
	if v, err := r.ReadInt64(); err != nil || v != 1<<40 {
		t.Errorf("ReadInt64 = %d, %v", v, err)
	}
	if v, err := r.ReadFloat32(); err != nil || v != 3.5 {
		t.Errorf("ReadFloat32 = %v, %v", v, err)
	}
	if v, err := r.ReadFloat64(); err != nil || v != 2.718281828 {
		t.Errorf("ReadFloat64 = %v, %v", v, err)
	}
	if v, err := r.ReadString(); err != nil || v != "hello" {
		t.Errorf("ReadString = %q, %v", v, err)
	}
}

func TestEndiannessAffectsWireBytes(t *testing.T) {
	big := New(true)
	_ = big.WriteInt32(1)
	little := New(false)
	_ = little.WriteInt32(1)

	if big.Bytes()[3] != 1 {
		t.Errorf("big-endian Int32(1) should end in 0x01, got %x", big.Bytes())
	}
	if little.Bytes()[0] != 1 {
		t.Errorf("little-endian Int32(1) should start with 0x01, got %x", little.Bytes())
	}
}

func TestReadPastEndOfStreamFails(t *testing.T) {
	s := WrapBytes([]byte{0x01}, true)
	_, err := s.ReadInt32()
	if !errors.Is(err, nbterr.EndOfStream) {
		t.Errorf("expected EndOfStream, got %v", err)
	}
}

func TestWrapIsNonExpandable(t *testing.T) {
	s := Wrap(make([]byte, 8), 0, 4, true)
	if _, err := s.WriteBytes([]byte{1, 2, 3, 4, 5}); !errors.Is(err, nbterr.EndOfStream) {
		t.Errorf("write past wrapped capacity should be EndOfStream, got %v", err)
	}
}

func TestExpandableStreamGrows(t *testing.T) {
	s := New(true)
	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i)
	}
	if _, err := s.WriteBytes(data); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	if s.Length() != 1000 {
		t.Errorf("Length() = %d, want 1000", s.Length())
	}
	if s.Capacity() < 1000 {
		t.Errorf("Capacity() = %d, want >= 1000", s.Capacity())
	}
}

func TestSeekPastEndZeroFillsOnWrite(t *testing.T) {
	s := New(true)
	if _, err := s.Seek(10, SeekBegin); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteUint8(0xFF); err != nil {
		t.Fatal(err)
	}
	if s.Length() != 11 {
		t.Fatalf("Length() = %d, want 11", s.Length())
	}
	for i := 0; i < 10; i++ {
		if s.Bytes()[i] != 0 {
			t.Errorf("byte %d = %x, want 0 (zero-filled gap)", i, s.Bytes()[i])
		}
	}
	if s.Bytes()[10] != 0xFF {
		t.Errorf("byte 10 = %x, want 0xFF", s.Bytes()[10])
	}
}

func TestSeekBeforeStartFails(t *testing.T) {
	s := New(true)
	if _, err := s.Seek(-1, SeekBegin); !errors.Is(err, nbterr.EndOfStream) {
		t.Errorf("expected EndOfStream, got %v", err)
	}
}

func TestStringLongerThanUint16Fails(t *testing.T) {
	s := New(true)
	big := make([]byte, 1<<16+1)
	for i := range big {
		big[i] = 'a'
	}
	if err := s.WriteString(string(big)); !errors.Is(err, nbterr.Range) {
		t.Errorf("expected RangeError, got %v", err)
	}
}

func TestReadStringRejectsInvalidUTF8(t *testing.T) {
	s := New(true)
	_ = s.WriteUint16(2)
	_, _ = s.WriteBytes([]byte{0xFF, 0xFE})
	r := WrapBytes(s.Bytes(), true)
	_, err := r.ReadString()
	if !errors.Is(err, nbterr.Format) {
		t.Errorf("expected FormatError for invalid UTF-8, got %v", err)
	}
}
