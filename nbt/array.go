package nbt

import (
	"math"

	"github.com/ipshing/nbt-go/nbterr"
)

// ByteArrayTag holds a length-prefixed sequence of signed bytes.
type ByteArrayTag struct {
	tagBase
	values []int8
}

func NewByteArray() *ByteArrayTag { return &ByteArrayTag{} }

// NewByteArrayWithLength returns an unnamed Byte_Array of n zero elements.
func NewByteArrayWithLength(n int) *ByteArrayTag {
	return &ByteArrayTag{values: make([]int8, n)}
}

func NewByteArrayWithValue(v []int8) *ByteArrayTag {
	return &ByteArrayTag{values: append([]int8(nil), v...)}
}

func NewByteArrayWithName(name string) *ByteArrayTag {
	t := &ByteArrayTag{}
	t.setNameUnchecked(name, true)
	return t
}

func NewByteArrayWithNameAndValue(name string, v []int8) *ByteArrayTag {
	t := NewByteArrayWithValue(v)
	t.setNameUnchecked(name, true)
	return t
}

func (t *ByteArrayTag) Type() TagType { return TagByteArray }
func (t *ByteArrayTag) Len() int      { return len(t.values) }

// Values returns a snapshot copy of the array contents.
func (t *ByteArrayTag) Values() []int8 { return append([]int8(nil), t.values...) }

func (t *ByteArrayTag) At(i int) (int8, error) {
	if i < 0 || i >= len(t.values) {
		return 0, nbterr.Formatf(-1, "index %d out of range for Byte_Array of length %d", i, len(t.values))
	}
	return t.values[i], nil
}

// SetAt assigns the element at i, range-checked against int8.
func (t *ByteArrayTag) SetAt(i int, v int64) error {
	if i < 0 || i >= len(t.values) {
		return nbterr.Formatf(-1, "index %d out of range for Byte_Array of length %d", i, len(t.values))
	}
	if v < math.MinInt8 || v > math.MaxInt8 {
		return nbterr.Rangef(-1, "value %d out of range for Byte_Array element", v)
	}
	t.values[i] = int8(v)
	return nil
}

func (t *ByteArrayTag) Append(v int8) { t.values = append(t.values, v) }

func (t *ByteArrayTag) SetName(name string) error { return setName(t, name) }
func (t *ByteArrayTag) ClearName() error          { return clearName(t) }
func (t *ByteArrayTag) Path() string              { return pathOf(t) }

func (t *ByteArrayTag) Clone() Tag {
	c := &ByteArrayTag{values: append([]int8(nil), t.values...)}
	c.setNameUnchecked(t.name, t.named)
	return c
}

func (t *ByteArrayTag) PrettyPrint(indent string, level int) string {
	return prettyArray(indent, level, t, len(t.values), "bytes")
}

// IntArrayTag holds a length-prefixed sequence of signed 32-bit integers.
type IntArrayTag struct {
	tagBase
	values []int32
}

func NewIntArray() *IntArrayTag { return &IntArrayTag{} }

func NewIntArrayWithLength(n int) *IntArrayTag {
	return &IntArrayTag{values: make([]int32, n)}
}

func NewIntArrayWithValue(v []int32) *IntArrayTag {
	return &IntArrayTag{values: append([]int32(nil), v...)}
}

func NewIntArrayWithName(name string) *IntArrayTag {
	t := &IntArrayTag{}
	t.setNameUnchecked(name, true)
	return t
}

func NewIntArrayWithNameAndValue(name string, v []int32) *IntArrayTag {
	t := NewIntArrayWithValue(v)
	t.setNameUnchecked(name, true)
	return t
}

func (t *IntArrayTag) Type() TagType  { return TagIntArray }
func (t *IntArrayTag) Len() int       { return len(t.values) }
func (t *IntArrayTag) Values() []int32 { return append([]int32(nil), t.values...) }

func (t *IntArrayTag) At(i int) (int32, error) {
	if i < 0 || i >= len(t.values) {
		return 0, nbterr.Formatf(-1, "index %d out of range for Int_Array of length %d", i, len(t.values))
	}
	return t.values[i], nil
}

func (t *IntArrayTag) SetAt(i int, v int64) error {
	if i < 0 || i >= len(t.values) {
		return nbterr.Formatf(-1, "index %d out of range for Int_Array of length %d", i, len(t.values))
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return nbterr.Rangef(-1, "value %d out of range for Int_Array element", v)
	}
	t.values[i] = int32(v)
	return nil
}

func (t *IntArrayTag) Append(v int32) { t.values = append(t.values, v) }

func (t *IntArrayTag) SetName(name string) error { return setName(t, name) }
func (t *IntArrayTag) ClearName() error          { return clearName(t) }
func (t *IntArrayTag) Path() string              { return pathOf(t) }

func (t *IntArrayTag) Clone() Tag {
	c := &IntArrayTag{values: append([]int32(nil), t.values...)}
	c.setNameUnchecked(t.name, t.named)
	return c
}

func (t *IntArrayTag) PrettyPrint(indent string, level int) string {
	return prettyArray(indent, level, t, len(t.values), "ints")
}

// LongArrayTag holds a length-prefixed sequence of signed 64-bit integers.
type LongArrayTag struct {
	tagBase
	values []int64
}

func NewLongArray() *LongArrayTag { return &LongArrayTag{} }

func NewLongArrayWithLength(n int) *LongArrayTag {
	return &LongArrayTag{values: make([]int64, n)}
}

func NewLongArrayWithValue(v []int64) *LongArrayTag {
	return &LongArrayTag{values: append([]int64(nil), v...)}
}

func NewLongArrayWithName(name string) *LongArrayTag {
	t := &LongArrayTag{}
	t.setNameUnchecked(name, true)
	return t
}

func NewLongArrayWithNameAndValue(name string, v []int64) *LongArrayTag {
	t := NewLongArrayWithValue(v)
	t.setNameUnchecked(name, true)
	return t
}

func (t *LongArrayTag) Type() TagType  { return TagLongArray }
func (t *LongArrayTag) Len() int       { return len(t.values) }
func (t *LongArrayTag) Values() []int64 { return append([]int64(nil), t.values...) }

func (t *LongArrayTag) At(i int) (int64, error) {
	if i < 0 || i >= len(t.values) {
		return 0, nbterr.Formatf(-1, "index %d out of range for Long_Array of length %d", i, len(t.values))
	}
	return t.values[i], nil
}

// SetAt assigns the element at i. Long_Array has no narrower declared
// width to range-check against.
func (t *LongArrayTag) SetAt(i int, v int64) error {
	if i < 0 || i >= len(t.values) {
		return nbterr.Formatf(-1, "index %d out of range for Long_Array of length %d", i, len(t.values))
	}
	t.values[i] = v
	return nil
}

func (t *LongArrayTag) Append(v int64) { t.values = append(t.values, v) }

func (t *LongArrayTag) SetName(name string) error { return setName(t, name) }
func (t *LongArrayTag) ClearName() error          { return clearName(t) }
func (t *LongArrayTag) Path() string              { return pathOf(t) }

func (t *LongArrayTag) Clone() Tag {
	c := &LongArrayTag{values: append([]int64(nil), t.values...)}
	c.setNameUnchecked(t.name, t.named)
	return c
}

func (t *LongArrayTag) PrettyPrint(indent string, level int) string {
	return prettyArray(indent, level, t, len(t.values), "longs")
}
