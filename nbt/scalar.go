package nbt

import (
	"fmt"
	"math"

	"github.com/ipshing/nbt-go/nbterr"
)

// ByteTag holds a signed 8-bit integer ([-128, 127]).
type ByteTag struct {
	tagBase
	value int8
}

// NewByte returns an unnamed, zero-valued Byte tag.
func NewByte() *ByteTag { return &ByteTag{} }

// NewByteWithValue returns an unnamed Byte tag holding v.
func NewByteWithValue(v int8) *ByteTag { return &ByteTag{value: v} }

// NewByteWithName returns a named, zero-valued Byte tag.
func NewByteWithName(name string) *ByteTag {
	t := &ByteTag{}
	t.setNameUnchecked(name, true)
	return t
}

// NewByteWithNameAndValue returns a named Byte tag holding v.
func NewByteWithNameAndValue(name string, v int8) *ByteTag {
	t := &ByteTag{value: v}
	t.setNameUnchecked(name, true)
	return t
}

func (t *ByteTag) Type() TagType { return TagByte }
func (t *ByteTag) Value() int8   { return t.value }

// SetValue assigns v, range-checked against int8 so callers that hold a
// value dynamically (e.g. parsed from a CLI flag) get a RangeError instead
// of a silent truncation.
func (t *ByteTag) SetValue(v int64) error {
	if v < math.MinInt8 || v > math.MaxInt8 {
		return nbterr.Rangef(-1, "value %d out of range for Byte", v)
	}
	t.value = int8(v)
	return nil
}

func (t *ByteTag) SetName(name string) error { return setName(t, name) }
func (t *ByteTag) ClearName() error          { return clearName(t) }
func (t *ByteTag) Path() string              { return pathOf(t) }

func (t *ByteTag) Clone() Tag {
	c := &ByteTag{value: t.value}
	c.setNameUnchecked(t.name, t.named)
	return c
}

func (t *ByteTag) PrettyPrint(indent string, level int) string {
	return prettyScalar(indent, level, t, fmt.Sprintf("%d", t.value))
}

// ShortTag holds a signed 16-bit integer.
type ShortTag struct {
	tagBase
	value int16
}

func NewShort() *ShortTag                         { return &ShortTag{} }
func NewShortWithValue(v int16) *ShortTag          { return &ShortTag{value: v} }
func NewShortWithName(name string) *ShortTag {
	t := &ShortTag{}
	t.setNameUnchecked(name, true)
	return t
}
func NewShortWithNameAndValue(name string, v int16) *ShortTag {
	t := &ShortTag{value: v}
	t.setNameUnchecked(name, true)
	return t
}

func (t *ShortTag) Type() TagType { return TagShort }
func (t *ShortTag) Value() int16  { return t.value }

func (t *ShortTag) SetValue(v int64) error {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return nbterr.Rangef(-1, "value %d out of range for Short", v)
	}
	t.value = int16(v)
	return nil
}

func (t *ShortTag) SetName(name string) error { return setName(t, name) }
func (t *ShortTag) ClearName() error          { return clearName(t) }
func (t *ShortTag) Path() string              { return pathOf(t) }

func (t *ShortTag) Clone() Tag {
	c := &ShortTag{value: t.value}
	c.setNameUnchecked(t.name, t.named)
	return c
}

func (t *ShortTag) PrettyPrint(indent string, level int) string {
	return prettyScalar(indent, level, t, fmt.Sprintf("%d", t.value))
}

// IntTag holds a signed 32-bit integer.
type IntTag struct {
	tagBase
	value int32
}

func NewInt() *IntTag                { return &IntTag{} }
func NewIntWithValue(v int32) *IntTag { return &IntTag{value: v} }
func NewIntWithName(name string) *IntTag {
	t := &IntTag{}
	t.setNameUnchecked(name, true)
	return t
}
func NewIntWithNameAndValue(name string, v int32) *IntTag {
	t := &IntTag{value: v}
	t.setNameUnchecked(name, true)
	return t
}

func (t *IntTag) Type() TagType { return TagInt }
func (t *IntTag) Value() int32  { return t.value }

func (t *IntTag) SetValue(v int64) error {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return nbterr.Rangef(-1, "value %d out of range for Int", v)
	}
	t.value = int32(v)
	return nil
}

func (t *IntTag) SetName(name string) error { return setName(t, name) }
func (t *IntTag) ClearName() error          { return clearName(t) }
func (t *IntTag) Path() string              { return pathOf(t) }

func (t *IntTag) Clone() Tag {
	c := &IntTag{value: t.value}
	c.setNameUnchecked(t.name, t.named)
	return c
}

func (t *IntTag) PrettyPrint(indent string, level int) string {
	return prettyScalar(indent, level, t, fmt.Sprintf("%d", t.value))
}

// LongTag holds a signed 64-bit integer.
type LongTag struct {
	tagBase
	value int64
}

func NewLong() *LongTag                { return &LongTag{} }
func NewLongWithValue(v int64) *LongTag { return &LongTag{value: v} }
func NewLongWithName(name string) *LongTag {
	t := &LongTag{}
	t.setNameUnchecked(name, true)
	return t
}
func NewLongWithNameAndValue(name string, v int64) *LongTag {
	t := &LongTag{value: v}
	t.setNameUnchecked(name, true)
	return t
}

func (t *LongTag) Type() TagType { return TagLong }
func (t *LongTag) Value() int64  { return t.value }

// SetValue assigns v. Long has no narrower declared width to range-check
// against — int64 is already the declared width.
func (t *LongTag) SetValue(v int64) error {
	t.value = v
	return nil
}

func (t *LongTag) SetName(name string) error { return setName(t, name) }
func (t *LongTag) ClearName() error          { return clearName(t) }
func (t *LongTag) Path() string              { return pathOf(t) }

func (t *LongTag) Clone() Tag {
	c := &LongTag{value: t.value}
	c.setNameUnchecked(t.name, t.named)
	return c
}

func (t *LongTag) PrettyPrint(indent string, level int) string {
	return prettyScalar(indent, level, t, fmt.Sprintf("%d", t.value))
}
