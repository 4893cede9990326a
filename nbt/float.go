package nbt

import "strconv"

// sigDigitsFloat and sigDigitsDouble are the significant-digit counts
// Float and Double values are normalized to on assignment (§3, §4.2):
// a deliberate lossy coercion, preserved here for round-trip identity with
// producers that do the same.
const (
	sigDigitsFloat  = 7
	sigDigitsDouble = 15
)

// normalizeFloat32 round-trips v through a decimal presentation limited to
// sigDigitsFloat significant digits.
func normalizeFloat32(v float32) float32 {
	s := strconv.FormatFloat(float64(v), 'g', sigDigitsFloat, 32)
	r, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return v
	}
	return float32(r)
}

// normalizeFloat64 round-trips v through a decimal presentation limited to
// sigDigitsDouble significant digits.
func normalizeFloat64(v float64) float64 {
	s := strconv.FormatFloat(v, 'g', sigDigitsDouble, 64)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	return r
}

// FloatTag holds an IEEE-754 single-precision float, normalized to 7
// significant digits on assignment.
type FloatTag struct {
	tagBase
	value float32
}

func NewFloat() *FloatTag { return &FloatTag{} }
func NewFloatWithValue(v float32) *FloatTag {
	return &FloatTag{value: normalizeFloat32(v)}
}
func NewFloatWithName(name string) *FloatTag {
	t := &FloatTag{}
	t.setNameUnchecked(name, true)
	return t
}
func NewFloatWithNameAndValue(name string, v float32) *FloatTag {
	t := &FloatTag{value: normalizeFloat32(v)}
	t.setNameUnchecked(name, true)
	return t
}

func (t *FloatTag) Type() TagType  { return TagFloat }
func (t *FloatTag) Value() float32 { return t.value }

func (t *FloatTag) SetValue(v float32) error {
	t.value = normalizeFloat32(v)
	return nil
}

func (t *FloatTag) SetName(name string) error { return setName(t, name) }
func (t *FloatTag) ClearName() error          { return clearName(t) }
func (t *FloatTag) Path() string              { return pathOf(t) }

func (t *FloatTag) Clone() Tag {
	c := &FloatTag{value: t.value}
	c.setNameUnchecked(t.name, t.named)
	return c
}

func (t *FloatTag) PrettyPrint(indent string, level int) string {
	return prettyScalar(indent, level, t, strconv.FormatFloat(float64(t.value), 'g', -1, 32))
}

// DoubleTag holds an IEEE-754 double-precision float, normalized to 15
// significant digits on assignment.
type DoubleTag struct {
	tagBase
	value float64
}

func NewDouble() *DoubleTag { return &DoubleTag{} }
func NewDoubleWithValue(v float64) *DoubleTag {
	return &DoubleTag{value: normalizeFloat64(v)}
}
func NewDoubleWithName(name string) *DoubleTag {
	t := &DoubleTag{}
	t.setNameUnchecked(name, true)
	return t
}
func NewDoubleWithNameAndValue(name string, v float64) *DoubleTag {
	t := &DoubleTag{value: normalizeFloat64(v)}
	t.setNameUnchecked(name, true)
	return t
}

func (t *DoubleTag) Type() TagType  { return TagDouble }
func (t *DoubleTag) Value() float64 { return t.value }

func (t *DoubleTag) SetValue(v float64) error {
	t.value = normalizeFloat64(v)
	return nil
}

func (t *DoubleTag) SetName(name string) error { return setName(t, name) }
func (t *DoubleTag) ClearName() error          { return clearName(t) }
func (t *DoubleTag) Path() string              { return pathOf(t) }

func (t *DoubleTag) Clone() Tag {
	c := &DoubleTag{value: t.value}
	c.setNameUnchecked(t.name, t.named)
	return c
}

func (t *DoubleTag) PrettyPrint(indent string, level int) string {
	return prettyScalar(indent, level, t, strconv.FormatFloat(t.value, 'g', -1, 64))
}
