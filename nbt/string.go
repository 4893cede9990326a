package nbt

import "fmt"

// StringTag holds length-prefixed UTF-8 text.
type StringTag struct {
	tagBase
	value string
}

func NewString() *StringTag                { return &StringTag{} }
func NewStringWithValue(v string) *StringTag { return &StringTag{value: v} }
func NewStringWithName(name string) *StringTag {
	t := &StringTag{}
	t.setNameUnchecked(name, true)
	return t
}
func NewStringWithNameAndValue(name, v string) *StringTag {
	t := &StringTag{value: v}
	t.setNameUnchecked(name, true)
	return t
}

func (t *StringTag) Type() TagType   { return TagString }
func (t *StringTag) Value() string   { return t.value }
func (t *StringTag) SetValue(v string) { t.value = v }

func (t *StringTag) SetName(name string) error { return setName(t, name) }
func (t *StringTag) ClearName() error          { return clearName(t) }
func (t *StringTag) Path() string              { return pathOf(t) }

func (t *StringTag) Clone() Tag {
	c := &StringTag{value: t.value}
	c.setNameUnchecked(t.name, t.named)
	return c
}

func (t *StringTag) PrettyPrint(indent string, level int) string {
	return prettyScalar(indent, level, t, fmt.Sprintf("%q", t.value))
}
