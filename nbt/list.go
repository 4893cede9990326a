package nbt

import (
	"strings"

	"github.com/ipshing/nbt-go/nbterr"
)

// List holds an ordered, homogeneous sequence of unnamed child tags. A
// freshly-constructed List has element type Unknown until its first
// insertion fixes it (I3); an empty List may also explicitly declare End
// as a placeholder element type, matching what some encoders allow on the
// wire for an empty list (see DESIGN.md's resolution of the spec's open
// question about End-typed empty lists).
type List struct {
	tagBase
	elemType TagType
	children []Tag
}

func NewList() *List {
	return &List{elemType: TagUnknown}
}

func NewListWithName(name string) *List {
	l := NewList()
	l.setNameUnchecked(name, true)
	return l
}

// NewListOfType returns an empty List with its element type pre-declared.
func NewListOfType(elemType TagType) *List {
	return &List{elemType: elemType}
}

func (l *List) Type() TagType { return TagList }

func (l *List) SetName(name string) error { return setName(l, name) }
func (l *List) ClearName() error          { return clearName(l) }
func (l *List) Path() string              { return pathOf(l) }

// ElementType returns the list's declared homogeneous element type. For a
// list built by NewList it is TagUnknown until the first successful
// insertion or SetElementType call.
func (l *List) ElementType() TagType { return l.elemType }

// SetElementType explicitly declares the element type. Only legal when the
// list is empty (any valid TagType, including End as a placeholder, or
// Unknown) or when the value matches the list's current element type.
func (l *List) SetElementType(t TagType) error {
	if t != TagUnknown && !t.Valid() {
		return nbterr.Rangef(-1, "invalid tag-type code 0x%02X for list element type", uint8(t))
	}
	if len(l.children) == 0 {
		l.elemType = t
		return nil
	}
	if t != l.elemType {
		return nbterr.Formatf(-1, "cannot set element type to %s: list already holds %s elements", t, l.elemType)
	}
	return nil
}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.children) }

// Tags returns a snapshot slice of the elements, in order.
func (l *List) Tags() []Tag { return append([]Tag(nil), l.children...) }

// Range visits each element in order, stopping early if fn returns false.
func (l *List) Range(fn func(i int, t Tag) bool) {
	for i, t := range l.children {
		if !fn(i, t) {
			return
		}
	}
}

// At returns the element at index, or a FormatError if out of range.
func (l *List) At(index int) (Tag, error) {
	if index < 0 || index >= len(l.children) {
		return nil, nbterr.Formatf(-1, "index %d out of range for list of length %d", index, len(l.children))
	}
	return l.children[index], nil
}

func (l *List) admit(tag Tag) error {
	if tag.Parent() != nil {
		return nbterr.Formatf(-1, "tag already has a parent")
	}
	if isAncestorOf(tag, l) {
		return nbterr.Formatf(-1, "cannot insert an ancestor of the list as its own descendant")
	}
	if _, named := tag.Name(); named {
		return nbterr.Formatf(-1, "tag inserted into a list must be unnamed")
	}
	if l.elemType == TagUnknown {
		return nil
	}
	if tag.Type() != l.elemType {
		return nbterr.Formatf(-1, "list holds %s elements, cannot insert %s", l.elemType, tag.Type())
	}
	return nil
}

// Push appends one or more tags, fixing the list's element type from the
// first tag if it is currently Unknown.
func (l *List) Push(tags ...Tag) error {
	for _, tag := range tags {
		if err := l.admit(tag); err != nil {
			return err
		}
		if l.elemType == TagUnknown {
			l.elemType = tag.Type()
		}
		l.children = append(l.children, tag)
		tag.setParent(l)
	}
	return nil
}

// Insert places tag at index, shifting later elements right.
func (l *List) Insert(index int, tag Tag) error {
	if index < 0 || index > len(l.children) {
		return nbterr.Formatf(-1, "index %d out of range for insert into list of length %d", index, len(l.children))
	}
	if err := l.admit(tag); err != nil {
		return err
	}
	if l.elemType == TagUnknown {
		l.elemType = tag.Type()
	}
	l.children = append(l.children, nil)
	copy(l.children[index+1:], l.children[index:])
	l.children[index] = tag
	tag.setParent(l)
	return nil
}

// RemoveAt removes and returns the element at index.
func (l *List) RemoveAt(index int) (Tag, error) {
	if index < 0 || index >= len(l.children) {
		return nil, nbterr.Formatf(-1, "index %d out of range for list of length %d", index, len(l.children))
	}
	t := l.children[index]
	l.children = append(l.children[:index], l.children[index+1:]...)
	t.setParent(nil)
	return t, nil
}

// Remove removes t (by identity), if present. Reports whether it removed
// anything.
func (l *List) Remove(t Tag) bool {
	idx := l.indexOfIdentity(t)
	if idx < 0 {
		return false
	}
	_, _ = l.RemoveAt(idx)
	return true
}

// Clear removes all elements, clearing each one's parent. The declared
// element type is left unchanged.
func (l *List) Clear() {
	for _, t := range l.children {
		t.setParent(nil)
	}
	l.children = nil
}

// IndexOf returns the index of t (by identity), or -1 if absent.
func (l *List) IndexOf(t Tag) int { return l.indexOfIdentity(t) }

// Includes reports whether t (by identity) is an element of l.
func (l *List) Includes(t Tag) bool { return l.indexOfIdentity(t) >= 0 }

func (l *List) indexOfIdentity(t Tag) int {
	for i, c := range l.children {
		if c == t {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy with no parent, preserving the declared
// element type even if the list is empty.
func (l *List) Clone() Tag {
	clone := NewListOfType(l.elemType)
	clone.setNameUnchecked(l.name, l.named)
	for _, t := range l.children {
		childClone := t.Clone()
		clone.children = append(clone.children, childClone)
		childClone.setParent(clone)
	}
	return clone
}

func (l *List) PrettyPrint(indent string, level int) string {
	var sb strings.Builder
	sb.WriteString(prettyContainer(indent, level, l, len(l.children), "entries of type "+l.elemType.String()))
	sb.WriteString(" [\n")
	for _, t := range l.children {
		sb.WriteString(t.PrettyPrint(indent, level+1))
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat(indent, level))
	sb.WriteByte(']')
	return sb.String()
}
