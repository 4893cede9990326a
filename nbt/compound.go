package nbt

import (
	"strings"

	"github.com/ipshing/nbt-go/nbterr"
)

// Compound holds a set of uniquely-named child tags. Iteration order
// matches insertion order; the wire format doesn't require it (readers
// reconstruct a map by name) but a stable order makes pretty-printing and
// round-trip tests deterministic.
type Compound struct {
	tagBase
	children []Tag
	index    map[string]int // name -> position in children
}

func NewCompound() *Compound {
	return &Compound{index: make(map[string]int)}
}

func NewCompoundWithName(name string) *Compound {
	c := NewCompound()
	c.setNameUnchecked(name, true)
	return c
}

func (c *Compound) Type() TagType { return TagCompound }

func (c *Compound) SetName(name string) error { return setName(c, name) }
func (c *Compound) ClearName() error          { return clearName(c) }
func (c *Compound) Path() string              { return pathOf(c) }

// Size returns the number of children.
func (c *Compound) Size() int { return len(c.children) }

// Names returns the children's names, in iteration order.
func (c *Compound) Names() []string {
	out := make([]string, len(c.children))
	for i, t := range c.children {
		name, _ := t.Name()
		out[i] = name
	}
	return out
}

// Tags returns a snapshot slice of the children, in iteration order. The
// slice is the caller's to keep; the underlying tags are still owned by c.
func (c *Compound) Tags() []Tag {
	return append([]Tag(nil), c.children...)
}

// Range visits each (name, tag) pair in iteration order, stopping early if
// fn returns false. fn must not mutate c.
func (c *Compound) Range(fn func(name string, t Tag) bool) {
	for _, t := range c.children {
		name, _ := t.Name()
		if !fn(name, t) {
			return
		}
	}
}

// Get returns the child named name, or nil if absent.
func (c *Compound) Get(name string) Tag {
	if i, ok := c.index[name]; ok {
		return c.children[i]
	}
	return nil
}

// Has reports whether a child named name exists.
func (c *Compound) Has(name string) bool {
	_, ok := c.index[name]
	return ok
}

// HasTag reports whether t is (by identity) one of c's children.
func (c *Compound) HasTag(t Tag) bool {
	name, named := t.Name()
	if !named {
		return false
	}
	existing, ok := c.index[name]
	return ok && c.children[existing] == t
}

// Add inserts tag into the compound. tag must be named, unattached, and
// not an ancestor of c (I4); its name must not already be present (I2).
// On success, tag's parent becomes c (I1).
func (c *Compound) Add(tag Tag) error {
	name, named := tag.Name()
	if !named {
		return nbterr.Formatf(-1, "tag added to a compound must be named")
	}
	if tag.Parent() != nil {
		return nbterr.Formatf(-1, "tag %q already has a parent", name)
	}
	if isAncestorOf(tag, c) {
		return nbterr.Formatf(-1, "cannot add %q: would create a cycle", name)
	}
	if _, exists := c.index[name]; exists {
		return nbterr.Formatf(-1, "duplicate name %q in compound", name)
	}
	c.index[name] = len(c.children)
	c.children = append(c.children, tag)
	tag.setParent(c)
	return nil
}

// Delete removes the child named name, if present, clearing its parent.
// Returns true if a child was removed.
func (c *Compound) Delete(name string) bool {
	i, ok := c.index[name]
	if !ok {
		return false
	}
	removed := c.children[i]
	c.removeAt(i)
	removed.setParent(nil)
	return true
}

// DeleteTag removes t (by identity), if it is a child of c.
func (c *Compound) DeleteTag(t Tag) bool {
	name, named := t.Name()
	if !named {
		return false
	}
	i, ok := c.index[name]
	if !ok || c.children[i] != t {
		return false
	}
	c.removeAt(i)
	t.setParent(nil)
	return true
}

func (c *Compound) removeAt(i int) {
	c.children = append(c.children[:i], c.children[i+1:]...)
	c.reindexFrom(i)
}

func (c *Compound) reindexFrom(from int) {
	// Rebuild the index for everything at or after from; simplest correct
	// approach given Compound favors lookup-by-name over positional
	// stability.
	for name, pos := range c.index {
		if pos >= from {
			delete(c.index, name)
		}
	}
	for i := from; i < len(c.children); i++ {
		name, _ := c.children[i].Name()
		c.index[name] = i
	}
}

// Clear removes all children, clearing each one's parent.
func (c *Compound) Clear() {
	for _, t := range c.children {
		t.setParent(nil)
	}
	c.children = nil
	c.index = make(map[string]int)
}

// RenameTag renames the child currently named oldName to newName. A no-op
// if they're equal; fails if newName collides with another child or
// oldName doesn't exist.
func (c *Compound) RenameTag(oldName, newName string) error {
	t := c.Get(oldName)
	if t == nil {
		return nbterr.Formatf(-1, "no such child %q", oldName)
	}
	return c.renameChild(t, newName)
}

// renameChild performs the atomic rename used by both RenameTag and the
// shared Tag.SetName path: on collision, the old name remains in place.
func (c *Compound) renameChild(t Tag, newName string) error {
	oldName, _ := t.Name()
	if oldName == newName {
		return nil
	}
	if _, exists := c.index[newName]; exists {
		return nbterr.Formatf(-1, "cannot rename %q to %q: name already in use", oldName, newName)
	}
	i, ok := c.index[oldName]
	if !ok || c.children[i] != t {
		return nbterr.Formatf(-1, "tag %q is not a child of this compound", oldName)
	}
	delete(c.index, oldName)
	c.index[newName] = i
	t.setNameUnchecked(newName, true)
	return nil
}

// Clone returns a deep copy with no parent; every child is cloned too.
func (c *Compound) Clone() Tag {
	clone := NewCompound()
	clone.setNameUnchecked(c.name, c.named)
	for _, t := range c.children {
		childClone := t.Clone()
		name, _ := childClone.Name()
		clone.index[name] = len(clone.children)
		clone.children = append(clone.children, childClone)
		childClone.setParent(clone)
	}
	return clone
}

func (c *Compound) PrettyPrint(indent string, level int) string {
	var sb strings.Builder
	sb.WriteString(prettyContainer(indent, level, c, len(c.children), "entries"))
	sb.WriteString(" {\n")
	for _, t := range c.children {
		sb.WriteString(t.PrettyPrint(indent, level+1))
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat(indent, level))
	sb.WriteByte('}')
	return sb.String()
}
