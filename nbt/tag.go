package nbt

import (
	"fmt"

	"github.com/ipshing/nbt-go/nbterr"
)

// Tag is the shared contract of all 12 concrete NBT variants. It is
// intentionally sealed to this package: the two unexported methods mean no
// type outside nbt can implement Tag, which keeps the taxonomy closed the
// way a tagged sum over 12 variants (plus the internal Unknown sentinel)
// should be.
type Tag interface {
	// Type returns the tag's wire type-type code.
	Type() TagType

	// Name returns the tag's name and whether it is named at all. A tag
	// inside a Compound is always named; a tag inside a List, or an
	// unattached tag, may be unnamed.
	Name() (string, bool)

	// SetName names the tag (or renames it). If the tag's parent is a
	// Compound, this is an atomic rename: a colliding name leaves the old
	// name in place and returns a FormatError. Naming a tag inside a List
	// always fails.
	SetName(name string) error

	// ClearName removes the tag's name. Fails if the parent is a
	// Compound, since every compound child must stay named.
	ClearName() error

	// Parent returns the tag's container (a *Compound or *List), or nil
	// if the tag is unattached.
	Parent() Tag

	// Path renders the tag's dotted/indexed location in its tree.
	Path() string

	// Clone returns a deep copy with no parent.
	Clone() Tag

	// PrettyPrint renders "TAG_<Kind>(\"name\"): body" indented by level,
	// using indent as the per-level indentation string.
	PrettyPrint(indent string, level int) string

	setParent(p Tag)
	setNameUnchecked(name string, named bool)
}

// tagBase holds the state common to every concrete tag: its name (if any)
// and a back-reference to its parent container. Ownership flows the other
// way — parent owns children — so this reference is a lookup-only relation
// used for path derivation and rename validation, never for traversal that
// would keep a child alive past its parent discarding it.
type tagBase struct {
	name   string
	named  bool
	parent Tag
}

func (b *tagBase) Name() (string, bool) { return b.name, b.named }
func (b *tagBase) Parent() Tag          { return b.parent }

func (b *tagBase) setParent(p Tag) { b.parent = p }
func (b *tagBase) setNameUnchecked(name string, named bool) {
	b.name, b.named = name, named
}

// setName implements the shared SetName semantics for every concrete tag:
// delegate to the parent Compound for an atomic rename, refuse inside a
// List, otherwise just set it.
func setName(self Tag, name string) error {
	switch p := self.Parent().(type) {
	case *Compound:
		return p.renameChild(self, name)
	case *List:
		return nbterr.Formatf(-1, "cannot name a tag inside a list")
	default:
		self.setNameUnchecked(name, true)
		return nil
	}
}

// clearName implements the shared ClearName semantics: refuse inside a
// Compound (every child must stay named), otherwise clear it.
func clearName(self Tag) error {
	if _, ok := self.Parent().(*Compound); ok {
		return nbterr.Formatf(-1, "cannot clear the name of a compound child")
	}
	self.setNameUnchecked("", false)
	return nil
}

// pathOf derives t's dotted path by walking its parent chain.
func pathOf(t Tag) string {
	parent := t.Parent()
	if parent == nil {
		name, named := t.Name()
		if named {
			return name
		}
		return ""
	}
	switch p := parent.(type) {
	case *Compound:
		name, _ := t.Name()
		base := pathOf(parent)
		if base == "" {
			return name
		}
		return base + "." + name
	case *List:
		idx := p.indexOfIdentity(t)
		return fmt.Sprintf("%s[%d]", pathOf(parent), idx)
	default:
		return ""
	}
}

// isAncestorOf reports whether candidate appears in t's parent chain,
// including t itself. Used to reject inserting a tag into its own
// descendant subtree (the acyclic-ownership invariant, I4).
func isAncestorOf(candidate, t Tag) bool {
	for cur := t; cur != nil; cur = cur.Parent() {
		if cur == candidate {
			return true
		}
	}
	return false
}
