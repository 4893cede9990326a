package nbt

import "testing"

func TestListElementTypeFixedByFirstPush(t *testing.T) {
	l := NewList()
	if l.ElementType() != TagUnknown {
		t.Fatalf("fresh list ElementType() = %v, want TagUnknown", l.ElementType())
	}
	if err := l.Push(NewIntWithValue(1)); err != nil {
		t.Fatal(err)
	}
	if l.ElementType() != TagInt {
		t.Errorf("ElementType() = %v, want TagInt", l.ElementType())
	}
	if err := l.Push(NewIntWithValue(2), NewIntWithValue(3)); err != nil {
		t.Fatal(err)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
}

func TestSetElementTypeOnEmptyList(t *testing.T) {
	l := NewList()
	if err := l.SetElementType(TagString); err != nil {
		t.Fatal(err)
	}
	if l.ElementType() != TagString {
		t.Errorf("ElementType() = %v, want TagString", l.ElementType())
	}
	// Declaring End on an empty list is a legal placeholder.
	if err := l.SetElementType(TagEnd); err != nil {
		t.Errorf("declaring End on an empty list should succeed: %v", err)
	}
}

func TestSetElementTypeRejectsMismatchOnNonEmptyList(t *testing.T) {
	l := NewListOfType(TagInt)
	_ = l.Push(NewIntWithValue(1))
	if err := l.SetElementType(TagString); err == nil {
		t.Errorf("changing element type on a non-empty list should fail")
	}
}

func TestListInsertAndRemoveAt(t *testing.T) {
	l := NewListOfType(TagInt)
	_ = l.Push(NewIntWithValue(1), NewIntWithValue(3))
	if err := l.Insert(1, NewIntWithValue(2)); err != nil {
		t.Fatal(err)
	}
	var got []int32
	l.Range(func(_ int, tag Tag) bool {
		got = append(got, tag.(*IntTag).Value())
		return true
	})
	want := []int32{1, 2, 3}
	for i, v := range want {
		if got[i] != v {
			t.Errorf("got[%d] = %d, want %d", i, got[i], v)
		}
	}

	removed, err := l.RemoveAt(1)
	if err != nil {
		t.Fatal(err)
	}
	if removed.(*IntTag).Value() != 2 {
		t.Errorf("removed element = %d, want 2", removed.(*IntTag).Value())
	}
	if removed.Parent() != nil {
		t.Errorf("removed element should have its parent cleared")
	}
	if l.Len() != 2 {
		t.Errorf("Len() after RemoveAt = %d, want 2", l.Len())
	}
}

func TestListCloneDeepCopiesKeepingElementType(t *testing.T) {
	l := NewListOfType(TagByte)
	clone := l.Clone().(*List)
	if clone.ElementType() != TagByte {
		t.Errorf("clone of empty list lost declared element type: %v", clone.ElementType())
	}

	_ = l.Push(NewByteWithValue(1))
	clone2 := l.Clone().(*List)
	if clone2.Len() != 1 {
		t.Fatalf("clone2.Len() = %d, want 1", clone2.Len())
	}
	elem, _ := clone2.At(0)
	if elem == l.children[0] {
		t.Errorf("clone should deep-copy elements, not share identity")
	}
}
