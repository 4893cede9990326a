package nbt

import (
	"github.com/ipshing/nbt-go/nbterr"
	"github.com/ipshing/nbt-go/nbtio"
)

// Filter is consulted after a tag (and all its children) has been fully
// decoded, to decide whether it should be kept in the tree. It must not
// mutate the tag it's given. Returning false discards the tag; the bytes
// it occupied have already been consumed, so parsing of siblings is
// unaffected (§4.6).
type Filter func(t Tag) bool

// decodePayload reads tagType's payload (the part of a named tag that
// comes after the type byte and name) and returns the resulting Tag. It
// does not itself apply filter to the tag it returns — that's the
// responsibility of whichever container loop (Compound or List) is about
// to attach it, since the root tag is exempt from filtering but every
// tag it contains, at every nesting depth, is not.
func decodePayload(s *nbtio.Stream, tagType TagType, filter Filter) (Tag, error) {
	switch tagType {
	case TagByte:
		v, err := s.ReadInt8()
		if err != nil {
			return nil, err
		}
		return NewByteWithValue(v), nil

	case TagShort:
		v, err := s.ReadInt16()
		if err != nil {
			return nil, err
		}
		return NewShortWithValue(v), nil

	case TagInt:
		v, err := s.ReadInt32()
		if err != nil {
			return nil, err
		}
		return NewIntWithValue(v), nil

	case TagLong:
		v, err := s.ReadInt64()
		if err != nil {
			return nil, err
		}
		return NewLongWithValue(v), nil

	case TagFloat:
		v, err := s.ReadFloat32()
		if err != nil {
			return nil, err
		}
		return NewFloatWithValue(v), nil

	case TagDouble:
		v, err := s.ReadFloat64()
		if err != nil {
			return nil, err
		}
		return NewDoubleWithValue(v), nil

	case TagString:
		v, err := s.ReadString()
		if err != nil {
			return nil, err
		}
		return NewStringWithValue(v), nil

	case TagByteArray:
		n, err := s.ReadInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, nbterr.Formatf(s.Position(), "negative Byte_Array length %d", n)
		}
		t := NewByteArrayWithLength(int(n))
		for i := range t.values {
			v, err := s.ReadInt8()
			if err != nil {
				return nil, err
			}
			t.values[i] = v
		}
		return t, nil

	case TagIntArray:
		n, err := s.ReadInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, nbterr.Formatf(s.Position(), "negative Int_Array length %d", n)
		}
		t := NewIntArrayWithLength(int(n))
		for i := range t.values {
			v, err := s.ReadInt32()
			if err != nil {
				return nil, err
			}
			t.values[i] = v
		}
		return t, nil

	case TagLongArray:
		n, err := s.ReadInt32()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, nbterr.Formatf(s.Position(), "negative Long_Array length %d", n)
		}
		t := NewLongArrayWithLength(int(n))
		for i := range t.values {
			v, err := s.ReadInt64()
			if err != nil {
				return nil, err
			}
			t.values[i] = v
		}
		return t, nil

	case TagList:
		return decodeList(s, filter)

	case TagCompound:
		return decodeCompound(s, filter)

	default:
		return nil, nbterr.Rangef(s.Position(), "unsupported tag-type code 0x%02X", uint8(tagType))
	}
}

func decodeCompound(s *nbtio.Stream, filter Filter) (Tag, error) {
	c := NewCompound()
	for {
		typeByte, err := s.ReadUint8()
		if err != nil {
			return nil, err
		}
		childType := TagType(typeByte)
		if childType == TagEnd {
			break
		}
		if !childType.Valid() {
			return nil, nbterr.Rangef(s.Position(), "invalid tag-type code 0x%02X", typeByte)
		}
		name, err := s.ReadString()
		if err != nil {
			return nil, err
		}
		child, err := decodePayload(s, childType, filter)
		if err != nil {
			return nil, err
		}
		child.setNameUnchecked(name, true)
		if filter != nil && !filter(child) {
			continue
		}
		if err := c.Add(child); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func decodeList(s *nbtio.Stream, filter Filter) (Tag, error) {
	elemTypeByte, err := s.ReadUint8()
	if err != nil {
		return nil, err
	}
	elemType := TagType(elemTypeByte)
	if !elemType.Valid() {
		return nil, nbterr.Rangef(s.Position(), "invalid list element tag-type code 0x%02X", elemTypeByte)
	}
	count, err := s.ReadInt32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, nbterr.Formatf(s.Position(), "negative list length %d", count)
	}
	l := NewListOfType(elemType)
	for i := int32(0); i < count; i++ {
		if elemType == TagEnd {
			// An empty list may legally declare End as its placeholder
			// element type; a non-empty one never does (nothing can
			// encode an End payload), so this loop body is unreachable
			// for well-formed input, but guard against malformed counts.
			return nil, nbterr.Formatf(s.Position(), "list declares End element type but count %d > 0", count)
		}
		elem, err := decodePayload(s, elemType, filter)
		if err != nil {
			return nil, err
		}
		if filter != nil && !filter(elem) {
			continue
		}
		if err := l.Push(elem); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// encodePayload writes tagType t's payload (no type byte, no name) to s.
func encodePayload(s *nbtio.Stream, t Tag) error {
	switch v := t.(type) {
	case *ByteTag:
		return s.WriteInt8(v.value)
	case *ShortTag:
		return s.WriteInt16(v.value)
	case *IntTag:
		return s.WriteInt32(v.value)
	case *LongTag:
		return s.WriteInt64(v.value)
	case *FloatTag:
		return s.WriteFloat32(v.value)
	case *DoubleTag:
		return s.WriteFloat64(v.value)
	case *StringTag:
		return s.WriteString(v.value)
	case *ByteArrayTag:
		if err := s.WriteInt32(int32(len(v.values))); err != nil {
			return err
		}
		for _, b := range v.values {
			if err := s.WriteInt8(b); err != nil {
				return err
			}
		}
		return nil
	case *IntArrayTag:
		if err := s.WriteInt32(int32(len(v.values))); err != nil {
			return err
		}
		for _, n := range v.values {
			if err := s.WriteInt32(n); err != nil {
				return err
			}
		}
		return nil
	case *LongArrayTag:
		if err := s.WriteInt32(int32(len(v.values))); err != nil {
			return err
		}
		for _, n := range v.values {
			if err := s.WriteInt64(n); err != nil {
				return err
			}
		}
		return nil
	case *List:
		if v.elemType == TagUnknown {
			return nbterr.Formatf(s.Position(), "cannot encode a list with no resolved element type")
		}
		if err := s.WriteUint8(uint8(v.elemType)); err != nil {
			return err
		}
		if err := s.WriteInt32(int32(len(v.children))); err != nil {
			return err
		}
		for _, child := range v.children {
			if err := encodePayload(s, child); err != nil {
				return err
			}
		}
		return nil
	case *Compound:
		for _, child := range v.children {
			name, _ := child.Name()
			if err := s.WriteUint8(uint8(child.Type())); err != nil {
				return err
			}
			if err := s.WriteString(name); err != nil {
				return err
			}
			if err := encodePayload(s, child); err != nil {
				return err
			}
		}
		return s.WriteUint8(uint8(TagEnd))
	default:
		return nbterr.InvalidStatef("unknown tag implementation %T", t)
	}
}
