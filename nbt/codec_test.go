package nbt

import (
	"testing"

	"github.com/ipshing/nbt-go/nbtio"
)

func TestSixSeedScenariosRoundTrip(t *testing.T) {
	seeds := map[string]func() *File{
		"empty root": func() *File {
			return NewFile("")
		},
		"single scalar": func() *File {
			f := NewFile("root")
			_ = f.Root().Add(NewIntWithNameAndValue("answer", 42))
			return f
		},
		"string": func() *File {
			f := NewFile("root")
			_ = f.Root().Add(NewStringWithNameAndValue("greeting", "hello, NBT"))
			return f
		},
		"homogeneous list": func() *File {
			f := NewFile("root")
			l := NewListOfType(TagShort)
			_ = l.SetName("scores")
			_ = l.Push(NewShortWithValue(10), NewShortWithValue(20), NewShortWithValue(30))
			_ = f.Root().Add(l)
			return f
		},
		"nested compound": func() *File {
			f := NewFile("root")
			child := NewCompoundWithName("stats")
			_ = child.Add(NewDoubleWithNameAndValue("hp", 100.0))
			_ = f.Root().Add(child)
			return f
		},
		"arrays": func() *File {
			f := NewFile("root")
			_ = f.Root().Add(NewByteArrayWithNameAndValue("raw", []int8{1, 2, 3}))
			_ = f.Root().Add(NewIntArrayWithNameAndValue("ids", []int32{100, 200}))
			_ = f.Root().Add(NewLongArrayWithNameAndValue("hashes", []int64{1 << 40, -1}))
			return f
		},
	}

	for name, build := range seeds {
		t.Run(name, func(t *testing.T) {
			original := build()
			encoded, err := original.SaveWithCompression(CompressionNone)
			if err != nil {
				t.Fatalf("Save: %v", err)
			}
			decoded, err := Decode(encoded, DecodeOptions{Compression: CompressionNone, BigEndian: true})
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			reencoded, err := decoded.SaveWithCompression(CompressionNone)
			if err != nil {
				t.Fatalf("re-Save: %v", err)
			}
			if string(reencoded) != string(encoded) {
				t.Errorf("round trip not byte-identical for %q", name)
			}
		})
	}
}

func TestGzipAutoDetectRoundTrip(t *testing.T) {
	f := NewFile("root")
	_ = f.Root().Add(NewIntWithNameAndValue("x", 7))
	encoded, err := f.SaveWithCompression(CompressionGzip)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(encoded, DefaultDecodeOptions())
	if err != nil {
		t.Fatal(err)
	}
	if comp, ok := decoded.LastCompression(); !ok || comp != CompressionGzip {
		t.Errorf("LastCompression() = %v, %v, want Gzip, true", comp, ok)
	}
	if got := decoded.Root().Get("x").(*IntTag).Value(); got != 7 {
		t.Errorf("decoded value = %d, want 7", got)
	}
}

func TestDecodeRejectsDuplicateChildName(t *testing.T) {
	// Hand-build a Compound payload with the same child name written twice,
	// to exercise the decoder's duplicate-name rejection (I2) directly
	// rather than through the in-memory Add API.
	s := nbtio.New(true)
	writeNamedInt := func(name string, v int32) {
		_ = s.WriteUint8(uint8(TagInt))
		_ = s.WriteString(name)
		_ = s.WriteInt32(v)
	}
	writeNamedInt("dup", 1)
	writeNamedInt("dup", 2)
	_ = s.WriteUint8(uint8(TagEnd))
	if _, err := s.Seek(0, nbtio.SeekBegin); err != nil {
		t.Fatal(err)
	}

	if _, err := decodeCompound(s, nil); err == nil {
		t.Errorf("decoding a compound with a duplicate child name should fail")
	}
}

func TestFilterDiscardsMatchingTagsAtEveryDepth(t *testing.T) {
	f := NewFile("root")
	_ = f.Root().Add(NewIntWithNameAndValue("keep", 1))
	_ = f.Root().Add(NewIntWithNameAndValue("drop", 2))
	nested := NewCompoundWithName("nested")
	_ = nested.Add(NewStringWithNameAndValue("drop", "x"))
	_ = nested.Add(NewStringWithNameAndValue("keep", "y"))
	_ = f.Root().Add(nested)

	encoded, err := f.SaveWithCompression(CompressionNone)
	if err != nil {
		t.Fatal(err)
	}

	filter := func(tag Tag) bool {
		name, _ := tag.Name()
		return name != "drop"
	}
	decoded, err := Decode(encoded, DecodeOptions{Compression: CompressionNone, BigEndian: true, Filter: filter})
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Root().Has("drop") {
		t.Errorf("filter should have discarded root-level %q", "drop")
	}
	if !decoded.Root().Has("keep") {
		t.Errorf("filter should have kept root-level %q", "keep")
	}
	nestedDecoded := decoded.Root().Get("nested").(*Compound)
	if nestedDecoded.Has("drop") {
		t.Errorf("filter should apply recursively to nested compound children")
	}
	if !nestedDecoded.Has("keep") {
		t.Errorf("filter should keep nested %q", "keep")
	}
}

func TestDecodeRejectsNonCompoundRoot(t *testing.T) {
	s := rawStreamWithByteRoot()
	if _, err := Decode(s, DecodeOptions{Compression: CompressionNone, BigEndian: true}); err == nil {
		t.Errorf("a root tag-type byte other than Compound should fail to decode")
	}
}

func rawStreamWithByteRoot() []byte {
	// type=Byte(0x01), name-len=0, no body needed since Decode stops at the
	// root type check before reading the name or any payload.
	return []byte{0x01, 0x00, 0x00}
}

func TestEncodeRejectsListWithUnresolvedElementType(t *testing.T) {
	f := NewFile("root")
	_ = f.Root().Add(NewListWithName("empty")) // elemType stays Unknown: never pushed to
	if _, err := f.SaveWithCompression(CompressionNone); err == nil {
		t.Errorf("encoding a list with no resolved element type should fail")
	}
}
