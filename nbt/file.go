package nbt

import (
	"os"

	"github.com/ipshing/nbt-go/nbterr"
	"github.com/ipshing/nbt-go/nbtio"
)

// File binds a root Compound to the compression state needed to read and
// write it as a complete NBT document (§4.5). The root must always be a
// named Compound (I6).
type File struct {
	root        *Compound
	bigEndian   bool
	lastCompression *Compression // nil until a Decode/Encode resolves one
}

// NewFile returns a File around a fresh, unnamed-turned-named root
// Compound, using DefaultBigEndian.
func NewFile(rootName string) *File {
	return &File{
		root:      NewCompoundWithName(rootName),
		bigEndian: DefaultBigEndian,
	}
}

// Root returns the document's root Compound.
func (f *File) Root() *Compound { return f.root }

// SetRoot replaces the document's root. root must be a named Compound with
// no existing parent (I6).
func (f *File) SetRoot(root *Compound) error {
	if _, named := root.Name(); !named {
		return nbterr.Formatf(-1, "file root must be a named compound")
	}
	if root.Parent() != nil {
		return nbterr.Formatf(-1, "file root must not already belong to another tree")
	}
	f.root = root
	return nil
}

// BigEndian reports the endianness File reads and writes with.
func (f *File) BigEndian() bool { return f.bigEndian }

// SetBigEndian changes the endianness used by subsequent Save/Decode calls.
func (f *File) SetBigEndian(v bool) { f.bigEndian = v }

// LastCompression returns the compression mode used by the most recent
// successful Decode or Save on this File, and whether one has happened yet.
func (f *File) LastCompression() (Compression, bool) {
	if f.lastCompression == nil {
		return 0, false
	}
	return *f.lastCompression, true
}

// DecodeOptions configures Decode and the *FromBytes/*FromPath
// constructors.
type DecodeOptions struct {
	// Compression selects the framing to assume. CompressionAutoDetect (set
	// by DefaultDecodeOptions) infers it from the input's first byte; the
	// zero value is CompressionNone.
	Compression Compression
	// BigEndian selects the payload's endianness. DefaultDecodeOptions sets
	// it from DefaultBigEndian; the zero value is little-endian.
	BigEndian bool
	// Filter, if non-nil, is consulted after every non-root tag is fully
	// decoded; returning false discards it (§4.6).
	Filter Filter
}

// DefaultDecodeOptions returns the options Decode uses when none are given:
// auto-detected compression, DefaultBigEndian, and no filter.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{Compression: CompressionAutoDetect, BigEndian: DefaultBigEndian}
}

// Decode reads a complete NBT document from data: resolving compression,
// decompressing, and recursively decoding the root Compound and its
// descendants (§4.5, §4.6).
func Decode(data []byte, opts DecodeOptions) (*File, error) {
	comp := opts.Compression
	if comp == CompressionAutoDetect {
		detected, err := detectCompression(data)
		if err != nil {
			return nil, err
		}
		comp = detected
	}
	raw, err := decompress(data, comp)
	if err != nil {
		return nil, err
	}

	s := nbtio.WrapBytes(raw, opts.BigEndian)
	typeByte, err := s.ReadUint8()
	if err != nil {
		return nil, err
	}
	if TagType(typeByte) != TagCompound {
		return nil, nbterr.Formatf(0, "root tag must be Compound, got %s", TagType(typeByte))
	}
	rootName, err := s.ReadString()
	if err != nil {
		return nil, err
	}
	rootTag, err := decodePayload(s, TagCompound, opts.Filter)
	if err != nil {
		return nil, err
	}
	root := rootTag.(*Compound)
	root.setNameUnchecked(rootName, true)

	f := &File{root: root, bigEndian: opts.BigEndian, lastCompression: &comp}
	return f, nil
}

// DecodeFromPath reads and decodes a complete NBT document from the file at
// path.
func DecodeFromPath(path string, opts DecodeOptions) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, opts)
}

// encode implements the shared Save logic. explicit, if non-nil, overrides
// the resolution rule in §4.5: explicit argument wins, else the File's
// last-used compression, else gzip.
func (f *File) encode(explicit *Compression) ([]byte, error) {
	if f.root == nil {
		return nil, nbterr.Formatf(-1, "file has no root compound")
	}
	name, named := f.root.Name()
	if !named {
		return nil, nbterr.Formatf(-1, "file root must be a named compound")
	}

	var resolved Compression
	switch {
	case explicit != nil:
		if *explicit == CompressionAutoDetect {
			return nil, nbterr.Rangef(-1, "AutoDetect is not a valid compression mode for Save")
		}
		resolved = *explicit
	case f.lastCompression != nil:
		resolved = *f.lastCompression
	default:
		resolved = CompressionGzip
	}

	s := nbtio.New(f.bigEndian)
	if err := s.WriteUint8(uint8(TagCompound)); err != nil {
		return nil, err
	}
	if err := s.WriteString(name); err != nil {
		return nil, err
	}
	if err := encodePayload(s, f.root); err != nil {
		return nil, err
	}

	out, err := compress(s.Bytes(), resolved)
	if err != nil {
		return nil, err
	}
	f.lastCompression = &resolved
	return out, nil
}

// Save encodes the document using the resolved compression (last-used, or
// gzip if this File has never decoded or saved before).
func (f *File) Save() ([]byte, error) { return f.encode(nil) }

// SaveWithCompression encodes the document using c explicitly. c must not
// be CompressionAutoDetect.
func (f *File) SaveWithCompression(c Compression) ([]byte, error) { return f.encode(&c) }

// SaveToPath encodes the document and writes it to path, using the
// resolved compression.
func (f *File) SaveToPath(path string) error {
	data, err := f.Save()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// SaveToPathWithCompression encodes the document with c explicitly and
// writes it to path.
func (f *File) SaveToPathWithCompression(path string, c Compression) error {
	data, err := f.SaveWithCompression(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// PrettyPrint renders the document's root tree using DefaultIndent.
func (f *File) PrettyPrint() string {
	if f.root == nil {
		return ""
	}
	return f.root.PrettyPrint(DefaultIndent, 0)
}
