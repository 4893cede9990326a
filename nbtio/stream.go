// Package nbtio implements the binary stream abstraction that both the NBT
// decoder and encoder read and write through: a positioned, optionally
// auto-growing byte buffer with typed primitive accessors and selectable
// endianness.
//
// A single Stream type serves both roles so the encoder and decoder never
// need two different buffer kinds: an expandable Stream is scratch space
// for encoding, a non-expandable Stream wrapping an input slice is the
// bounded view the decoder reads through.
package nbtio

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/ipshing/nbt-go/nbterr"
)

// SeekOrigin selects the reference point for Seek.
type SeekOrigin int

const (
	SeekBegin   SeekOrigin = iota // offset is relative to the start of the stream
	SeekCurrent                   // offset is relative to the current position
	SeekEnd                       // offset is relative to the logical end of the stream
)

// maxCapacity bounds how large an expandable Stream's backing array may
// grow. It mirrors the "platform byte-buffer maximum" clamp called for in
// the stream's growth rule: doubling never pushes capacity past this.
const maxCapacity = math.MaxInt32

// minGrowCapacity is the smallest capacity an expandable Stream grows to
// from empty.
const minGrowCapacity = 256

// Stream is a seekable, typed byte buffer. The zero value is not usable;
// construct one with New, NewWithCapacity, or Wrap.
type Stream struct {
	buf        []byte
	length     int // logical length; bytes in buf[:length] are "written"
	pos        int // current read/write position
	bigEndian  bool
	expandable bool
}

// New returns an empty, expandable Stream with the given endianness.
func New(bigEndian bool) *Stream {
	return NewWithCapacity(0, bigEndian)
}

// NewWithCapacity returns an empty, expandable Stream pre-sized to
// initialCapacity bytes.
func NewWithCapacity(initialCapacity int, bigEndian bool) *Stream {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &Stream{
		buf:        make([]byte, 0, initialCapacity),
		bigEndian:  bigEndian,
		expandable: true,
	}
}

// Wrap returns a non-expandable Stream over data[index : index+count]. The
// three-index slice expression caps the Stream's capacity at count, so
// growth attempts fail with EndOfStream instead of silently spilling into
// whatever else shares data's backing array.
func Wrap(data []byte, index, count int, bigEndian bool) *Stream {
	end := index + count
	return &Stream{
		buf:       data[index:end:end],
		length:    count,
		bigEndian: bigEndian,
	}
}

// WrapBytes returns a non-expandable Stream over the whole of data.
func WrapBytes(data []byte, bigEndian bool) *Stream {
	return Wrap(data, 0, len(data), bigEndian)
}

// BigEndian reports the Stream's configured endianness.
func (s *Stream) BigEndian() bool { return s.bigEndian }

// SetBigEndian changes the Stream's endianness for subsequent reads/writes.
func (s *Stream) SetBigEndian(v bool) { s.bigEndian = v }

// Position returns the current read/write offset.
func (s *Stream) Position() int64 { return int64(s.pos) }

// SetPosition moves the read/write offset. Positions past Length are legal
// for a writer; they simply mean the next write will zero-fill the gap.
func (s *Stream) SetPosition(p int64) error {
	if p < 0 {
		return nbterr.EndOfStreamf(p, "seek before start of stream")
	}
	s.pos = int(p)
	return nil
}

// Length returns the logical length of the stream (bytes considered
// written, as opposed to merely allocated).
func (s *Stream) Length() int64 { return int64(s.length) }

// SetLength changes the logical length. Growing an expandable stream's
// length allocates as needed; shrinking clamps Position to the new length.
func (s *Stream) SetLength(n int64) error {
	if n < 0 {
		return nbterr.Formatf(-1, "negative length %d", n)
	}
	if int(n) > cap(s.buf) {
		if err := s.grow(int(n)); err != nil {
			return err
		}
	}
	s.length = int(n)
	s.buf = s.buf[:s.length]
	if s.pos > s.length {
		s.pos = s.length
	}
	return nil
}

// Capacity returns the allocated capacity of the backing array.
func (s *Stream) Capacity() int64 { return int64(cap(s.buf)) }

// Bytes returns the logically-written portion of the stream. The caller
// must not retain it across further writes to an expandable stream, since
// growth may reallocate the backing array.
func (s *Stream) Bytes() []byte { return s.buf[:s.length] }

// Seek repositions the stream and returns the new absolute position.
// Seeking before the start of the stream fails; seeking past the logical
// end is allowed (a subsequent write there zero-fills the gap).
func (s *Stream) Seek(offset int64, origin SeekOrigin) (int64, error) {
	var base int64
	switch origin {
	case SeekBegin:
		base = 0
	case SeekCurrent:
		base = int64(s.pos)
	case SeekEnd:
		base = int64(s.length)
	default:
		return 0, nbterr.Rangef(-1, "invalid seek origin %d", int(origin))
	}
	newPos := base + offset
	if newPos < 0 {
		return 0, nbterr.EndOfStreamf(newPos, "seek before start of stream")
	}
	s.pos = int(newPos)
	return newPos, nil
}

// grow ensures the backing array has capacity for at least requiredEnd
// bytes, doubling (per the stream's growth rule) on an expandable Stream.
// A non-expandable Stream surfaces EndOfStream instead of growing.
func (s *Stream) grow(requiredEnd int) error {
	if requiredEnd <= cap(s.buf) {
		return nil
	}
	if !s.expandable {
		return nbterr.EndOfStreamf(int64(s.pos), "write past capacity %d of non-expandable stream", cap(s.buf))
	}
	newCap := requiredEnd
	doubled := cap(s.buf) * 2
	if doubled < minGrowCapacity {
		doubled = minGrowCapacity
	}
	if doubled > newCap {
		newCap = doubled
	}
	if newCap > maxCapacity {
		if requiredEnd > maxCapacity {
			return nbterr.EndOfStreamf(int64(s.pos), "required capacity %d exceeds maximum %d", requiredEnd, maxCapacity)
		}
		newCap = maxCapacity
	}
	grown := make([]byte, s.length, newCap)
	copy(grown, s.buf[:s.length])
	s.buf = grown
	return nil
}

// ensureWritable grows the stream (if expandable) so that buf[:end] is
// addressable, zero-filling the gap between the old length and pos when
// the write starts past the current length.
func (s *Stream) ensureWritable(n int) (start int, err error) {
	start = s.pos
	end := start + n
	if err := s.grow(end); err != nil {
		return 0, err
	}
	if end > s.length {
		oldLength := s.length
		s.buf = s.buf[:end]
		s.length = end
		if start > oldLength {
			clear(s.buf[oldLength:start])
		}
	}
	return start, nil
}

func (s *Stream) order() binary.ByteOrder {
	if s.bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// requireReadable checks that n bytes are available to read at the current
// position, returning EndOfStream otherwise.
func (s *Stream) requireReadable(n int) error {
	if s.pos+n > s.length {
		return nbterr.EndOfStreamf(int64(s.pos), "need %d bytes, only %d remain", n, s.length-s.pos)
	}
	return nil
}

// ReadBytes returns up to n bytes starting at the current position,
// truncated to whatever remains. It never fails from running out of
// input; callers that need an exact count validate the returned length
// themselves.
func (s *Stream) ReadBytes(n int) []byte {
	if n < 0 {
		n = 0
	}
	avail := s.length - s.pos
	if avail < 0 {
		avail = 0
	}
	if n > avail {
		n = avail
	}
	out := make([]byte, n)
	if n > 0 {
		copy(out, s.buf[s.pos:s.pos+n])
	}
	s.pos += n
	return out
}

// WriteBytes writes data at the current position, growing the stream if
// necessary and zero-filling any gap left behind by a prior Seek past the
// logical end.
func (s *Stream) WriteBytes(data []byte) (int, error) {
	start, err := s.ensureWritable(len(data))
	if err != nil {
		return 0, err
	}
	copy(s.buf[start:start+len(data)], data)
	s.pos = start + len(data)
	return len(data), nil
}

func (s *Stream) readFixed(n int) ([]byte, error) {
	if err := s.requireReadable(n); err != nil {
		return nil, err
	}
	b := s.buf[s.pos : s.pos+n]
	s.pos += n
	return b, nil
}

// ReadInt8 reads a signed 8-bit integer.
func (s *Stream) ReadInt8() (int8, error) {
	b, err := s.readFixed(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (s *Stream) ReadUint8() (uint8, error) {
	b, err := s.readFixed(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt16 reads a signed 16-bit integer in the stream's endianness.
func (s *Stream) ReadInt16() (int16, error) {
	b, err := s.readFixed(2)
	if err != nil {
		return 0, err
	}
	return int16(s.order().Uint16(b)), nil
}

// ReadInt32 reads a signed 32-bit integer in the stream's endianness.
func (s *Stream) ReadInt32() (int32, error) {
	b, err := s.readFixed(4)
	if err != nil {
		return 0, err
	}
	return int32(s.order().Uint32(b)), nil
}

// ReadInt64 reads a signed 64-bit integer in the stream's endianness.
func (s *Stream) ReadInt64() (int64, error) {
	b, err := s.readFixed(8)
	if err != nil {
		return 0, err
	}
	return int64(s.order().Uint64(b)), nil
}

// ReadFloat32 reads an IEEE-754 single-precision float, bit-exact.
func (s *Stream) ReadFloat32() (float32, error) {
	b, err := s.readFixed(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(s.order().Uint32(b)), nil
}

// ReadFloat64 reads an IEEE-754 double-precision float, bit-exact.
func (s *Stream) ReadFloat64() (float64, error) {
	b, err := s.readFixed(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(s.order().Uint64(b)), nil
}

// ReadString reads a uint16-length-prefixed UTF-8 string.
func (s *Stream) ReadString() (string, error) {
	n, err := s.ReadUint16()
	if err != nil {
		return "", err
	}
	b, err := s.readFixed(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", nbterr.Formatf(int64(s.pos-int(n)), "invalid UTF-8 in string payload")
	}
	return string(b), nil
}

// ReadUint16 reads an unsigned 16-bit integer in the stream's endianness.
// Exposed directly because the wire format's string and list-count-free
// cousins need an unsigned read without a signed reinterpretation.
func (s *Stream) ReadUint16() (uint16, error) {
	b, err := s.readFixed(2)
	if err != nil {
		return 0, err
	}
	return s.order().Uint16(b), nil
}

func (s *Stream) writeFixed(n int, fill func([]byte)) error {
	start, err := s.ensureWritable(n)
	if err != nil {
		return err
	}
	fill(s.buf[start : start+n])
	s.pos = start + n
	return nil
}

// WriteInt8 writes a signed 8-bit integer.
func (s *Stream) WriteInt8(v int8) error {
	return s.writeFixed(1, func(b []byte) { b[0] = byte(v) })
}

// WriteUint8 writes an unsigned 8-bit integer.
func (s *Stream) WriteUint8(v uint8) error {
	return s.writeFixed(1, func(b []byte) { b[0] = v })
}

// WriteInt16 writes a signed 16-bit integer in the stream's endianness.
func (s *Stream) WriteInt16(v int16) error {
	return s.writeFixed(2, func(b []byte) { s.order().PutUint16(b, uint16(v)) })
}

// WriteUint16 writes an unsigned 16-bit integer in the stream's endianness.
func (s *Stream) WriteUint16(v uint16) error {
	return s.writeFixed(2, func(b []byte) { s.order().PutUint16(b, v) })
}

// WriteInt32 writes a signed 32-bit integer in the stream's endianness.
func (s *Stream) WriteInt32(v int32) error {
	return s.writeFixed(4, func(b []byte) { s.order().PutUint32(b, uint32(v)) })
}

// WriteInt64 writes a signed 64-bit integer in the stream's endianness.
// Genuinely little-endian when the flag says so — see DESIGN.md for the
// source's apparent-typo fallback this corrects.
func (s *Stream) WriteInt64(v int64) error {
	return s.writeFixed(8, func(b []byte) { s.order().PutUint64(b, uint64(v)) })
}

// WriteFloat32 writes an IEEE-754 single-precision float, bit-exact.
func (s *Stream) WriteFloat32(v float32) error {
	return s.writeFixed(4, func(b []byte) { s.order().PutUint32(b, math.Float32bits(v)) })
}

// WriteFloat64 writes an IEEE-754 double-precision float, bit-exact.
func (s *Stream) WriteFloat64(v float64) error {
	return s.writeFixed(8, func(b []byte) { s.order().PutUint64(b, math.Float64bits(v)) })
}

// WriteString writes a uint16-length-prefixed UTF-8 string.
func (s *Stream) WriteString(v string) error {
	if len(v) > math.MaxUint16 {
		return nbterr.Rangef(int64(s.pos), "string length %d exceeds uint16 range", len(v))
	}
	if err := s.WriteUint16(uint16(len(v))); err != nil {
		return err
	}
	_, err := s.WriteBytes([]byte(v))
	return err
}
