package nbt

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/ipshing/nbt-go/nbterr"
)

// Compression selects the whole-buffer framing wrapped around an encoded
// root Compound.
type Compression int

const (
	// CompressionNone writes/reads the raw NBT bytes with no framing.
	CompressionNone Compression = iota
	// CompressionGzip wraps the NBT bytes in a gzip (RFC 1952) stream.
	CompressionGzip
	// CompressionZlib wraps the NBT bytes in a zlib (RFC 1950) stream.
	CompressionZlib
	// CompressionAutoDetect is only meaningful when decoding: it tells
	// Decode to infer framing from the input's first byte. Passing it to
	// SaveWithCompression is a RangeError (§4.5).
	CompressionAutoDetect
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZlib:
		return "Zlib"
	case CompressionAutoDetect:
		return "AutoDetect"
	default:
		return "Compression(?)"
	}
}

// detectCompression inspects data's first byte per §4.5: 0x0A means no
// compression (it's the Compound tag-type byte), 0x1F means gzip, 0x78
// means zlib; anything else can't be classified.
func detectCompression(data []byte) (Compression, error) {
	if len(data) == 0 {
		return 0, nbterr.Formatf(0, "cannot auto-detect compression: empty input")
	}
	switch data[0] {
	case byte(TagCompound):
		return CompressionNone, nil
	case 0x1F:
		return CompressionGzip, nil
	case 0x78:
		return CompressionZlib, nil
	default:
		return 0, nbterr.Formatf(0, "cannot auto-detect compression: unrecognized leading byte 0x%02X", data[0])
	}
}

// decompress returns data decompressed per c, or data unchanged for
// CompressionNone. c must not be CompressionAutoDetect.
func decompress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionGzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, nbterr.Wrap(nbterr.KindFormat, 0, err, "gzip: invalid stream")
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, nbterr.Wrap(nbterr.KindFormat, 0, err, "gzip: decompress failed")
		}
		return out, nil
	case CompressionZlib:
		r, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, nbterr.Wrap(nbterr.KindFormat, 0, err, "zlib: invalid stream")
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, nbterr.Wrap(nbterr.KindFormat, 0, err, "zlib: decompress failed")
		}
		return out, nil
	default:
		return nil, nbterr.Rangef(-1, "unresolved compression mode %v", c)
	}
}

// compress returns data compressed per c. c must not be
// CompressionAutoDetect — File.encode rejects that earlier with a RangeError.
func compress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionGzip:
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, nbterr.Wrap(nbterr.KindFormat, -1, err, "gzip: compress failed")
		}
		if err := w.Close(); err != nil {
			return nil, nbterr.Wrap(nbterr.KindFormat, -1, err, "gzip: compress failed")
		}
		return buf.Bytes(), nil
	case CompressionZlib:
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, nbterr.Wrap(nbterr.KindFormat, -1, err, "zlib: compress failed")
		}
		if err := w.Close(); err != nil {
			return nil, nbterr.Wrap(nbterr.KindFormat, -1, err, "zlib: compress failed")
		}
		return buf.Bytes(), nil
	default:
		return nil, nbterr.Rangef(-1, "AutoDetect is not a valid compression mode for encoding")
	}
}
