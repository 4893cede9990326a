package nbt

import (
	"errors"
	"testing"

	"github.com/ipshing/nbt-go/nbterr"
)

func TestDetectCompressionFromLeadingByte(t *testing.T) {
	tests := []struct {
		name   string
		first  byte
		want   Compression
		errant bool
	}{
		{"compound tag byte means none", byte(TagCompound), CompressionNone, false},
		{"gzip magic", 0x1F, CompressionGzip, false},
		{"zlib magic", 0x78, CompressionZlib, false},
		{"unrecognized byte", 0x42, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detectCompression([]byte{tt.first, 0, 0})
			if tt.errant {
				if !errors.Is(err, nbterr.Format) {
					t.Errorf("expected FormatError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("detectCompression = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectCompressionEmptyInputFails(t *testing.T) {
	if _, err := detectCompression(nil); !errors.Is(err, nbterr.Format) {
		t.Errorf("expected FormatError for empty input, got %v", err)
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog, repeated for compressibility")
	for _, c := range []Compression{CompressionNone, CompressionGzip, CompressionZlib} {
		t.Run(c.String(), func(t *testing.T) {
			packed, err := compress(payload, c)
			if err != nil {
				t.Fatal(err)
			}
			unpacked, err := decompress(packed, c)
			if err != nil {
				t.Fatal(err)
			}
			if string(unpacked) != string(payload) {
				t.Errorf("round trip mismatch for %v", c)
			}
		})
	}
}

func TestEncodeRejectsAutoDetect(t *testing.T) {
	if _, err := compress([]byte("x"), CompressionAutoDetect); !errors.Is(err, nbterr.Range) {
		t.Errorf("expected RangeError, got %v", err)
	}
}
