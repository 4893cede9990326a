// nbtbench - NBT encode/decode benchmark runner
//
// Generates a small corpus of synthetic documents of increasing size and
// shape, round-trips each through Encode/Decode under every compression
// mode, and reports timing and size.
//
// Output: CSV and markdown summary.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/ipshing/nbt-go/nbt"
)

type caseResult struct {
	Name          string
	Compression   string
	RawBytes      int
	EncodedBytes  int
	EncodeElapsed time.Duration
	DecodeElapsed time.Duration
}

func main() {
	cases := buildCorpus()
	compressions := []nbt.Compression{nbt.CompressionNone, nbt.CompressionGzip, nbt.CompressionZlib}

	fmt.Fprintf(os.Stderr, "NBT Benchmark Runner\n")
	fmt.Fprintf(os.Stderr, "=====================\n")
	fmt.Fprintf(os.Stderr, "Corpus: %d synthetic documents x %d compression modes\n\n", len(cases), len(compressions))

	var results []caseResult
	for _, c := range cases {
		raw := c.encodeRaw()
		for _, comp := range compressions {
			start := time.Now()
			encoded, err := c.file.SaveWithCompression(comp)
			encodeElapsed := time.Since(start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "skip %s/%s: encode error: %v\n", c.name, comp, err)
				continue
			}

			start = time.Now()
			_, err = nbt.Decode(encoded, nbt.DecodeOptions{Compression: comp, BigEndian: true})
			decodeElapsed := time.Since(start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "skip %s/%s: decode error: %v\n", c.name, comp, err)
				continue
			}

			results = append(results, caseResult{
				Name:          c.name,
				Compression:   comp.String(),
				RawBytes:      len(raw),
				EncodedBytes:  len(encoded),
				EncodeElapsed: encodeElapsed,
				DecodeElapsed: decodeElapsed,
			})
		}
	}

	csvPath := "nbtbench_results.csv"
	if f, err := os.Create(csvPath); err == nil {
		writeCSV(f, results)
		f.Close()
		fmt.Fprintf(os.Stderr, "CSV written to: %s\n", csvPath)
	}

	mdPath := "NBTBENCH.md"
	if f, err := os.Create(mdPath); err == nil {
		writeMarkdown(f, results)
		f.Close()
		fmt.Fprintf(os.Stderr, "Markdown written to: %s\n", mdPath)
	}

	fmt.Printf("\n=== SUMMARY ===\n")
	fmt.Printf("Cases run: %d\n", len(results))
}

type benchCase struct {
	name string
	file *nbt.File
}

func (c benchCase) encodeRaw() []byte {
	raw, err := c.file.SaveWithCompression(nbt.CompressionNone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warn: %s: %v\n", c.name, err)
		return nil
	}
	return raw
}

// buildCorpus assembles a handful of synthetic documents spanning the
// scalar, array, string, and container shapes NBT carries, at increasing
// sizes, so the benchmark exercises more than one code path.
func buildCorpus() []benchCase {
	return []benchCase{
		{"empty-root", emptyRoot()},
		{"flat-scalars", flatScalars(64)},
		{"nested-compounds", nestedCompounds(6, 4)},
		{"long-list", longList(10_000)},
		{"byte-array", byteArrayDoc(1 << 20)},
	}
}

func emptyRoot() *nbt.File {
	return nbt.NewFile("root")
}

func flatScalars(n int) *nbt.File {
	f := nbt.NewFile("root")
	for i := 0; i < n; i++ {
		_ = f.Root().Add(nbt.NewIntWithNameAndValue(fmt.Sprintf("field_%d", i), int32(i*31)))
	}
	return f
}

func nestedCompounds(depth, breadth int) *nbt.File {
	f := nbt.NewFile("root")
	var attach func(parent *nbt.Compound, level int)
	attach = func(parent *nbt.Compound, level int) {
		if level == 0 {
			return
		}
		for i := 0; i < breadth; i++ {
			child := nbt.NewCompoundWithName(fmt.Sprintf("level%d_child%d", level, i))
			_ = child.Add(nbt.NewStringWithNameAndValue("label", fmt.Sprintf("node-%d-%d", level, i)))
			_ = parent.Add(child)
			attach(child, level-1)
		}
	}
	attach(f.Root(), depth)
	return f
}

func longList(n int) *nbt.File {
	f := nbt.NewFile("root")
	list := nbt.NewListOfType(nbt.TagInt)
	for i := 0; i < n; i++ {
		_ = list.Push(nbt.NewIntWithValue(int32(i)))
	}
	_ = list.SetName("values")
	_ = f.Root().Add(list)
	return f
}

func byteArrayDoc(n int) *nbt.File {
	f := nbt.NewFile("root")
	data := make([]int8, n)
	for i := range data {
		data[i] = int8(i)
	}
	_ = f.Root().Add(nbt.NewByteArrayWithNameAndValue("payload", data))
	return f
}

func writeCSV(w io.Writer, results []caseResult) {
	fmt.Fprintln(w, "name,compression,raw_bytes,encoded_bytes,encode_us,decode_us")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%s,%d,%d,%d,%d\n",
			r.Name, r.Compression, r.RawBytes, r.EncodedBytes,
			r.EncodeElapsed.Microseconds(), r.DecodeElapsed.Microseconds())
	}
}

func writeMarkdown(w io.Writer, results []caseResult) {
	fmt.Fprintf(w, "# NBT Benchmark Results\n\n")
	fmt.Fprintf(w, "| Case | Compression | Raw Bytes | Encoded Bytes | Encode (us) | Decode (us) |\n")
	fmt.Fprintf(w, "|------|-------------|-----------|----------------|-------------|-------------|\n")

	sorted := make([]caseResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].Compression < sorted[j].Compression
	})

	for _, r := range sorted {
		fmt.Fprintf(w, "| %s | %s | %d | %d | %d | %d |\n",
			r.Name, r.Compression, r.RawBytes, r.EncodedBytes,
			r.EncodeElapsed.Microseconds(), r.DecodeElapsed.Microseconds())
	}
}
