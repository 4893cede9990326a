// nbt - NBT document inspection CLI
//
// Usage:
//
//	nbt dump [--indent=STR] [--big-endian] [file]     Pretty-print a document's tree
//	nbt get [--big-endian] <file> <path>              Print one tag by dotted/indexed path
//	nbt recompress [--to=MODE] <src> <dst>             Re-save a document under a new compression
//
// MODE is one of: none, gzip, zlib. dump reads from stdin when no file is
// given; dump and get both read from stdin when the file is "-"
// (compression is still auto-detected).
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ipshing/nbt-go/nbt"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "dump":
		cmdDump(os.Args[2:])
	case "get":
		cmdGet(os.Args[2:])
	case "recompress":
		cmdRecompress(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "nbt: unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `nbt - NBT document inspection CLI

Usage:
  nbt dump [flags] [file]            Pretty-print a document's tree
  nbt get [flags] <file> <path>      Print one tag by dotted/indexed path
  nbt recompress [flags] <src> <dst> Re-save a document under a new compression

dump reads from stdin when given no file; dump and get read from stdin
when the file is "-".

Examples:
  nbt dump level.dat
  nbt get level.dat Data.Player.Health
  nbt recompress --to=zlib level.dat level.dat.zlib
`)
}

func cmdDump(argv []string) {
	fs := pflag.NewFlagSet("dump", pflag.ExitOnError)
	indent := fs.String("indent", nbt.DefaultIndent, "indentation unit for nested tags")
	bigEndian := fs.Bool("big-endian", true, "interpret the payload as big-endian")
	fatalIf(fs.Parse(argv))

	f := loadFileOrStdin(fs.Args(), *bigEndian)
	saved := nbt.DefaultIndent
	nbt.DefaultIndent = *indent
	defer func() { nbt.DefaultIndent = saved }()
	fmt.Println(f.PrettyPrint())
}

func cmdGet(argv []string) {
	fs := pflag.NewFlagSet("get", pflag.ExitOnError)
	bigEndian := fs.Bool("big-endian", true, "interpret the payload as big-endian")
	fatalIf(fs.Parse(argv))

	args := fs.Args()
	if len(args) != 2 {
		fatal("get: usage: nbt get [flags] <file> <path>")
	}
	f := loadFileOrStdin(args[:1], *bigEndian)
	tag := findByPath(f.Root(), args[1])
	if tag == nil {
		fatal("get: no tag at path %q", args[1])
	}
	fmt.Println(tag.PrettyPrint(nbt.DefaultIndent, 0))
}

func cmdRecompress(argv []string) {
	fs := pflag.NewFlagSet("recompress", pflag.ExitOnError)
	to := fs.String("to", "gzip", "target compression: none, gzip, or zlib")
	bigEndian := fs.Bool("big-endian", true, "interpret the payload as big-endian")
	fatalIf(fs.Parse(argv))

	args := fs.Args()
	if len(args) != 2 {
		fatal("recompress: usage: nbt recompress [flags] <src> <dst>")
	}
	target, err := parseCompressionName(*to)
	if err != nil {
		fatal("recompress: %v", err)
	}

	f, err := nbt.DecodeFromPath(args[0], nbt.DecodeOptions{
		Compression: nbt.CompressionAutoDetect,
		BigEndian:   *bigEndian,
	})
	if err != nil {
		fatal("recompress: load %s: %v", args[0], err)
	}
	if err := f.SaveToPathWithCompression(args[1], target); err != nil {
		fatal("recompress: save %s: %v", args[1], err)
	}
}

func loadFileOrStdin(args []string, bigEndian bool) *nbt.File {
	opts := nbt.DecodeOptions{Compression: nbt.CompressionAutoDetect, BigEndian: bigEndian}
	if len(args) == 1 && args[0] != "-" {
		f, err := nbt.DecodeFromPath(args[0], opts)
		if err != nil {
			fatal("load %s: %v", args[0], err)
		}
		return f
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}
	f, err := nbt.Decode(data, opts)
	if err != nil {
		fatal("decode stdin: %v", err)
	}
	return f
}

func parseCompressionName(s string) (nbt.Compression, error) {
	switch strings.ToLower(s) {
	case "none":
		return nbt.CompressionNone, nil
	case "gzip":
		return nbt.CompressionGzip, nil
	case "zlib":
		return nbt.CompressionZlib, nil
	default:
		return 0, fmt.Errorf("unknown compression mode %q (want none, gzip, or zlib)", s)
	}
}

// findByPath walks a dotted/indexed path like "Data.Player.Inventory[2]"
// starting from root, which is itself addressed by its own name.
func findByPath(root *nbt.Compound, path string) nbt.Tag {
	var cur nbt.Tag = root
	segs := splitPath(path)
	if rootName, _ := root.Name(); rootName != "" {
		if segs[0].name != rootName {
			return nil
		}
		segs[0].name = "" // the root itself, already in cur
	}
	for _, seg := range segs {
		name, index, hasIndex := seg.name, seg.index, seg.hasIndex
		if name != "" {
			c, ok := cur.(*nbt.Compound)
			if !ok {
				return nil
			}
			cur = c.Get(name)
			if cur == nil {
				return nil
			}
		}
		if hasIndex {
			l, ok := cur.(*nbt.List)
			if !ok {
				return nil
			}
			t, err := l.At(index)
			if err != nil {
				return nil
			}
			cur = t
		}
	}
	return cur
}

type pathSegment struct {
	name     string
	index    int
	hasIndex bool
}

// splitPath turns "Data.Player.Inventory[2]" into segments, each carrying
// an optional name lookup and an optional trailing index lookup.
func splitPath(path string) []pathSegment {
	var segs []pathSegment
	for _, part := range strings.Split(path, ".") {
		seg := pathSegment{}
		if i := strings.IndexByte(part, '['); i >= 0 && strings.HasSuffix(part, "]") {
			seg.name = part[:i]
			fmt.Sscanf(part[i+1:len(part)-1], "%d", &seg.index)
			seg.hasIndex = true
		} else {
			seg.name = part
		}
		segs = append(segs, seg)
	}
	return segs
}

func fatalIf(err error) {
	if err != nil {
		fatal("%v", err)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "nbt: "+format+"\n", args...)
	os.Exit(1)
}
