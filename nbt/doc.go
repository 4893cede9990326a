// Package nbt implements NBT (Named Binary Tag), the hierarchical,
// length-prefixed, typed binary encoding originally devised for Minecraft
// world data.
//
// A Tag tree is built from 12 concrete variants (Byte, Short, Int, Long,
// Float, Double, ByteArray, String, List, Compound, IntArray, LongArray)
// dispatched through the Tag interface, plus an internal Unknown sentinel
// used only as the placeholder element type of a freshly-constructed empty
// List. Compound and List are the two containers: Compound holds uniquely
// named children, List holds an ordered, homogeneous sequence of unnamed
// children.
//
// File ties a root Compound to its on-disk representation, auto-detecting
// or explicitly selecting gzip/zlib compression framing.
//
// # Wire format
//
// Named tag: u8 tag_type | string name | payload
// Compound body: repeated named tags, terminated by a lone u8 0x00
// List body: u8 element_tag_type | i32 count | count × payload
// Array bodies: i32 count | count × element
// String: uint16 byte length (big/little per the stream's endianness),
// then that many UTF-8 bytes.
package nbt
