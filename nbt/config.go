package nbt

// DefaultBigEndian is the process-wide default endianness for newly
// constructed Files. It is read once, at construction time, and never
// consulted again by an already-built File — mutate it for test harness
// convenience, not as a way to retroactively change an existing File's
// wire format. The on-disk NBT convention is big-endian.
var DefaultBigEndian = true
