// Package wire owns the leaf codecs of the game protocol.
//
// Ownership boundary:
// - fixed-width big-endian primitives (integers, floats, UUIDs)
// - variable-length integers bounded by their declared width
// - length-prefixed UTF-8 strings
// - the read/write cursors every codec operation owns exclusively
package wire
