// Package protocol owns the packet envelope.
//
// Ownership boundary:
// - the varint packet type tag in front of every body
// - packet marshal/unmarshal through a phase pool
// - codec metrics
//
// Packet shapes live in packet, field composition in layout and the leaf
// codecs in wire. Framing below the packet boundary belongs to transport.
package protocol
