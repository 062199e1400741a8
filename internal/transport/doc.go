// Package transport moves framed packets over a byte stream.
//
// Ownership boundary:
// - varint length-prefixed frames (uncompressed framing)
// - frame size limits
// - connection deadlines and dial retry/backoff
//
// Compression and encryption are not handled here.
package transport
