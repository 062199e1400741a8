package protocol

import "errors"

var (
	ErrUnreadableFrame = errors.New("protocol: unreadable frame")
	ErrTrailingData    = errors.New("protocol: trailing data after packet body")
	ErrNilPacket       = errors.New("protocol: nil packet")
)
