package dmx

import "errors"

// ErrInvalidAddress is returned when a DMX address cannot be parsed or is
// outside the valid universe/channel ranges.
//
// It is returned unwrapped for every rejection cause.
var ErrInvalidAddress = errors.New("dmx: invalid address")
