package dmx

import (
	"fmt"
	"strconv"
	"strings"
)

// Address represents a DMX512 address.
//
// Fields:
//   - Universe: 1-63999
//   - Channel:  1-512 (slot within the universe)
//   - Absolute: 1-32767488, always Channel + (Universe-1)*512
//
// Addresses returned by this package always satisfy the absolute invariant.
// Compare with ==.
type Address struct {
	Universe uint16
	Channel  uint16
	Absolute uint32
}

// DMX512 limits.
const (
	// UniverseSize is the number of channels in one universe.
	UniverseSize = 512

	// MaxUniverse is the highest universe number supported by sACN.
	MaxUniverse = 63999

	// MaxChannel is the highest channel number within a universe.
	MaxChannel = UniverseSize

	// MaxAbsolute is the absolute index of channel 512 on MaxUniverse.
	MaxAbsolute = MaxUniverse * UniverseSize

	// separator splits universe and channel in dotted form.
	separator = "."

	// dottedPartCount is the number of parts in dotted form.
	dottedPartCount = 2
)

// ParseAddress parses a DMX address in dotted or absolute form.
//
// Accepts formats:
//   - "1.511"  — universe.channel
//   - "1024"   — absolute index
//
// Each number may carry a single leading '+'. Surrounding whitespace, '-'
// and any other non-digit content are rejected.
//
// Parameters:
//   - s: Address string
//
// Returns:
//   - Address: Parsed address
//   - error: ErrInvalidAddress if parsing or validation fails
//
// Example:
//
//	addr, err := ParseAddress("2.001")
//	if err != nil {
//	    return err
//	}
//	// addr == Address{Universe: 2, Channel: 1, Absolute: 513}
func ParseAddress(s string) (Address, error) {
	if !strings.Contains(s, separator) {
		absolute, err := parseNumber(s)
		if err != nil {
			return Address{}, ErrInvalidAddress
		}
		return AddressFromAbsolute(uint32(absolute))
	}

	parts := strings.Split(s, separator)
	if len(parts) != dottedPartCount {
		return Address{}, ErrInvalidAddress
	}

	universe, err := parseNumber(parts[0])
	if err != nil || universe == 0 {
		return Address{}, ErrInvalidAddress
	}

	channel, err := parseNumber(parts[1])
	if err != nil {
		return Address{}, ErrInvalidAddress
	}

	// Computed before range checks; both operands fit in 32 bits so the
	// 64-bit product cannot wrap.
	absolute := channel + (universe-1)*UniverseSize

	return newValidated(universe, channel, absolute)
}

// parseNumber parses a base-10 unsigned 32-bit number, allowing one
// leading '+'.
func parseNumber(s string) (uint64, error) {
	digits, _ := strings.CutPrefix(s, "+")
	return strconv.ParseUint(digits, 10, 32)
}

// MustParseAddress is like ParseAddress but panics if the address is invalid.
// It is intended for package-level variables and tests.
func MustParseAddress(s string) Address {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(fmt.Sprintf("dmx: MustParseAddress(%q): %v", s, err))
	}
	return addr
}

// NewAddress creates an Address from a universe and channel.
//
// Parameters:
//   - universe: 1-63999
//   - channel:  1-512
//
// Returns:
//   - Address: Address with Absolute computed
//   - error: ErrInvalidAddress if either value is out of range
func NewAddress(universe, channel uint16) (Address, error) {
	u, c := uint64(universe), uint64(channel)
	if u == 0 {
		return Address{}, ErrInvalidAddress
	}
	return newValidated(u, c, c+(u-1)*UniverseSize)
}

// AddressFromAbsolute creates an Address from an absolute channel index.
//
// A remainder of zero modulo 512 is the last channel of the preceding
// universe: 512 is "1.512", not "2.000".
//
// Parameters:
//   - absolute: Absolute index (1-32767488)
//
// Returns:
//   - Address: Decoded address
//   - error: ErrInvalidAddress if the index is out of range
func AddressFromAbsolute(absolute uint32) (Address, error) {
	abs := uint64(absolute)

	channel := abs % UniverseSize
	universe := abs/UniverseSize + 1
	if channel == 0 {
		channel = MaxChannel
		universe = abs / UniverseSize
	}

	return newValidated(universe, channel, abs)
}

// newValidated applies the range checks shared by every constructor.
func newValidated(universe, channel, absolute uint64) (Address, error) {
	if universe == 0 || universe > MaxUniverse {
		return Address{}, ErrInvalidAddress
	}
	if channel == 0 || channel > MaxChannel {
		return Address{}, ErrInvalidAddress
	}

	return Address{
		Universe: uint16(universe), //nolint:gosec // bounded by MaxUniverse
		Channel:  uint16(channel),  //nolint:gosec // bounded by MaxChannel
		Absolute: uint32(absolute), //nolint:gosec // bounded by MaxAbsolute once universe and channel are
	}, nil
}

// String returns the address in dotted form with a 3-digit channel.
//
// Example: "1.009", "12.512"
func (a Address) String() string {
	return fmt.Sprintf("%d.%03d", a.Universe, a.Channel)
}

// IsValid returns true if the fields are in range and Absolute matches
// Universe and Channel. The zero Address is not valid.
func (a Address) IsValid() bool {
	if a.Universe == 0 || a.Universe > MaxUniverse {
		return false
	}
	if a.Channel == 0 || a.Channel > MaxChannel {
		return false
	}
	return a.Absolute == uint32(a.Channel)+(uint32(a.Universe)-1)*UniverseSize
}
