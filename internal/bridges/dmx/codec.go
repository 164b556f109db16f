package dmx

import (
	"database/sql/driver"
	"math"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the dotted form.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// Both dotted and absolute forms are accepted. On error the receiver is left
// unchanged.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the dotted form as a
// string scalar.
func (a Address) MarshalYAML() (any, error) {
	return a.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
// The node must be a scalar. Quoted ("1.009") and bare integer (1024)
// scalars are both accepted:
//
//	fixtures:
//	  - name: front-wash
//	    address: "1.009"
//	  - name: back-wash
//	    address: 1024
func (a *Address) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return ErrInvalidAddress
	}
	return a.UnmarshalText([]byte(node.Value))
}

// Value implements driver.Valuer, storing the address as dotted TEXT.
func (a Address) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner.
//
// Accepts:
//   - string / []byte: dotted or absolute form
//   - int64: absolute index (INTEGER columns)
//
// NULL and any other type are rejected with ErrInvalidAddress.
func (a *Address) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		return a.UnmarshalText(v)
	case int64:
		if v < 0 || v > math.MaxUint32 {
			return ErrInvalidAddress
		}
		parsed, err := AddressFromAbsolute(uint32(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	default:
		return ErrInvalidAddress
	}
}
