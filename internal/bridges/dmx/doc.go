// Package dmx implements DMX512 addressing for Gray Logic lighting control.
//
// A DMX512 address identifies one channel (slot) on one universe. Gray Logic
// accepts two textual notations for the same address and stores all three
// canonical fields together so callers never need to recompute them.
//
// # Notation
//
//   - Dotted form:   "<universe>.<channel>" (e.g., "1.511", "3.210")
//   - Absolute form: "<absolute>"           (e.g., "1024", "1234")
//
// Universes are numbered from 1 to 63999 (the sACN maximum) and channels from
// 1 to 512. The absolute index flattens both:
//
//	absolute = channel + (universe-1)*512
//
// Counting is 1-based in every field, so absolute 512 is the last channel of
// universe 1 ("1.512"), and absolute 513 is the first channel of universe 2
// ("2.001").
//
// # Usage
//
//	addr, err := dmx.ParseAddress("1.511")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(addr.Absolute) // 511
//	fmt.Println(addr)          // "1.511"
//
// Address also implements encoding.TextUnmarshaler, yaml.Unmarshaler and
// sql.Scanner, so it can be used directly as a field in JSON or YAML
// documents and as a database column. All of them go through ParseAddress.
//
// # Errors
//
// Every rejected input yields ErrInvalidAddress. The error deliberately
// carries no detail about which rule failed; compare with errors.Is.
//
// # Thread Safety
//
// Address is an immutable value type and is safe to share between goroutines.
// The package holds no state.
package dmx
