package placeip

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidKey is the reserved key 255.255.255.255. Out-of-range numeric
// queries clamp to it and FormatIPv4 renders it as "INVALID".
const InvalidKey = ^uint32(0)

// ParseIPv4 converts a dotted-decimal IPv4 string into its 32-bit key, the
// first octet landing in the most significant byte.
func ParseIPv4(s string) (uint32, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 4 {
		return 0, fmt.Errorf("placeip: %q is not a dotted-decimal IPv4 address", s)
	}

	var key uint32
	for _, part := range parts {
		octet, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("placeip: bad octet %q in %q", part, s)
		}
		key = key<<8 | uint32(octet)
	}
	return key, nil
}

// FormatIPv4 converts a 32-bit key back to dotted-decimal form. InvalidKey
// formats as "INVALID".
func FormatIPv4(key uint32) string {
	if key == InvalidKey {
		return "INVALID"
	}
	return fmt.Sprintf("%d.%d.%d.%d", byte(key>>24), byte(key>>16), byte(key>>8), byte(key))
}

// ParseQuery converts a user query into a key. Queries containing a dot are
// parsed as dotted-decimal addresses, anything else as a decimal number.
//
// A decimal query outside the signed 64-bit range clamps the key to
// InvalidKey; the returned error wraps strconv.ErrRange and the key is
// still usable, so callers may treat it as a warning and query anyway.
func ParseQuery(q string) (uint32, error) {
	q = strings.TrimSpace(q)

	if strings.Contains(q, ".") {
		return ParseIPv4(q)
	}

	raw, err := strconv.ParseInt(q, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return InvalidKey, fmt.Errorf("placeip: key %q is out of range: %w", q, strconv.ErrRange)
		}
		return 0, fmt.Errorf("placeip: %q is not a number or an IPv4 address", q)
	}

	return uint32(raw), nil
}
