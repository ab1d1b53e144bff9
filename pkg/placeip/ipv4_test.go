package placeip

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseIPv4 verifies dotted-decimal conversion, first octet in the most
// significant byte.
func TestParseIPv4(t *testing.T) {
	testCases := []struct {
		in       string
		expected uint32
	}{
		{"0.0.0.0", 0},
		{"1.0.0.0", 16777216},
		{"10.0.0.1", 0x0A000001},
		{"192.168.1.1", 0xC0A80101},
		{"255.255.255.254", 0xFFFFFFFE},
	}

	for _, tc := range testCases {
		key, err := ParseIPv4(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, key, "Conversion of %s", tc.in)
	}
}

// TestParseIPv4Rejects verifies malformed addresses fail.
func TestParseIPv4Rejects(t *testing.T) {
	for _, in := range []string{"", "1.2.3", "1.2.3.4.5", "256.0.0.1", "a.b.c.d", "1..2.3"} {
		_, err := ParseIPv4(in)
		assert.Error(t, err, "%q should not parse", in)
	}
}

// TestFormatIPv4 verifies the reverse conversion and the INVALID sentinel.
func TestFormatIPv4(t *testing.T) {
	assert.Equal(t, "0.0.0.0", FormatIPv4(0))
	assert.Equal(t, "1.0.0.0", FormatIPv4(16777216))
	assert.Equal(t, "192.168.1.1", FormatIPv4(0xC0A80101))
	assert.Equal(t, "INVALID", FormatIPv4(InvalidKey), "255.255.255.255 is the reserved invalid key")
}

// TestParseFormatRoundTrip verifies the two conversions invert each other
// for every non-reserved key shape.
func TestParseFormatRoundTrip(t *testing.T) {
	for _, key := range []uint32{0, 1, 0x0A000001, 0x7F000001, 0xC0A80101, 0xFFFFFFFE} {
		parsed, err := ParseIPv4(FormatIPv4(key))
		assert.NoError(t, err)
		assert.Equal(t, key, parsed)
	}
}

// TestParseQuery verifies both query forms and the range clamping.
func TestParseQuery(t *testing.T) {
	key, err := ParseQuery("16777216")
	assert.NoError(t, err)
	assert.Equal(t, uint32(16777216), key, "Plain numbers parse as decimal keys")

	key, err = ParseQuery("1.0.0.0")
	assert.NoError(t, err)
	assert.Equal(t, uint32(16777216), key, "Dotted queries parse as addresses")

	key, err = ParseQuery(" 42 ")
	assert.NoError(t, err)
	assert.Equal(t, uint32(42), key, "Surrounding whitespace is ignored")

	_, err = ParseQuery("not-a-query")
	assert.Error(t, err, "Garbage should not parse")
}

// TestParseQueryOutOfRange verifies that an overflowing number clamps to
// InvalidKey while reporting a range warning the caller can choose to
// ignore.
func TestParseQueryOutOfRange(t *testing.T) {
	key, err := ParseQuery("99999999999999999999")
	assert.ErrorIs(t, err, strconv.ErrRange, "Overflow should surface as a range error")
	assert.Equal(t, InvalidKey, key, "The clamped key must still be usable")
}
