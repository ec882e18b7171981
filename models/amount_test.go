package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want Cents
	}{
		{"0", 0},
		{"10", 1000},
		{"10.5", 1050},
		{"10.50", 1050},
		{"0.01", 1},
		{"0.1", 10},
		{"12345.67", 1234567},
		{" 5.00 ", 500},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseAmountRejectsInvalid(t *testing.T) {
	for _, in := range []string{
		"", "-1", "+1", "1.234", "abc", "1,50", "1.2.3", ".5", "1e2", "NaN", "1.-5",
	} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, in)
	}
}

func TestCentsString(t *testing.T) {
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "15.00", Cents(1500).String())
	assert.Equal(t, "15.30", Cents(1530).String())
	assert.Equal(t, "-1.25", Cents(-125).String())
}

func TestCentsJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Cents(1500))
	require.NoError(t, err)
	assert.Equal(t, "15.00", string(b))

	var c Cents
	require.NoError(t, json.Unmarshal([]byte("10.30"), &c))
	assert.Equal(t, Cents(1030), c)

	// quoted decimals are accepted too
	require.NoError(t, json.Unmarshal([]byte(`"2.50"`), &c))
	assert.Equal(t, Cents(250), c)

	assert.Error(t, json.Unmarshal([]byte("10.305"), &c))
	assert.Error(t, json.Unmarshal([]byte("-3"), &c))
}

// Summing cents never drifts the way floats do: 0.10 + 0.20 is exactly 0.30.
func TestCentsExactSum(t *testing.T) {
	a, err := ParseAmount("0.10")
	require.NoError(t, err)
	b, err := ParseAmount("0.20")
	require.NoError(t, err)
	assert.Equal(t, "0.30", (a + b).String())
}
