package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		ok       bool
	}{
		{
			name:     "rfc3339 publish time",
			input:    "2024-03-15T09:30:00+01:00",
			expected: time.Date(2024, 3, 15, 9, 30, 0, 0, time.FixedZone("", 3600)),
			ok:       true,
		},
		{
			name:     "plain date",
			input:    "2024-03-15",
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "long form",
			input:    "March 15, 2024",
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "day first",
			input:    "15 March 2024",
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:     "bare year falls back to january 1",
			input:    "founded in 2019",
			expected: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		{
			name:  "implausible year",
			input: "error 1604",
			ok:    false,
		},
		{
			name:  "no date",
			input: "no date here",
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(got), "want %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestYear(t *testing.T) {
	assert.Equal(t, 2019, Year("the company was founded in 2019 in Lagos"))
	assert.Equal(t, 1998, Year("established 1998"))
	assert.Equal(t, 0, Year("raised 2050000 dollars in 1604"))
	assert.Equal(t, 0, Year("no year"))
}

func TestFoundedYear(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "founded in",
			input:    "The startup was founded in 2019 in Lagos.",
			expected: 2019,
		},
		{
			name:     "launched with month",
			input:    "Kuda launched in June 2020 with a banking license.",
			expected: 2020,
		},
		{
			name:     "founded by someone in",
			input:    "Paystack, founded by Shola Akinlade in 2015, processes payments.",
			expected: 2015,
		},
		{
			name: "publication date before founding sentence",
			input: "Published March 3, 2024. The fintech, which was founded in 2019, " +
				"raised new funding this week.",
			expected: 2019,
		},
		{
			name:     "bare publication year is not a founding year",
			input:    "Published March 3, 2024. The company raised $5 million.",
			expected: 0,
		},
		{
			name:     "implausible year",
			input:    "founded in 1604",
			expected: 0,
		},
		{
			name:     "no year",
			input:    "founded in Lagos by two engineers",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FoundedYear(tt.input))
		})
	}
}
