package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		amount   float64
		currency string
		ok       bool
	}{
		{
			name:     "dollar millions",
			input:    "The startup raised $3.2 million in seed funding",
			amount:   3_200_000,
			currency: "usd",
			ok:       true,
		},
		{
			name:     "dollar short form",
			input:    "secured a $10m round",
			amount:   10_000_000,
			currency: "usd",
			ok:       true,
		},
		{
			name:     "dollar billions",
			input:    "valued after raising $1.5 billion",
			amount:   1_500_000_000,
			currency: "usd",
			ok:       true,
		},
		{
			name:     "dollar thousands",
			input:    "won $500k in prize money",
			amount:   500_000,
			currency: "usd",
			ok:       true,
		},
		{
			name:     "spelled out millions of dollars",
			input:    "raised 7 million dollars from investors",
			amount:   7_000_000,
			currency: "usd",
			ok:       true,
		},
		{
			name:     "spelled out billions of dollars",
			input:    "a 2 billion usd fund",
			amount:   2_000_000_000,
			currency: "usd",
			ok:       true,
		},
		{
			name:     "naira symbol",
			input:    "raised ₦500 million from local investors",
			amount:   500_000_000,
			currency: "ngn",
			ok:       true,
		},
		{
			name:     "ngn prefix",
			input:    "a NGN 2.5 billion facility",
			amount:   2_500_000_000,
			currency: "ngn",
			ok:       true,
		},
		{
			name:  "undisclosed",
			input: "raised an undisclosed amount",
			ok:    false,
		},
		{
			name:  "no amount",
			input: "the company launched a new product",
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
			amount, currency, ok := ParseAmount(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.amount, amount)
				assert.Equal(t, tt.currency, currency)
			}
		})
	}
}

func TestRoundType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"closed a pre-seed round last week", "pre-seed"},
		{"announced its seed round today", "seed"},
		{"closed a Series A led by", "series_a"},
		{"a series-b extension", "series_b"},
		{"series C financing", "series_c"},
		{"received a grant from the foundation", "grant"},
		{"took on debt financing", "debt"},
		{"raises fresh capital", "seed"}, // raise with no named round defaults to seed
		{"a quiet product launch", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RoundType(tt.input), "input %q", tt.input)
	}
}
