package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strip ltd",
			input:    "Kuda Bank Ltd",
			expected: "kuda bank",
		},
		{
			name:     "strip inc",
			input:    "Flutterwave Inc",
			expected: "flutterwave",
		},
		{
			name:     "strip chained suffixes in one pass",
			input:    "Moniepoint Nigeria Ltd",
			expected: "moniepoint",
		},
		{
			name:     "suffix only stripped as trailing token",
			input:    "Incorporated Systems",
			expected: "incorporated systems",
		},
		{
			name:     "bare suffix token survives",
			input:    "Ltd",
			expected: "ltd",
		},
		{
			name:     "special characters removed",
			input:    "Paga! (Payments)",
			expected: "paga payments",
		},
		{
			name:     "whitespace collapsed",
			input:    "  Andela   Talent  ",
			expected: "andela talent",
		},
		{
			name:     "unicode stripped",
			input:    "Café Séka",
			expected: "caf ska",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Name(tt.input))
		})
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "https with www and trailing slash",
			input:    "https://www.flutterwave.com/",
			expected: "flutterwave.com",
		},
		{
			name:     "http protocol variant",
			input:    "http://flutterwave.com",
			expected: "flutterwave.com",
		},
		{
			name:     "bare domain falls back to path",
			input:    "flutterwave.com",
			expected: "flutterwave.com",
		},
		{
			name:     "uppercase host lowered",
			input:    "https://WWW.Kuda.COM",
			expected: "kuda.com",
		},
		{
			name:     "port preserved",
			input:    "https://kuda.com:8443/",
			expected: "kuda.com:8443",
		},
		{
			name:     "malformed url degrades to empty",
			input:    "http://[::1%",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, URL(tt.input))
		})
	}
}

func TestURL_StableAcrossProtocolAndSlash(t *testing.T) {
	variants := []string{
		"https://www.paystack.com/",
		"http://www.paystack.com",
		"https://paystack.com",
		"http://paystack.com/",
	}
	for _, v := range variants {
		assert.Equal(t, "paystack.com", URL(v), "variant %q", v)
	}
}
