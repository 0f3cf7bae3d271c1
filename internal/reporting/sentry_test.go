package reporting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no-op",
			input:    "failed to decode save",
			expected: "failed to decode save",
		},
		{
			name:     "dashed uuid",
			input:    "slot 01234567-89ab-cdef-0123-456789abcdef not found",
			expected: "slot <uuid> not found",
		},
		{
			name:     "stripped uuid",
			input:    "slot 0123456789abcdef0123456789abcdef not found",
			expected: "slot <uuid> not found",
		},
		{
			name:     "host and port",
			input:    "dial tcp [::1]:5432: connection refused",
			expected: "dial tcp <host>: connection refused",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, sanitizeError(tc.input))
		})
	}
}
