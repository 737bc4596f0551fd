package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"bare digits", "9876543210", "9876543210", true},
		{"plus country code", "+919876543210", "9876543210", true},
		{"country code no plus", "919876543210", "9876543210", true},
		{"leading zero", "09876543210", "9876543210", true},
		{"spaces and dashes", "+91 98765-43210", "9876543210", true},
		{"too short", "12345", "", false},
		{"too long", "98765432101234", "", false},
		{"letters only", "abcdefghij", "", false},
		{"empty", "", "", false},
		// 91xxxxxxxx: 10 digits already, must not strip the 91.
		{"ten digits starting 91", "9198765432", "9198765432", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePhone(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhoneVariants(t *testing.T) {
	variants := PhoneVariants("9876543210")
	assert.Equal(t, []string{
		"9876543210",
		"+919876543210",
		"919876543210",
		"09876543210",
	}, variants)
}

func TestSyntheticEmail(t *testing.T) {
	assert.Equal(t, "9876543210@phone.local", SyntheticEmail("9876543210"))
}
