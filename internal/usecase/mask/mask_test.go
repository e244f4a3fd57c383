package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayoutDetails(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  string
	}{
		{"empty stays empty", "", ""},
		{"one char", "a", "****"},
		{"two chars", "ab", "****"},
		{"four chars", "1234", "****"},
		{"five chars", "12345", "12****45"},
		{"card number", "4111111111111111", "41****11"},
		{"phone", "+79990001122", "+7****22"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			masked := PayoutDetails(map[string]string{"field": tc.value})
			assert.Equal(t, tc.want, masked["field"])
		})
	}
}

func TestPayoutDetails_NilMap(t *testing.T) {
	masked := PayoutDetails(nil)
	assert.NotNil(t, masked)
	assert.Empty(t, masked)
}
