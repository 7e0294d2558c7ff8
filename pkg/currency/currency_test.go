package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSet_NormalizesAndDeduplicates(t *testing.T) {
	s := NewSet([]string{"inr", " USD ", "INR", "", "eur"})

	assert.Equal(t, []string{"INR", "USD", "EUR"}, s.Codes())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "INR", s.Default())
}

func TestSet_Contains(t *testing.T) {
	s := NewSet([]string{"INR", "USD"})

	tests := []struct {
		code string
		want bool
	}{
		{"INR", true},
		{"usd", true},
		{" inr ", true},
		{"EUR", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Contains(tt.code))
		})
	}
}

func TestSet_Empty(t *testing.T) {
	var s Set

	assert.False(t, s.Contains("USD"))
	assert.Equal(t, "", s.Default())
	assert.Empty(t, s.Codes())
}

func TestSet_CodesReturnsCopy(t *testing.T) {
	s := NewSet([]string{"INR", "USD"})

	codes := s.Codes()
	codes[0] = "XXX"

	assert.Equal(t, "INR", s.Default())
}
