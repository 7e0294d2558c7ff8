package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		want *time.Location
	}{
		{"", time.Local},
		{"Local", time.Local},
		{"utc", time.UTC},
		{"WIB", WIB},
		{"UTC+8", WITA},
		{"wit", WIT},
		{"IST", IST},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc)
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	_, err := Resolve("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestClock_Today(t *testing.T) {
	c := NewClock(WIB)
	c.Now = func() time.Time {
		// 2025-03-01 20:30 UTC is already 2025-03-02 in WIB.
		return time.Date(2025, 3, 1, 20, 30, 0, 0, time.UTC)
	}

	today := c.Today()
	assert.Equal(t, "2025-03-02", FormatDate(today))
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, WIB, today.Location())
	assert.Equal(t, 3, c.Current().Hour())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2025-03-01 ", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/03/2025", time.UTC)
	assert.Error(t, err)
}
