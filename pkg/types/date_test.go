package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2025-08-21")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-21", d.String())

	_, err = NewDateStringFromString("21/08/2025")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, err = NewDateStringFromString("2025-13-01")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDateString_AddDays(t *testing.T) {
	d := DateString("2025-08-30")

	next, err := d.AddDays(2)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-09-01"), next)

	prev, err := d.AddDays(-30)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-07-31"), prev)
}

func TestDateString_DaysUntil(t *testing.T) {
	start := DateString("2025-08-21")
	end := DateString("2025-08-27")

	nights, err := start.DaysUntil(end)
	require.NoError(t, err)
	assert.Equal(t, 6, nights)

	back, err := end.DaysUntil(start)
	require.NoError(t, err)
	assert.Equal(t, -6, back)
}

func TestDateString_Comparison(t *testing.T) {
	a := DateString("2025-08-21")
	b := DateString("2025-09-03")

	assert.True(t, a.IsBefore(b))
	assert.False(t, a.IsAfter(b))
	assert.False(t, a.IsBefore(a))

	assert.Equal(t, a, Min(a, b))
	assert.Equal(t, b, Max(a, b))
}

func TestNewDateString_DropsTimeOfDay(t *testing.T) {
	ts := time.Date(2025, 8, 21, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, DateString("2025-08-21"), NewDateString(ts))
}
