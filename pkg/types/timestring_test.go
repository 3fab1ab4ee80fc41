package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:15")
	require.NoError(t, err)
	assert.Equal(t, "09:15", ts.String())

	_, err = NewTimeStringFromString("9:15am")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("00:00").Validate())
	assert.NoError(t, TimeString("23:59").Validate())
	assert.Error(t, TimeString("24:00").Validate())
	assert.Error(t, TimeString("").Validate())
	assert.Error(t, TimeString("7:00").Validate())
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("07:00").IsBefore(TimeString("07:30")))
	assert.False(t, TimeString("07:30").IsBefore(TimeString("07:30")))
	assert.True(t, TimeString("08:00").IsAfter(TimeString("07:30")))
	assert.False(t, TimeString("07:30").IsAfter(TimeString("07:30")))
}
