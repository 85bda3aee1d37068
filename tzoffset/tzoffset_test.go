package tzoffset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString_EquivalentForms(t *testing.T) {
	// All compact shapes of the same offset decode to the same minutes.
	for _, s := range []string{"-04:33", "-4:33", "-0433", "-433"} {
		off, err := FromString(s)
		require.NoError(t, err, s)
		assert.Equal(t, -(4*60 + 33), off.Minutes, s)
		assert.Equal(t, s, off.Name, "name defaults to the input string")
	}
}

func TestFromString(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"830", 8*60 + 30},
		{"0830", 8*60 + 30},
		{"8:30", 8*60 + 30},
		{"08:30", 8*60 + 30},
		{"+08:30", 8*60 + 30},
		{"000", 0},
		{"-0030", -30},
		{"+23:59", 23*60 + 59},
		{"2359", 23*60 + 59},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			off, err := FromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, off.Minutes)
		})
	}
}

func TestFromString_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrInvalidFormat},
		{"1", ErrInvalidFormat},
		{"12", ErrInvalidFormat},
		{"1234567", ErrInvalidFormat},
		{"ab:cd", ErrInvalidFormat},
		{"x830", ErrInvalidFormat},
		{"--30", ErrInvalidFormat},
		{"++433", ErrInvalidFormat},
		{"-+433", ErrInvalidFormat},
		{"++4:33", ErrInvalidFormat},
		{"-+4:33", ErrInvalidFormat},
		{"+5:-3", ErrInvalidFormat},
		{"-45", ErrInvalidFormat},
		{"+30", ErrInvalidFormat},
		{"+:30", ErrInvalidFormat},
		{"25:00", ErrInvalidTime},
		{"2400", ErrInvalidTime},
		{"12:60", ErrInvalidTime},
		{"1260", ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := FromString(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFromStringNamed(t *testing.T) {
	off, err := FromStringNamed("+08:00", "SGT")
	require.NoError(t, err)
	assert.Equal(t, 480, off.Minutes)
	assert.Equal(t, "SGT", off.Name)
}

func TestString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"+11:22", "+11:22"},
		{"8:55", "+08:55"},
		{"-433", "-04:33"},
		{"000", "+00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			off, err := FromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, off.String())
		})
	}

	assert.Equal(t, "+00:00", UTC.String())
	assert.Equal(t, "+00:00", GMT.String())
}

func TestZeroOffsetConstants(t *testing.T) {
	assert.Equal(t, 0, UTC.Minutes)
	assert.Equal(t, "UTC", UTC.Name)
	assert.Equal(t, 0, GMT.Minutes)
	assert.Equal(t, "GMT", GMT.Name)
}
