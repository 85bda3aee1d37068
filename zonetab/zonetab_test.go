package zonetab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfal/go-epoch/tzoffset"
)

func TestBuiltin(t *testing.T) {
	tab := Builtin()

	off, ok := tab.Lookup("UTC")
	require.True(t, ok)
	assert.Equal(t, tzoffset.UTC, off)

	off, ok = tab.Lookup("GMT")
	require.True(t, ok)
	assert.Equal(t, 0, off.Minutes)

	_, ok = tab.Lookup("SGT")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	tab := Builtin()
	err := tab.Load(strings.NewReader(`
zones:
  SGT: "+08:00"
  EST: "-05:00"
  NPT: "545"
`))
	require.NoError(t, err)

	off, ok := tab.Lookup("SGT")
	require.True(t, ok)
	assert.Equal(t, 480, off.Minutes)
	assert.Equal(t, "SGT", off.Name)

	off, ok = tab.Lookup("EST")
	require.True(t, ok)
	assert.Equal(t, -300, off.Minutes)

	off, ok = tab.Lookup("NPT")
	require.True(t, ok)
	assert.Equal(t, 5*60+45, off.Minutes)

	assert.Equal(t, []string{"EST", "GMT", "NPT", "SGT", "UTC"}, tab.Names())
}

func TestLoad_Overwrites(t *testing.T) {
	tab := Builtin()
	err := tab.Load(strings.NewReader(`
zones:
  GMT: "+01:00"
`))
	require.NoError(t, err)

	off, ok := tab.Lookup("GMT")
	require.True(t, ok)
	assert.Equal(t, 60, off.Minutes)
}

func TestLoad_BadOffset(t *testing.T) {
	tab := Builtin()
	err := tab.Load(strings.NewReader(`
zones:
  BAD: "25:00"
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, tzoffset.ErrInvalidTime)
	assert.Contains(t, err.Error(), "zone BAD")
}

func TestLoad_BadYAML(t *testing.T) {
	tab := Builtin()
	err := tab.Load(strings.NewReader(`zones: [not, a, map]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode zone table")
}
