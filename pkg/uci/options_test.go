package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Options {
	var om = NewOptions()
	om.Register(NewCheckOption("Ponder", false, nil))
	om.Register(NewSpinOption("Threads", 4, 1, 512, nil))
	om.Register(NewSpinOption("Hash", 16, 1, 1024, nil))
	om.Register(NewButtonOption("Clear Hash", nil))
	om.Register(NewStringOption("SyzygyPath", "<empty>", nil))
	return om
}

func TestFindCaseInsensitive(t *testing.T) {
	var om = newTestRegistry()
	var want = om.Find("Hash")
	require.NotNil(t, want)
	assert.Same(t, want, om.Find("hash"))
	assert.Same(t, want, om.Find("HASH"))
	assert.Same(t, want, om.Find("hAsH"))
	assert.Nil(t, om.Find("Hash "))
	assert.Nil(t, om.Find("Nonexistent"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	var om = newTestRegistry()
	assert.Panics(t, func() {
		om.Register(NewSpinOption("hash", 16, 1, 1024, nil))
	})
}

func TestSetOutcomes(t *testing.T) {
	var om = newTestRegistry()

	// applied
	require.NoError(t, om.Set("threads", "8"))
	assert.Equal(t, 8, om.Find("Threads").Int())

	// rejected: silent, nothing changes
	require.NoError(t, om.Set("threads", "100000"))
	assert.Equal(t, 8, om.Find("Threads").Int())

	// not found: distinct outcome, nothing created
	var err = om.Set("Nonexistent", "1")
	require.ErrorIs(t, err, ErrUnknownOption)
	assert.Nil(t, om.Find("Nonexistent"))
	assert.Equal(t, 5, om.Len())
}

func TestAllInsertionOrder(t *testing.T) {
	var om = newTestRegistry()
	var want = []string{"Ponder", "Threads", "Hash", "Clear Hash", "SyzygyPath"}

	var got []string
	for name := range om.All() {
		got = append(got, name)
	}
	assert.Equal(t, want, got)

	// restartable
	var again []string
	for name := range om.All() {
		again = append(again, name)
	}
	assert.Equal(t, want, again)
}

func TestAllEarlyStop(t *testing.T) {
	var om = newTestRegistry()
	var n = 0
	for range om.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestNamesSortedCaseInsensitively(t *testing.T) {
	var om = NewOptions()
	om.Register(NewButtonOption("zeta", nil))
	om.Register(NewButtonOption("Alpha", nil))
	om.Register(NewButtonOption("beta", nil))
	assert.Equal(t, []string{"Alpha", "beta", "zeta"}, om.Names())
}

func TestRegistryString(t *testing.T) {
	var om = NewOptions()
	om.Register(NewCheckOption("Ponder", false, nil))
	om.Register(NewSpinOption("Threads", 4, 1, 512, nil))
	var want = "\noption name Ponder type check default false" +
		"\noption name Threads type spin default 4 min 1 max 512"
	assert.Equal(t, want, om.String())
}

func TestFoldCompare(t *testing.T) {
	assert.Equal(t, 0, foldCompare("Clear Hash", "clear hash"))
	assert.Negative(t, foldCompare("Alpha", "beta"))
	assert.Positive(t, foldCompare("zeta", "Beta"))
	assert.Negative(t, foldCompare("Hash", "Hash2"))
	// ASCII fold only: non-ASCII bytes compare verbatim.
	assert.NotEqual(t, 0, foldCompare("Ä", "ä"))
}
