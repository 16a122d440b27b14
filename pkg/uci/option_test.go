package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinAssign(t *testing.T) {
	var fired = 0
	var opt = NewSpinOption("Hash", 16, 1, 1024, func(o *Option) {
		fired++
		assert.Equal(t, 512, o.Int())
	})
	require.Equal(t, 16, opt.Int())

	require.True(t, opt.Assign("512"))
	assert.Equal(t, 512, opt.Int())
	assert.Equal(t, 1, fired)

	// Out of range, malformed and empty values leave the value alone
	// and never reach the handler.
	assert.False(t, opt.Assign("2000"))
	assert.False(t, opt.Assign("0"))
	assert.False(t, opt.Assign("12abc"))
	assert.False(t, opt.Assign(""))
	assert.Equal(t, 512, opt.Int())
	assert.Equal(t, 1, fired)
}

func TestSpinAssignAtBounds(t *testing.T) {
	var opt = NewSpinOption("Contempt", 0, -100, 100, nil)
	require.True(t, opt.Assign("-100"))
	assert.Equal(t, -100, opt.Int())
	require.True(t, opt.Assign("100"))
	assert.Equal(t, 100, opt.Int())
	assert.False(t, opt.Assign("-101"))
	assert.False(t, opt.Assign("101"))
	assert.Equal(t, 100, opt.Int())
}

func TestCheckAssign(t *testing.T) {
	var opt = NewCheckOption("Ponder", false, nil)
	require.Equal(t, 0, opt.Int())

	require.True(t, opt.Assign("true"))
	assert.Equal(t, 1, opt.Int())

	for _, bad := range []string{"TRUE", "yes", "1", "", "on"} {
		assert.False(t, opt.Assign(bad), "value %q", bad)
		assert.Equal(t, 1, opt.Int())
	}

	require.True(t, opt.Assign("false"))
	assert.Equal(t, 0, opt.Int())
}

func TestButtonAssign(t *testing.T) {
	var fired = 0
	var opt = NewButtonOption("Clear Hash", func(*Option) { fired++ })

	require.True(t, opt.Assign(""))
	assert.Equal(t, 1, fired)

	require.True(t, opt.Assign("anything"))
	assert.Equal(t, 2, fired)
}

func TestStringAssign(t *testing.T) {
	var last string
	var opt = NewStringOption("SyzygyPath", "<empty>", func(o *Option) {
		last = o.Text()
	})
	require.Equal(t, "<empty>", opt.Text())

	require.True(t, opt.Assign("/var/tb"))
	assert.Equal(t, "/var/tb", opt.Text())
	assert.Equal(t, "/var/tb", last)

	assert.False(t, opt.Assign(""))
	assert.Equal(t, "/var/tb", opt.Text())
}

func TestAccessorKindContract(t *testing.T) {
	assert.Panics(t, func() { NewStringOption("Debug Log File", "", nil).Int() })
	assert.Panics(t, func() { NewButtonOption("Clear Hash", nil).Int() })
	assert.Panics(t, func() { NewSpinOption("Hash", 16, 1, 128, nil).Text() })
	assert.Panics(t, func() { NewCheckOption("Ponder", false, nil).Text() })
}

func TestSpinInvertedBoundsPanics(t *testing.T) {
	assert.Panics(t, func() { NewSpinOption("Bad", 5, 10, 1, nil) })
}

func TestDeclarationLine(t *testing.T) {
	var tests = []struct {
		option *Option
		want   string
	}{
		{
			NewCheckOption("Ponder", false, nil),
			"option name Ponder type check default false",
		},
		{
			NewSpinOption("Threads", 4, 1, 512, nil),
			"option name Threads type spin default 4 min 1 max 512",
		},
		{
			NewButtonOption("Clear Hash", nil),
			"option name Clear Hash type button",
		},
		{
			NewStringOption("SyzygyPath", "<empty>", nil),
			"option name SyzygyPath type string default <empty>",
		},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.option.String())
	}
}

func TestDeclarationShowsDefaultAfterAssign(t *testing.T) {
	var opt = NewSpinOption("Hash", 16, 1, 1024, nil)
	require.True(t, opt.Assign("512"))
	assert.Equal(t, "option name Hash type spin default 16 min 1 max 1024", opt.String())
}
