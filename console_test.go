package librarylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func consoleLogger(t *testing.T, style bool, src Source) (*Logger, *recordingConsole, *StyleCache) {
	t.Helper()
	con := &recordingConsole{}
	styles := NewStyleCache()
	cfg := &Config{
		out:      consoleOutput{con: con, styles: styles},
		style:    style,
		includes: Inclusion{Min: MinAll, Dev: true, Internal: true},
		include:  includeNothing,
	}
	return Build(src, cfg), con, styles
}

func TestConsole_ChannelMapping(t *testing.T) {
	l, con, _ := consoleLogger(t, false, Source{})
	callAll(l)

	calls := con.Calls()
	require.Len(t, calls, int(methodCount))

	want := map[string]string{
		"_hmm": "error", "_todo": "error", "_error": "error", "errorDev": "error", "errorPublic": "error",
		"_kapow": "warn", "_warn": "warn", "warnDev": "warn", "warnPublic": "warn",
		"_debug": "info", "debugDev": "info",
		"_trace": "debug", "traceDev": "debug",
	}
	for _, c := range calls {
		require.Len(t, c.args, 1)
		msg := c.args[0].(string)
		assert.Equal(t, want[msg], c.channel, msg)
	}
}

func TestConsole_PlainPrefix(t *testing.T) {
	src := Source{}.Named("Project", 7).Named("Page")
	l, con, _ := consoleLogger(t, false, src)

	l.Warn("hello", Fields{"a": 1})
	l.Kapow("here")

	calls := con.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, " Project#7 Page", calls[0].format)
	assert.Equal(t, []any{"hello", Fields{"a": 1}}, calls[0].args)
	assert.Equal(t, " Project#7 Page", calls[1].format)
	assert.Equal(t, []any{"here"}, calls[1].args)
}

func TestConsole_StyledPrefix(t *testing.T) {
	src := Source{}.Named("Project", 7).Named("Page")
	l, con, styles := consoleLogger(t, true, src)

	l.Error("boom")

	calls := con.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, " %cProject%c#7 %cPage", calls[0].format)
	assert.Equal(t, []any{styles.CSS("Project"), styles.CSS("%c#7"), styles.CSS("Page"), "boom"}, calls[0].args)
}

func TestConsole_KapowHighlight(t *testing.T) {
	src := Source{}.Named("Project")
	l, con, styles := consoleLogger(t, true, src)

	l.Kapow("look")
	l.Warn("plain")

	calls := con.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "warn", calls[0].channel)
	assert.Equal(t, []any{styles.CSS("Project") + kapowHighlight, "look"}, calls[0].args)
	assert.Equal(t, []any{styles.CSS("Project"), "plain"}, calls[1].args)
}

func TestConsole_NilFieldsDropped(t *testing.T) {
	l, con, _ := consoleLogger(t, false, Source{})

	l.Error("x", nil, Fields{"k": "v"})

	calls := con.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []any{"x", Fields{"k": "v"}}, calls[0].args)
}

func TestParseConsoleConfig(t *testing.T) {
	cc, err := ParseConsoleConfig("console")
	require.NoError(t, err)
	assert.Equal(t, DefaultConsole, cc)

	_, err = ParseConsoleConfig("syslog")
	require.Error(t, err)
	assert.Contains(t, err.Error(), errMsgUnknownConsole)
}
