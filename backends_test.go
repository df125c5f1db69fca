package librarylog

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func fullProvider() *Provider {
	p := NewProvider(WithConsole(&recordingConsole{}))
	p.ConfigureFiltering(FilteringConfig{Dev: Ptr(true), Internal: Ptr(true), Min: Ptr(MinAll)})
	return p
}

func TestZapFactory(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := fullProvider()
	p.ConfigureConsole(KeyedOut{Keyed: ZapFactory(zap.New(core))})

	l := p.GetLogger().Named("Project", "p1").Named("Page")
	l.WarnDev("careful", Fields{"count": "3"})
	l.Trace("step")
	l.Hmm("odd")

	entries := logs.All()
	require.Len(t, entries, 3)

	warn := entries[0]
	assert.Equal(t, zapcore.WarnLevel, warn.Level)
	assert.Equal(t, "Project.Page", warn.LoggerName)
	assert.Equal(t, "careful", warn.Message)
	ctx := warn.ContextMap()
	assert.Equal(t, "p1", ctx["Project"])
	assert.Equal(t, "dev", ctx[fieldAudience])
	assert.Equal(t, "general", ctx[fieldCategory])
	assert.Equal(t, "3", ctx["count"])

	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, "TRACE", entries[1].ContextMap()[fieldSeverity])
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "troubleshooting", entries[2].ContextMap()[fieldCategory])
}

func TestZapFactory_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		ZapFactory(nil)([]Segment{{Name: "X"}}).Error(MetaOf(MethodError), "x", nil)
	})
}

func TestLogrusFactory(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)

	p := fullProvider()
	p.ConfigureConsole(KeyedOut{Keyed: LogrusFactory(logger)})

	l := p.GetLogger().Named("Project", 4)
	l.ErrorPublic("failed", Fields{"id": "abc"})
	l.TraceDev("tick")

	entries := hook.AllEntries()
	require.Len(t, entries, 2)

	assert.Equal(t, logrus.ErrorLevel, entries[0].Level)
	assert.Equal(t, "failed", entries[0].Message)
	assert.Equal(t, "Project#4", entries[0].Data[fieldSource])
	assert.Equal(t, "public", entries[0].Data[fieldAudience])
	assert.Equal(t, "abc", entries[0].Data["id"])

	assert.Equal(t, logrus.TraceLevel, entries[1].Level)
	assert.Equal(t, "dev", entries[1].Data[fieldAudience])
}

func TestLogrusFactory_RootHasNoSource(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	p := fullProvider()
	p.ConfigureConsole(KeyedOut{Keyed: LogrusFactory(logger)})

	p.GetLogger().Error("x")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	_, ok := entry.Data[fieldSource]
	assert.False(t, ok)
}

func TestApexFactory(t *testing.T) {
	h := memory.New()
	logger := &log.Logger{Handler: h, Level: log.DebugLevel}

	p := fullProvider()
	p.ConfigureConsole(KeyedOut{Keyed: ApexFactory(logger)})

	l := p.GetLogger().Named("Session")
	l.Kapow("here")
	l.Trace("step", Fields{"n": 1})
	l.Todo("later")

	require.Len(t, h.Entries, 3)
	assert.Equal(t, log.WarnLevel, h.Entries[0].Level)
	assert.Equal(t, "here", h.Entries[0].Message)
	assert.Equal(t, "Session", h.Entries[0].Fields[fieldSource])
	assert.Equal(t, "troubleshooting", h.Entries[0].Fields[fieldCategory])

	assert.Equal(t, log.DebugLevel, h.Entries[1].Level)
	assert.Equal(t, "TRACE", h.Entries[1].Fields[fieldSeverity])
	assert.Equal(t, 1, h.Entries[1].Fields["n"])

	assert.Equal(t, log.ErrorLevel, h.Entries[2].Level)
	assert.Equal(t, "todo", h.Entries[2].Fields[fieldCategory])
}
