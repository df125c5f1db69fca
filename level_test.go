package librarylog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type methodRow struct {
	Name     string
	Severity string
	Audience string
	Category string
	Bits     uint32
}

func TestMethodTableSnapshot(t *testing.T) {
	want := []methodRow{
		{"_hmm", "ERROR", "internal", "troubleshooting", 512 | 8 | 4},
		{"_todo", "ERROR", "internal", "todo", 512 | 8 | 2},
		{"_error", "ERROR", "internal", "general", 512 | 8 | 1},
		{"errorDev", "ERROR", "dev", "general", 512 | 16 | 1},
		{"errorPublic", "ERROR", "public", "general", 512 | 32 | 1},
		{"_kapow", "WARN", "internal", "troubleshooting", 256 | 8 | 4},
		{"_warn", "WARN", "internal", "general", 256 | 8 | 1},
		{"warnDev", "WARN", "dev", "general", 256 | 16 | 1},
		{"warnPublic", "WARN", "public", "general", 256 | 32 | 1},
		{"_debug", "DEBUG", "internal", "general", 128 | 8 | 1},
		{"debugDev", "DEBUG", "dev", "general", 128 | 16 | 1},
		{"_trace", "TRACE", "internal", "general", 64 | 8 | 1},
		{"traceDev", "TRACE", "dev", "general", 64 | 16 | 1},
	}

	var got []methodRow
	for _, m := range Methods() {
		meta := MetaOf(m)
		got = append(got, methodRow{
			Name:     m.String(),
			Severity: meta.Level.String(),
			Audience: meta.Audience.String(),
			Category: meta.Category.String(),
			Bits:     LevelOf(m).Bits(),
		})
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("method table mismatch (-want +got):\n%s", diff)
	}
}

func TestMetaMatchesLevel(t *testing.T) {
	for _, m := range Methods() {
		lvl := LevelOf(m)
		meta := MetaOf(m)
		assert.Equal(t, lvl.Severity, meta.Level, m.String())
		assert.Equal(t, lvl.Audience, meta.Audience, m.String())
		assert.Equal(t, lvl.Category, meta.Category, m.String())
	}
}

func TestCompareAgreesWithBits(t *testing.T) {
	levels := []Level{MinAll, MinOff, AtLeast(TraceLevel), AtLeast(WarnLevel), {WarnLevel, AudienceDev, CategoryGeneral}}
	for _, m := range Methods() {
		levels = append(levels, LevelOf(m))
	}

	for _, a := range levels {
		for _, b := range levels {
			ab, bb := a.Bits(), b.Bits()
			want := 0
			if ab < bb {
				want = -1
			} else if ab > bb {
				want = 1
			}
			assert.Equal(t, want, Compare(a, b), "%s vs %s", a, b)
		}
	}
}

func TestCompare(t *testing.T) {
	t.Run("severity dominates", func(t *testing.T) {
		assert.Equal(t, 1, Compare(LevelOf(MethodTodo), LevelOf(MethodWarnPublic)))
		assert.Equal(t, -1, Compare(LevelOf(MethodTraceDev), LevelOf(MethodDebug)))
	})

	t.Run("audience then category break ties", func(t *testing.T) {
		assert.Equal(t, -1, Compare(LevelOf(MethodWarn), LevelOf(MethodWarnDev)))
		assert.Equal(t, -1, Compare(LevelOf(MethodWarn), LevelOf(MethodKapow)))
		assert.Equal(t, 1, Compare(LevelOf(MethodWarnDev), LevelOf(MethodKapow)))
	})

	t.Run("equal", func(t *testing.T) {
		assert.Equal(t, 0, Compare(LevelOf(MethodHmm), LevelOf(MethodHmm)))
	})

	t.Run("off sorts above everything", func(t *testing.T) {
		for _, m := range Methods() {
			assert.Equal(t, 1, Compare(MinOff, LevelOf(m)), m.String())
			assert.Equal(t, -1, Compare(MinAll, LevelOf(m)), m.String())
		}
	})
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
	}{
		{"", 0},
		{"all", 0},
		{"TRACE", TraceLevel},
		{"debug", DebugLevel},
		{" warn ", WarnLevel},
		{"warning", WarnLevel},
		{"Error", ErrorLevel},
		{"off", OffLevel},
		{"none", OffLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSeverity(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseSeverity("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "WARN_DEV_GENERAL", LevelOf(MethodWarnDev).String())
	assert.Equal(t, "ERROR_INTERNAL_TROUBLESHOOTING", LevelOf(MethodHmm).String())
	assert.Equal(t, "unknown", Method(200).String())
	assert.Equal(t, "UNKNOWN", Severity(42).String())
}
