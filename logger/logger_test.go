package logger

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redthing1/redlog/core"
	"github.com/redthing1/redlog/formatter"
	"github.com/redthing1/redlog/sink"
	"github.com/redthing1/redlog/theme"
)

// newTestLogger builds a logger bound to a private config with plain
// rendering into a string sink, so tests never touch global state or
// the terminal.
func newTestLogger(name string, min core.Level) (*Logger, *sink.StringSink) {
	cfg := NewConfig()
	cfg.SetMinLevel(min)
	cfg.SetTheme(theme.Plain())
	out := sink.NewStringSink()
	log := NewLogger(name, cfg).
		WithFormatter(formatter.NewPlainFormatter()).
		WithSink(out)
	return log, out
}

func TestLogger_LevelGate(t *testing.T) {
	log, out := newTestLogger("test", core.WarnLevel)

	log.Critical("critical message")
	log.Error("error message")
	log.Warn("warn message")
	log.Info("info message")
	log.Debug("debug message")
	log.Annoying("annoying message")

	lines := out.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "critical message")
	assert.Contains(t, lines[1], "error message")
	assert.Contains(t, lines[2], "warn message")
}

func TestLogger_AllLevelsEmitAtMaxVerbosity(t *testing.T) {
	log, out := newTestLogger("test", core.AnnoyingLevel)

	log.Critical("m")
	log.Error("m")
	log.Warn("m")
	log.Info("m")
	log.Verbose("m")
	log.Trace("m")
	log.Debug("m")
	log.Pedantic("m")
	log.Annoying("m")

	assert.Len(t, out.Lines(), 9)
}

func TestLogger_ShortAliases(t *testing.T) {
	log, out := newTestLogger("test", core.AnnoyingLevel)

	log.Crt("m")
	log.Err("m")
	log.Wrn("m")
	log.Inf("m")
	log.Vrb("m")
	log.Trc("m")
	log.Dbg("m")
	log.Ped("m")
	log.Ayg("m")

	lines := out.Lines()
	require.Len(t, lines, 9)
	for i, short := range []string{"crt", "err", "wrn", "inf", "vrb", "trc", "dbg", "ped", "ayg"} {
		assert.Contains(t, lines[i], "["+short+"]")
	}
}

func TestLogger_WithNameComposition(t *testing.T) {
	assert.Equal(t, "a.b", GetLogger("").WithName("a").WithName("b").Name())
	assert.Equal(t, "a.b", GetLogger("a").WithName("b").Name())
	assert.Equal(t, "x", GetLogger("").WithName("x").Name())
}

func TestLogger_Immutability(t *testing.T) {
	base := GetLogger("base")
	derived := base.WithField("k", "v")

	assert.Equal(t, "base", base.Name())
	assert.Equal(t, 0, base.Fields().Len())
	assert.Equal(t, 1, derived.Fields().Len())

	renamed := base.WithName("child")
	assert.Equal(t, "base", base.Name())
	assert.Equal(t, "base.child", renamed.Name())
}

func TestLogger_FieldMergeOrder(t *testing.T) {
	log, out := newTestLogger("app", core.InfoLevel)

	log.WithField("bound", 1).
		Info("msg", F("call1", 2), F("call2", 3))

	require.Len(t, out.Lines(), 1)
	assert.Contains(t, out.Lines()[0], "bound=1 call1=2 call2=3")
}

func TestLogger_PerCallFieldsDoNotStick(t *testing.T) {
	log, out := newTestLogger("app", core.InfoLevel)

	log.Info("first", F("once", true))
	log.Info("second")

	lines := out.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "once=true")
	assert.NotContains(t, lines[1], "once")
}

func TestLogger_SpecScenarioAlignedOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	cfg := NewConfig()
	cfg.SetMinLevel(core.InfoLevel)
	cfg.SetTheme(theme.Plain())
	out := sink.NewStringSink()

	NewLogger("db", cfg).
		WithSink(out).
		WithField("host", "x").
		WithField("port", 5432).
		Info("connected")

	require.Len(t, out.Lines(), 1)
	line := out.Lines()[0]
	assert.True(t, strings.HasSuffix(line, "host=x port=5432"), "line: %q", line)
	assert.True(t, strings.HasPrefix(line, "[db]"), "line: %q", line)
	assert.Contains(t, line, "[inf]")
}

type sideEffectArg struct {
	called *bool
}

func (a sideEffectArg) String() string {
	*a.called = true
	return "evaluated"
}

func TestLogger_PrintfShortCircuit(t *testing.T) {
	log, out := newTestLogger("app", core.InfoLevel)

	called := false
	log.Debugf("value: %s", sideEffectArg{called: &called})
	assert.False(t, called, "format args must not be evaluated for filtered-out calls")
	assert.Empty(t, out.Lines())

	log.Infof("value: %s", sideEffectArg{called: &called})
	assert.True(t, called)
	require.Len(t, out.Lines(), 1)
	assert.Contains(t, out.Lines()[0], "value: evaluated")
}

func TestLogger_PrintfFormatting(t *testing.T) {
	log, out := newTestLogger("app", core.AnnoyingLevel)

	log.Infof("user %s has %d points (%.1f%%)", "alice", 42, 93.75)
	require.Len(t, out.Lines(), 1)
	assert.Contains(t, out.Lines()[0], "user alice has 42 points (93.8%)")
}

func TestLogger_PrintfArgumentMismatch(t *testing.T) {
	log, out := newTestLogger("app", core.InfoLevel)

	// Interpolation trouble yields an in-band marker, never a panic.
	assert.NotPanics(t, func() {
		log.Infof("count: %d", "not a number")
		log.Infof("missing: %s %s", "only one")
	})
	lines := out.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "%!")
	assert.Contains(t, lines[1], "%!")
}

func TestLogger_PrintfAliases(t *testing.T) {
	log, out := newTestLogger("app", core.AnnoyingLevel)

	log.Crtf("n=%d", 1)
	log.Errf("n=%d", 2)
	log.Wrnf("n=%d", 3)
	log.Inff("n=%d", 4)
	log.Vrbf("n=%d", 5)
	log.Trcf("n=%d", 6)
	log.Dbgf("n=%d", 7)
	log.Pedf("n=%d", 8)
	log.Aygf("n=%d", 9)

	assert.Len(t, out.Lines(), 9)
}

func TestLogger_JSONOverride(t *testing.T) {
	cfg := NewConfig()
	out := sink.NewStringSink()
	log := NewLogger("http", cfg).
		WithFormatter(formatter.NewJSONFormatter()).
		WithSink(out)

	log.Error("failed", F("status", 500))

	require.Len(t, out.Lines(), 1)
	var decoded struct {
		Level   string            `json:"level"`
		Source  string            `json:"source"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal([]byte(out.Lines()[0]), &decoded))
	assert.Equal(t, "error", decoded.Level)
	assert.Equal(t, "http", decoded.Source)
	assert.Equal(t, "failed", decoded.Message)
	assert.Equal(t, "500", decoded.Fields["status"])
}

// brokenSink fails every write.
type brokenSink struct{}

func (brokenSink) Write(string) error { return errors.New("sink unavailable") }
func (brokenSink) Flush() error       { return nil }
func (brokenSink) Close() error       { return nil }

// panicFormatter panics on every format call.
type panicFormatter struct{}

func (panicFormatter) Format(*core.Entry) string { panic("formatter broke") }

func TestLogger_BrokenSinkNeverReachesCaller(t *testing.T) {
	cfg := NewConfig()
	log := NewLogger("app", cfg).WithSink(brokenSink{})

	assert.NotPanics(t, func() {
		log.Info("lost message")
	})
}

func TestLogger_PanickingFormatterRecovered(t *testing.T) {
	cfg := NewConfig()
	out := sink.NewStringSink()
	log := NewLogger("app", cfg).
		WithFormatter(panicFormatter{}).
		WithSink(out)

	assert.NotPanics(t, func() {
		log.Info("survives")
	})
	assert.Empty(t, out.Lines())
}

func TestLogger_Log(t *testing.T) {
	log, out := newTestLogger("app", core.InfoLevel)

	log.Log(core.ErrorLevel, "via Log", F("k", "v"))
	log.Log(core.DebugLevel, "filtered")

	require.Len(t, out.Lines(), 1)
	assert.Contains(t, out.Lines()[0], "via Log")
}

func TestLogger_ConcurrentDerivedUse(t *testing.T) {
	log, out := newTestLogger("app", core.InfoLevel)
	shared := log.WithField("shared", true)

	const goroutines = 16
	const perGoroutine = 25

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			child := shared.WithField("goroutine", id)
			for i := 0; i < perGoroutine; i++ {
				child.Info("concurrent", F("i", i))
			}
		}(g)
	}
	wg.Wait()

	assert.Len(t, out.Lines(), goroutines*perGoroutine)
}

func TestDefaultLogger_Replaceable(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	cfg := NewConfig()
	out := sink.NewStringSink()
	SetDefault(NewLogger("pkg", cfg).
		WithFormatter(formatter.NewPlainFormatter()).
		WithSink(out))

	Info("through package function", F("k", "v"))
	Debug("filtered by default level")

	require.Len(t, out.Lines(), 1)
	assert.Contains(t, out.Lines()[0], "through package function")
}
