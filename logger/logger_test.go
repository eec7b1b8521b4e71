package logger_test

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbauerster/clikit/clierr"
	"github.com/vbauerster/clikit/logger"
)

var lineRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[INFO\] hello\n$`)

func TestLineFormat(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf)

	l.Info("hello")
	assert.Regexp(t, lineRe, buf.String())
}

func TestTags(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf)
	l.SetTimestamp(false)
	require.NoError(t, l.SetLevel("debug"))

	l.Debug("d")
	l.Info("i")
	l.Success("s")
	l.Warn("w")
	l.Error("e")

	want := "[DEBUG] d\n[INFO] i\n[SUCCESS] s\n[WARN] w\n[ERROR] e\n"
	assert.Equal(t, want, buf.String())
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf)
	l.SetTimestamp(false)

	l.Debug("hidden")
	assert.Empty(t, buf.String())
	assert.Equal(t, "info", l.Level())

	require.NoError(t, l.SetLevel("WARN"))
	assert.Equal(t, "warn", l.Level())
	l.Info("hidden")
	l.Success("hidden")
	l.Warn("shown")
	assert.Equal(t, "[WARN] shown\n", buf.String())
}

func TestSetLevelInvalid(t *testing.T) {
	l := logger.New(&bytes.Buffer{})
	err := l.SetLevel("loud")
	require.Error(t, err)
	assert.Equal(t, clierr.KindConfig, clierr.KindOf(err))
	assert.Equal(t, "info", l.Level())
}

func TestColorOffStripsMessage(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf)
	l.SetTimestamp(false)

	l.Info("\x1b[31mred\x1b[0m")
	assert.Contains(t, buf.String(), "\x1b[31mred")

	buf.Reset()
	l.SetColor(false)
	l.Info("\x1b[31mred\x1b[0m")
	assert.Equal(t, "[INFO] red\n", buf.String())
}

func TestLogr(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf)
	l.SetTimestamp(false)

	l.Logr().Info("via logr", "key", "value")
	assert.True(t, strings.HasPrefix(buf.String(), "[INFO] via logr"), buf.String())
}

func TestSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	l := logger.New(&first)
	l.SetOutput(&second)
	l.Warn("moved")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "[WARN] moved")
}

func TestPackageLevel(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetTimestamp(false)
	logger.SetColor(false)
	t.Cleanup(func() {
		logger.SetOutput(os.Stdout)
		logger.SetTimestamp(true)
		logger.SetColor(true)
		_ = logger.SetLevel("info")
	})

	logger.Success("ok")
	assert.Equal(t, "[SUCCESS] ok\n", buf.String())
	assert.Same(t, logger.Default(), logger.Default())
}
