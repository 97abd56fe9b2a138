package log

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type syncBuf struct {
	bytes.Buffer
}

func (s *syncBuf) Sync() error { return nil }

func TestLoggerLevels(t *testing.T) {
	var buf syncBuf
	l := New(&buf, WarnLevel)

	l.Info("should not appear")
	l.Warn("should appear")

	scanner := bufio.NewScanner(&buf.Buffer)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "should appear")
}

func TestLoggerWithAndNamed(t *testing.T) {
	var buf syncBuf
	l := New(&buf, InfoLevel).With("schema", "dleq").Named("codegen")

	l.Info("emitting module")

	require.Contains(t, buf.String(), "schema")
	require.Contains(t, buf.String(), "dleq")
	require.Contains(t, buf.String(), "codegen")
}

var _ zapcore.WriteSyncer = (*syncBuf)(nil)
