// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Log formats accepted by NewLogger.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewLogger builds a logrus logger writing to w at the configured level and format.
func NewLogger(s Settings, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	switch s.LogFormat {
	case FormatText:
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("log format: unknown %q, want %q or %q", s.LogFormat, FormatText, FormatJSON)
	}
	return l, nil
}

// LineWriter is an io.Writer that logs each complete line as one entry at
// Level before Write returns. Safe for concurrent use.
type LineWriter struct {
	Log   logrus.FieldLogger
	Level logrus.Level

	mu  sync.Mutex
	buf []byte
}

// NewLineWriter returns a LineWriter logging to log at level.
func NewLineWriter(log logrus.FieldLogger, level logrus.Level) *LineWriter {
	return &LineWriter{Log: log, Level: level}
}

func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Close logs any trailing partial line.
func (w *LineWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *LineWriter) emit(line []byte) {
	msg := string(bytes.TrimRight(line, "\r"))
	switch w.Level {
	case logrus.TraceLevel, logrus.DebugLevel:
		w.Log.Debug(msg)
	case logrus.WarnLevel:
		w.Log.Warn(msg)
	case logrus.ErrorLevel:
		w.Log.Error(msg)
	default:
		w.Log.Info(msg)
	}
}
