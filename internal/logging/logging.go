// Package logging configures the process-wide slog logger for the commands.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chasinglogic/appdirs"
	"gopkg.in/natefinch/lumberjack.v2"
)

const appName = "polycity"

// LevelFlag is a flag.Value accepting DEBUG, INFO, WARN or ERROR.
type LevelFlag struct {
	Value slog.Level
}

func (l *LevelFlag) String() string {
	return l.Value.String()
}

func (l *LevelFlag) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level %q", value)
	}
	l.Value = v
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Dir returns the per-user log directory.
func Dir() string {
	return appdirs.New(appName).UserLog()
}

// Setup sets the default log level. With toFile the log goes to a rotating
// file named logName in Dir, which is returned. Otherwise it goes to stderr.
func Setup(level slog.Level, toFile bool, logName string) (string, io.Closer, error) {
	slog.SetLogLoggerLevel(level)
	if !toFile {
		log.SetOutput(os.Stderr)
		return "", nopCloser{}, nil
	}
	dir := Dir()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", nil, err
	}
	fn := filepath.Join(dir, logName)
	lj := &lumberjack.Logger{
		Filename:   fn,
		MaxSize:    50, // megabytes
		MaxBackups: 3,
	}
	log.SetOutput(lj)
	return fn, lj, nil
}
