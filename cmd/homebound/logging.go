package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

var logFile *os.File

// openLog builds the process logger. Interactive commands own the terminal,
// so without a log file they discard logs; the server logs to stderr.
func openLog(path, level string, toStderr bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var out io.Writer = io.Discard
	switch {
	case path != "":
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("log file: %w", err)
		}
		logFile = f
		out = f
	case toStderr:
		out = os.Stderr
	}

	return log.NewWithOptions(out, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "homebound",
	}), nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
