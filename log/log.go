// Package log provides structured, file-backed logging for tscribe runs.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tscribe-cli/tscribe/filesystem"
	"github.com/tscribe-cli/tscribe/key"
	"github.com/tscribe-cli/tscribe/where"
)

// enabled indicates the persistent logging state for the active application instance.
var enabled bool

func init() {
	// Nothing is emitted until Setup decides where logs go.
	logrus.SetOutput(io.Discard)
}

// Setup opens the daily log file and applies the configured format and level.
// When logs.write is off every emission is discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		logrus.SetOutput(io.Discard)
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	filename := fmt.Sprintf("%s.log", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, filename)

	if exists := lo.Must(filesystem.API().Exists(path)); !exists {
		lo.Must(filesystem.API().Create(path))
	}

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// Prune deletes daily log files last modified more than age ago.
func Prune(age time.Duration) error {
	fs := filesystem.API()
	dir := where.Logs()

	files, err := fs.ReadDir(dir)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-age)
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".log" || f.ModTime().After(cutoff) {
			continue
		}
		if err := fs.Remove(filepath.Join(dir, f.Name())); err != nil {
			return err
		}
	}

	return nil
}

// Enabled reports whether Setup attached a log file.
func Enabled() bool {
	return enabled
}

// Episode returns an entry tagged with the season and episode being processed.
func Episode(season, title string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"season":  season,
		"episode": title,
	})
}

func Error(args ...interface{}) {
	logrus.Error(args...)
}
func Errorf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}
func Warn(args ...interface{}) {
	logrus.Warn(args...)
}
func Warnf(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}
func Info(args ...interface{}) {
	logrus.Info(args...)
}
func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}
func Debug(args ...interface{}) {
	logrus.Debug(args...)
}
func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}
