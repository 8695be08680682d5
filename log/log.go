package log

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	cmn "github.com/tendermint/tmlibs/common"

	"github.com/bytom/folio/config"
)

const (
	rotationTime int64 = 86400
	maxAge       int64 = 604800
)

var defaultFormatter = &logrus.TextFormatter{DisableColors: true}

// Init sets the level of the standard logger and, when a log directory is
// configured, sends every entry to per-module rotated files instead of
// stderr.
func Init(cfg *config.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	if cfg.LogFile == "" {
		return nil
	}
	return InitLogFile(cfg)
}

func InitLogFile(cfg *config.Config) error {
	logPath := cfg.LogDir()
	if err := cmn.EnsureDir(logPath, 0700); err != nil {
		return err
	}
	if err := clearLockFiles(logPath); err != nil {
		return err
	}

	hook := newFileHook(logPath)
	logrus.AddHook(hook)
	logrus.SetOutput(ioutil.Discard) // no console output
	fmt.Fprintf(os.Stderr, "all logs are output in the %s directory\n", logPath)
	return nil
}

// FileHook writes each entry to a daily rotated file named after the
// entry's module field.
type FileHook struct {
	logPath string
	lock    *sync.Mutex
}

func newFileHook(logPath string) *FileHook {
	hook := &FileHook{lock: new(sync.Mutex)}
	hook.logPath = logPath
	return hook
}

// Write a log line to an io.Writer.
func (hook *FileHook) ioWrite(entry *logrus.Entry) error {
	module := "general"
	if data, ok := entry.Data["module"].(string); ok {
		module = data
	}

	logPath := filepath.Join(hook.logPath, module)
	writer, err := rotatelogs.New(
		logPath+".%Y%m%d",
		rotatelogs.WithMaxAge(time.Duration(maxAge)*time.Second),
		rotatelogs.WithRotationTime(time.Duration(rotationTime)*time.Second),
	)
	if err != nil {
		return err
	}

	msg, err := defaultFormatter.Format(entry)
	if err != nil {
		return err
	}

	if _, err = writer.Write(msg); err != nil {
		return err
	}

	return writer.Close()
}

func clearLockFiles(logPath string) error {
	files, err := ioutil.ReadDir(logPath)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	for _, file := range files {
		if ok := strings.HasSuffix(file.Name(), "_lock"); ok {
			if err := os.Remove(filepath.Join(logPath, file.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

func (hook *FileHook) Fire(entry *logrus.Entry) error {
	hook.lock.Lock()
	defer hook.lock.Unlock()
	return hook.ioWrite(entry)
}

// Levels returns configured log levels.
func (hook *FileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
