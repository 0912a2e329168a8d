package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

var Logger = InitLogger()

var (
	transcriptMu   sync.Mutex
	transcriptFile *os.File
)

func InitLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetOutput(os.Stdout)
	return logger
}

// ParseLogLevel parses the log level from the CLI and sets the log level
func ParseLogLevel(logLevel string) error {
	parsedLogLevel, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level - %s - %s", logLevel, err)
	}

	Logger.SetLevel(parsedLogLevel)
	if parsedLogLevel == logrus.DebugLevel {
		pterm.EnableDebugMessages()
		Logger.Debugf("Setting log level to %s", parsedLogLevel.String())
	}

	return nil
}

// StartTranscript copies everything written through Logger and pterm to the file at path, in addition to stdout.
// Calling it while a transcript is already running is an error.
func StartTranscript(path string) error {
	transcriptMu.Lock()
	defer transcriptMu.Unlock()

	if transcriptFile != nil {
		return fmt.Errorf("transcript already started at %s", transcriptFile.Name())
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return err
	}
	transcriptFile = f

	w := io.MultiWriter(os.Stdout, f)
	Logger.SetOutput(w)
	pterm.SetDefaultOutput(w)
	return nil
}

// StopTranscript restores stdout-only output and closes the transcript file. No-op if none is running.
func StopTranscript() error {
	transcriptMu.Lock()
	defer transcriptMu.Unlock()

	if transcriptFile == nil {
		return nil
	}

	Logger.SetOutput(os.Stdout)
	pterm.SetDefaultOutput(os.Stdout)

	err := transcriptFile.Close()
	transcriptFile = nil
	return err
}

func Debug(msg string) {
	pterm.Debug.Println(msg)
}

func Debugf(msg string, args ...interface{}) {
	Debug(fmt.Sprintf(msg, args...))
}

func Info(msg string) {
	pterm.Info.Println(msg)
}

func Infof(msg string, args ...interface{}) {
	Info(fmt.Sprintf(msg, args...))
}

func Error(msg string) {
	pterm.Error.Println(msg)
}

func Errorf(msg string, args ...interface{}) {
	Error(fmt.Sprintf(msg, args...))
}

func Warn(msg string) {
	pterm.Warning.Println(msg)
}

func Warnf(msg string, args ...interface{}) {
	Warn(fmt.Sprintf(msg, args...))
}
