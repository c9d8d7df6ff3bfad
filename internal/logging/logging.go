package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupParams controls how the process-wide logrus logger is configured.
type SetupParams struct {
	Level      string
	FormatJSON bool
	File       string
}

// Setup configures the global logrus logger. With a file name set, logs
// go to a size-rotated file and stdout; otherwise stdout only.
func Setup(params SetupParams) {
	if params.FormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetLevel(GetLevel(params.Level))

	if params.File == "" {
		logrus.SetOutput(os.Stdout)
		return
	}

	if !strings.HasSuffix(params.File, ".log") {
		params.File += ".log"
	}

	rotated := &lumberjack.Logger{
		Filename:  params.File,
		MaxSize:   50, // megabytes
		LocalTime: false,
		Compress:  true,
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, rotated))
}

// GetLevel parses a level name, defaulting to info.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
