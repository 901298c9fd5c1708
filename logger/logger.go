package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	permission = 0600
)

type LogBuild struct {
	writer io.Writer
	path   string
}

type LogData struct {
	LogFile *os.File
	Logger  zerolog.Logger
}

func New() *LogBuild {
	return &LogBuild{}
}

func (build *LogBuild) FromPath(path string) *LogBuild {
	build.path = path
	return build
}

func (build *LogBuild) FromWriter(w io.Writer) *LogBuild {
	build.writer = w
	return build
}

// Make opens the log file if one was given. With neither a path nor a
// writer the logger discards everything: the terminal belongs to the UI.
func (build *LogBuild) Make() (*LogData, error) {
	logData := new(LogData)
	writer := build.writer
	if build.path != "" {
		f, err := os.OpenFile(build.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, err
		}
		logData.LogFile = f
		writer = zerolog.SyncWriter(f)
	}
	if writer == nil {
		logData.Logger = zerolog.Nop()
		return logData, nil
	}
	logData.Logger = zerolog.New(writer).With().Timestamp().Logger()
	return logData, nil
}

func (logData *LogData) Close() error {
	if logData.LogFile == nil {
		return nil
	}
	return logData.LogFile.Close()
}
