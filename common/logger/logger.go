package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
	Debug *log.Logger
	Trace *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

func init() {
	InitializeWithWriter(ERROR-1, io.Discard)
}

// Initialize enables all levels up to logLevel. Errors go to stderr,
// everything else to stdout.
func Initialize(logLevel LogLevel) {
	setLoggers(logLevel, os.Stderr, os.Stdout)
	Debug.Printf("Initialized loggers: '%s'", logLevel.String())
}

// InitializeWithWriter enables all levels up to logLevel and routes them to writer.
func InitializeWithWriter(logLevel LogLevel, writer io.Writer) {
	setLoggers(logLevel, writer, writer)
}

func setLoggers(logLevel LogLevel, errorOut io.Writer, out io.Writer) {
	writerFor := func(level LogLevel, writer io.Writer) io.Writer {
		if logLevel >= level {
			return writer
		}
		return io.Discard
	}

	Error = log.New(writerFor(ERROR, errorOut), "ERROR: ", flags)
	Warn = log.New(writerFor(WARN, out), "WARN:  ", flags)
	Info = log.New(writerFor(INFO, out), "INFO:  ", flags)
	Debug = log.New(writerFor(DEBUG, out), "DEBUG: ", flags)
	Trace = log.New(writerFor(TRACE, out), "TRACE: ", flags)
}
