package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// AppLogger receives console/application messages, RemoteLogger the
	// traffic with the Cosmos server. Both tee ERROR and above to stderr.
	AppLogger    *zap.SugaredLogger
	RemoteLogger *zap.SugaredLogger

	logLevel      = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	levelName     string
	appLogFile    *os.File
	remoteLogFile *os.File
	initialized   bool
)

// openLogWriter opens (creating directories as needed) an append-only log file.
// On failure the returned writer discards output and the error is reported on stderr.
func openLogWriter(path string) (io.Writer, *os.File, string) {
	if path == "" {
		return io.Discard, nil, "(discarded)"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create log directory %s: %v. Logs will be discarded.\n", filepath.Dir(path), err)
		return io.Discard, nil, "(discarded)"
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to open log file %s: %v. Logs will be discarded.\n", path, err)
		return io.Discard, nil, "(discarded)"
	}
	return f, f, path
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func newLogger(name string, w io.Writer) *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(encoderConfig())
	fileCore := zapcore.NewCore(enc, zapcore.AddSync(w), logLevel)
	stderrCore := zapcore.NewCore(enc.Clone(), zapcore.Lock(os.Stderr), zapcore.ErrorLevel)
	base := zap.New(zapcore.NewTee(fileCore, stderrCore), zap.AddCaller(), zap.AddCallerSkip(1))
	return base.Named(name).Sugar()
}

// InitGlobalLoggers (re)initializes the application and remote loggers.
// level is one of DEBUG, INFO, WARN, ERROR (case-insensitive, default INFO).
func InitGlobalLoggers(appLogPath, remoteLogPath, level string) error {
	upper := strings.ToUpper(level)
	if upper == "" {
		upper = "INFO"
	}
	if initialized && appLogFile != nil && remoteLogFile != nil && upper == levelName {
		return nil
	}
	closeFiles()

	if err := logLevel.UnmarshalText([]byte(upper)); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Unknown log level %q, falling back to INFO\n", level)
		logLevel.SetLevel(zapcore.InfoLevel)
		upper = "INFO"
	}
	levelName = upper

	var appWriter, remoteWriter io.Writer
	var actualAppPath, actualRemotePath string
	appWriter, appLogFile, actualAppPath = openLogWriter(appLogPath)
	remoteWriter, remoteLogFile, actualRemotePath = openLogWriter(remoteLogPath)

	AppLogger = newLogger("app", appWriter)
	RemoteLogger = newLogger("remote", remoteWriter)

	if !initialized {
		AppLogger.Infof("App logger initialized. Log level: %s. Output file: %s", levelName, actualAppPath)
		RemoteLogger.Infof("Remote logger initialized. Log level: %s. Output file: %s", levelName, actualRemotePath)
	}
	initialized = true
	return nil
}

// Level returns the active level name.
func Level() string {
	if levelName == "" {
		return "INFO"
	}
	return levelName
}

func Info(format string, v ...interface{}) {
	if AppLogger != nil {
		AppLogger.Infof(format, v...)
	}
}

func Debug(format string, v ...interface{}) {
	if AppLogger != nil {
		AppLogger.Debugf(format, v...)
	}
}

func Warn(format string, v ...interface{}) {
	if AppLogger != nil {
		AppLogger.Warnf(format, v...)
	}
}

func Error(format string, v ...interface{}) {
	if AppLogger != nil {
		AppLogger.Errorf(format, v...)
		return
	}
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", v...)
}

func Fatal(format string, v ...interface{}) {
	if AppLogger != nil {
		AppLogger.Fatalf(format, v...)
	}
	fmt.Fprintf(os.Stderr, "FATAL: "+format+"\n", v...)
	os.Exit(1)
}

func RemoteInfo(format string, v ...interface{}) {
	if RemoteLogger != nil {
		RemoteLogger.Infof(format, v...)
	}
}

func RemoteDebug(format string, v ...interface{}) {
	if RemoteLogger != nil {
		RemoteLogger.Debugf(format, v...)
	}
}

func RemoteError(format string, v ...interface{}) {
	if RemoteLogger != nil {
		RemoteLogger.Errorf(format, v...)
	}
}

func closeFiles() {
	if AppLogger != nil {
		_ = AppLogger.Sync()
	}
	if RemoteLogger != nil {
		_ = RemoteLogger.Sync()
	}
	if appLogFile != nil {
		appLogFile.Close()
		appLogFile = nil
	}
	if remoteLogFile != nil {
		remoteLogFile.Close()
		remoteLogFile = nil
	}
}

func CloseLogFiles() {
	if appLogFile != nil {
		Info("Closing app log file.")
	}
	closeFiles()
	AppLogger, RemoteLogger = nil, nil
	initialized = false // allow re-initialization (tests)
}
