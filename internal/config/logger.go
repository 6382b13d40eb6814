package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "navctl"

type LoggerConfig struct {
	Level       string `yaml:"level"`
	Destination string `yaml:"destination,omitempty"`
	Mode        string `yaml:"mode,omitempty"`
}

type LoggingConfig struct {
	FileLogger    LoggerConfig `yaml:"file"`
	ConsoleLogger LoggerConfig `yaml:"console"`
}

func (conf *LoggingConfig) validate() (err error) {
	for name, l := range map[string]LoggerConfig{"console": conf.ConsoleLogger, "file": conf.FileLogger} {
		switch l.Level {
		case "", "none", "normal", "debug":
		default:
			err = multierr.Append(err, fmt.Errorf("logging.%s.level must be one of none, normal, debug; got %q", name, l.Level))
		}
		switch l.Mode {
		case "", "append", "overwrite":
		default:
			err = multierr.Append(err, fmt.Errorf("logging.%s.mode must be append or overwrite; got %q", name, l.Mode))
		}
	}
	return err
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return isatty.IsTerminal(stream.Fd())
}

// minLevel maps a configured level name to the lowest level it lets
// through. ok is false for "none" and the empty string.
func minLevel(name string) (lvl zapcore.Level, ok bool) {
	switch name {
	case "debug":
		return zapcore.DebugLevel, true
	case "normal":
		return zapcore.InfoLevel, true
	}
	return zapcore.InfoLevel, false
}

func consoleEncoder(stream *os.File) zapcore.Encoder {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	if EnableColorOutput(stream) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	}
	return zapcore.NewConsoleEncoder(ec)
}

// Prepare returns the program logger configured from conf. Console errors go
// to stderr and lower levels to stdout; the file sink falls back to a temp
// file when its destination cannot be opened.
func (conf *LoggingConfig) Prepare() (*zap.Logger, error) {
	var cores []zapcore.Core

	if lvl, ok := minLevel(conf.ConsoleLogger.Level); ok {
		below := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return lvl <= l && l < zapcore.ErrorLevel
		})
		cores = append(cores,
			zapcore.NewCore(consoleEncoder(os.Stdout), zapcore.Lock(os.Stdout), below),
			zapcore.NewCore(consoleEncoder(os.Stderr), zapcore.Lock(os.Stderr), zapcore.ErrorLevel),
		)
	}

	var redirected string
	if lvl, ok := minLevel(conf.FileLogger.Level); ok {
		f, err := openLog(conf.FileLogger.Destination, conf.FileLogger.Mode)
		if err != nil {
			if f, err = os.CreateTemp("", appName+".*.log"); err != nil {
				return nil, fmt.Errorf("unable to access file log destination (%s): %w", conf.FileLogger.Destination, err)
			}
			redirected = f.Name()
		}
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(f), lvl))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named(appName)
	if redirected != "" {
		log.Warn("Log file was redirected to new location", zap.String("location", redirected))
	}
	return log, nil
}

func openLog(fname, mode string) (*os.File, error) {
	if fname == "" {
		return nil, errors.New("no destination")
	}
	flags := os.O_CREATE | os.O_WRONLY
	if mode == "overwrite" {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}
	return os.OpenFile(fname, flags, 0644)
}
