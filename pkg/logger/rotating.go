package logger

import (
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileSyncer is a log file sink that can be reopened on SIGHUP.
type FileSyncer interface {
	zapcore.WriteSyncer
	Reload() error
	Close() error
}

// RotatingWriteSyncer rotates the log file itself once it reaches MaxSize.
// Reload forces a rotation.
type RotatingWriteSyncer struct {
	l *lumberjack.Logger
}

func NewRotatingWriteSyncer(file string, maxSizeMB int, maxBackups int, maxAgeDays int) *RotatingWriteSyncer {
	return &RotatingWriteSyncer{
		l: &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		},
	}
}

func (ws *RotatingWriteSyncer) Write(p []byte) (n int, err error) {
	return ws.l.Write(p)
}

func (ws *RotatingWriteSyncer) Sync() error {
	return nil
}

func (ws *RotatingWriteSyncer) Reload() error {
	return ws.l.Rotate()
}

func (ws *RotatingWriteSyncer) Close() error {
	return ws.l.Close()
}

// NewFileSyncer picks size-based rotation when maxSizeMB is positive, otherwise
// a plain file that external logrotate moves away.
func NewFileSyncer(file string, maxSizeMB int, maxBackups int, maxAgeDays int) (FileSyncer, error) {
	if maxSizeMB > 0 {
		return NewRotatingWriteSyncer(file, maxSizeMB, maxBackups, maxAgeDays), nil
	}
	return NewReopenableWriteSyncer(file)
}
