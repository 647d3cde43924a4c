package storage

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// logger sends gorm's log output to zerolog.
type logger struct {
	Logger zerolog.Logger
}

func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, s string, args ...interface{}) {
	l.Logger.Info().Msgf(s, args...)
}

func (l *logger) Warn(_ context.Context, s string, args ...interface{}) {
	l.Logger.Warn().Msgf(s, args...)
}

func (l *logger) Error(_ context.Context, s string, args ...interface{}) {
	l.Logger.Error().Msgf(s, args...)
}

func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()
	fields := map[string]interface{}{
		"sql":      sql,
		"rows":     rows,
		"duration": time.Since(begin),
	}

	// A missing key is an expected outcome of Get
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		l.Logger.Error().Err(err).Fields(fields).Msg("[GORM] query error")
		return
	}

	l.Logger.Debug().Fields(fields).Msg("[GORM] query")
}
