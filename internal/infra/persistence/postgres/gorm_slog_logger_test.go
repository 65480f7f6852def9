package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"trafficalert/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)

	return l.(*gormSlogLogger), buf
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_LogsQueryErrors(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "DELETE FROM subscribers", 0 }, assert.AnError)

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "component=gorm")
}

func TestGormSlogLogger_InfoOnlyInDebug(t *testing.T) {
	quiet, quietBuf := newBufferedGormLogger(false)
	quiet.Info(context.Background(), "migrated %d tables", 2)
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newBufferedGormLogger(true)
	verbose.Info(context.Background(), "migrated %d tables", 2)
	assert.Contains(t, verboseBuf.String(), "migrated 2 tables")
}
