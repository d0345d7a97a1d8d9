package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"venture/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer, cfg *config.Config) logger.Interface {
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg)
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("slow query is a warning", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.SlowQueryThreshold = 10 * time.Millisecond
		l := newTestGormLogger(&buf, cfg)

		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
		assert.Contains(t, buf.String(), `"component":"gorm"`)
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, &config.Config{})

		l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("errors are logged", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, &config.Config{})

		l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("fast queries are quiet unless debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := newTestGormLogger(&buf, &config.Config{})
		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		cfg := &config.Config{}
		cfg.Env.Debug = true
		l = newTestGormLogger(&buf, cfg)
		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "GORM query")
	})
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_connection_requests_pair_key" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "display_name" violates not-null constraint`)))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now\\`, escapeLike(`50% off_now\`))
	assert.Equal(t, "beng", escapeLike("beng"))
}
