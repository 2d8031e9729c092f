package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"storefront/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestPoolWaitAttrs(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, attrs, ok := poolWaitAttrs(prev, prev)
		assert.False(t, ok)
		assert.Nil(t, attrs)
	})

	t.Run("short waits are debug", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond, InUse: 4}

		level, attrs, ok := poolWaitAttrs(prev, cur)
		require.True(t, ok)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Equal(t, int64(2), attrs[0].Value.Int64())
		assert.Equal(t, 5*time.Millisecond, attrs[2].Value.Duration())
	})

	t.Run("long waits are warnings", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 11, WaitDuration: time.Second + 80*time.Millisecond}

		level, _, ok := poolWaitAttrs(prev, cur)
		require.True(t, ok)
		assert.Equal(t, slog.LevelWarn, level)
	})
}

func TestQueryLoggerClassify(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.SlowQuery = 100 * time.Millisecond

	ql, ok := newQueryLogger(slog.Default(), cfg).(*queryLogger)
	require.True(t, ok)
	assert.Equal(t, logger.Warn, ql.level)
	assert.Equal(t, 100*time.Millisecond, ql.slowThreshold)

	tests := []struct {
		name    string
		level   logger.LogLevel
		elapsed time.Duration
		err     error
		want    slog.Level
		logged  bool
	}{
		{name: "failure", level: logger.Warn, err: errors.New("boom"), want: slog.LevelError, logged: true},
		{name: "not found is quiet", level: logger.Warn, err: gorm.ErrRecordNotFound},
		{name: "slow", level: logger.Warn, elapsed: time.Second, want: slog.LevelWarn, logged: true},
		{name: "fast at warn", level: logger.Warn, elapsed: time.Millisecond},
		{name: "fast at info", level: logger.Info, elapsed: time.Millisecond, want: slog.LevelInfo, logged: true},
		{name: "silent", level: logger.Silent, err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := ql.LogMode(tt.level).(*queryLogger)
			require.True(t, ok)

			level, _, logged := l.classify(tt.elapsed, tt.err)
			assert.Equal(t, tt.logged, logged)
			if tt.logged {
				assert.Equal(t, tt.want, level)
			}
		})
	}
}
