package cronparser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/minecraft-compose/internal/infra/cronparser"
)

func TestParser_NextAfter(t *testing.T) {
	t.Parallel()

	p := cronparser.New()

	t.Run("nightly restart", func(t *testing.T) {
		t.Parallel()

		after := time.Date(2026, 2, 15, 7, 0, 0, 0, time.UTC)
		next, err := p.NextAfter("30 4 * * *", "", after)
		require.NoError(t, err)
		require.Equal(t, time.Date(2026, 2, 16, 4, 30, 0, 0, time.UTC), next.UTC())
	})

	t.Run("descriptor", func(t *testing.T) {
		t.Parallel()

		after := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
		next, err := p.NextAfter("@daily", "", after)
		require.NoError(t, err)
		require.Equal(t, time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), next.UTC())
	})

	t.Run("timezone shifts the occurrence", func(t *testing.T) {
		t.Parallel()

		after := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
		next, err := p.NextAfter("0 8 * * *", "Europe/Berlin", after)
		require.NoError(t, err)
		require.Equal(t, time.Date(2026, 2, 16, 7, 0, 0, 0, time.UTC), next.UTC())
	})

	t.Run("inline CRON_TZ ignores tz param", func(t *testing.T) {
		t.Parallel()

		after := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
		next, err := p.NextAfter("CRON_TZ=UTC 0 14 * * *", "America/New_York", after)
		require.NoError(t, err)
		require.Equal(t, 14, next.UTC().Hour())
	})

	t.Run("malformed spec returns error", func(t *testing.T) {
		t.Parallel()

		_, err := p.NextAfter("invalid", "", time.Now())
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		giveSpec string
		giveTZ   string
		wantErr  bool
	}{
		{name: "five fields", giveSpec: "0 4 * * 1"},
		{name: "with timezone", giveSpec: "0 4 * * *", giveTZ: "Asia/Tokyo"},
		{name: "unknown timezone", giveSpec: "0 4 * * *", giveTZ: "Mars/Olympus", wantErr: true},
		{name: "seconds field is rejected", giveSpec: "0 0 4 * * *", wantErr: true},
		{name: "garbage", giveSpec: "nightly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := cronparser.Validate(tt.giveSpec, tt.giveTZ)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
		})
	}
}
