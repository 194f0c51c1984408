package datapacks_test

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/minecraft-compose/internal/logic/datapacks"
	"github.com/skillcoder/minecraft-compose/internal/logic/datapacks/mocks"
)

const (
	testSourceDir  = "/srv/mc/datapacks"
	testInstallDir = "/srv/mc/data/world/datapacks"
)

func installed(name string) string {
	return filepath.Join(testInstallDir, name)
}

func source(name string) string {
	return filepath.Join(testSourceDir, name)
}

func newTestService(fs datapacks.Filesystem) *datapacks.Service {
	return datapacks.New(slog.New(slog.DiscardHandler), fs, testSourceDir, testInstallDir)
}

func TestService_Sync(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		givePacks     map[string]string
		giveInstalled []string
		giveSetup     func(fs *mocks.MockFilesystem)
		want          datapacks.Result
	}{
		{
			name:      "installs into an empty world",
			givePacks: map[string]string{"terralith": "Terralith_v2.zip", "tectonic": "tectonic.zip"},
			giveSetup: func(fs *mocks.MockFilesystem) {
				fs.EXPECT().Exists(source("Terralith_v2.zip")).Return(true, nil).Once()
				fs.EXPECT().Exists(source("tectonic.zip")).Return(true, nil).Once()
				fs.EXPECT().CopyFile(source("tectonic.zip"), installed("tectonic.zip")).Return(nil).Once()
				fs.EXPECT().CopyFile(source("Terralith_v2.zip"), installed("terralith.zip")).Return(nil).Once()
			},
			want: datapacks.Result{Installed: []string{"tectonic", "terralith"}},
		},
		{
			name:          "removes zips that are no longer listed",
			givePacks:     map[string]string{"terralith": "terralith.zip"},
			giveInstalled: []string{"old.zip", "terralith.zip", "notes.txt"},
			giveSetup: func(fs *mocks.MockFilesystem) {
				fs.EXPECT().Remove(installed("old.zip")).Return(nil).Once()
				fs.EXPECT().Exists(source("terralith.zip")).Return(true, nil).Once()
				fs.EXPECT().CopyFile(source("terralith.zip"), installed("terralith.zip")).Return(nil).Once()
			},
			want: datapacks.Result{
				Installed: []string{"terralith"},
				Removed:   []string{"old"},
			},
		},
		{
			name:          "empty table uninstalls everything",
			giveInstalled: []string{"a.zip", "b.zip"},
			giveSetup: func(fs *mocks.MockFilesystem) {
				fs.EXPECT().Remove(installed("a.zip")).Return(nil).Once()
				fs.EXPECT().Remove(installed("b.zip")).Return(nil).Once()
			},
			want: datapacks.Result{Removed: []string{"a", "b"}},
		},
		{
			name:      "skips a missing source",
			givePacks: map[string]string{"gone": "gone.zip", "kept": "kept.zip"},
			giveSetup: func(fs *mocks.MockFilesystem) {
				fs.EXPECT().Exists(source("gone.zip")).Return(false, nil).Once()
				fs.EXPECT().Exists(source("kept.zip")).Return(true, nil).Once()
				fs.EXPECT().CopyFile(source("kept.zip"), installed("kept.zip")).Return(nil).Once()
			},
			want: datapacks.Result{
				Installed: []string{"kept"},
				Skipped:   []string{"gone"},
			},
		},
		{
			name:      "absolute source is used as is",
			givePacks: map[string]string{"shared": "/opt/packs/shared.zip"},
			giveSetup: func(fs *mocks.MockFilesystem) {
				fs.EXPECT().Exists("/opt/packs/shared.zip").Return(true, nil).Once()
				fs.EXPECT().CopyFile("/opt/packs/shared.zip", installed("shared.zip")).Return(nil).Once()
			},
			want: datapacks.Result{Installed: []string{"shared"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := mocks.NewMockFilesystem(t)
			fs.EXPECT().MkdirAll(testInstallDir).Return(nil).Once()
			fs.EXPECT().ListFiles(testInstallDir).Return(tt.giveInstalled, nil).Once()
			tt.giveSetup(fs)

			got, err := newTestService(fs).Sync(t.Context(), tt.givePacks)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestService_SyncErrors(t *testing.T) {
	t.Parallel()

	errDisk := errors.New("no space left on device")

	t.Run("invalid name touches nothing", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewMockFilesystem(t)

		_, err := newTestService(fs).Sync(t.Context(), map[string]string{"../escape": "x.zip"})
		require.ErrorIs(t, err, datapacks.ErrInvalidName)
	})

	t.Run("copy failure stops the sync", func(t *testing.T) {
		t.Parallel()

		fs := mocks.NewMockFilesystem(t)
		fs.EXPECT().MkdirAll(testInstallDir).Return(nil).Once()
		fs.EXPECT().ListFiles(testInstallDir).Return(nil, nil).Once()
		fs.EXPECT().Exists(source("a.zip")).Return(true, nil).Once()
		fs.EXPECT().CopyFile(source("a.zip"), installed("a.zip")).Return(errDisk).Once()

		_, err := newTestService(fs).Sync(t.Context(), map[string]string{"a": "a.zip", "b": "b.zip"})
		require.ErrorIs(t, err, errDisk)
	})

	t.Run("cancelled context stops before copying", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		fs := mocks.NewMockFilesystem(t)
		fs.EXPECT().MkdirAll(testInstallDir).Return(nil).Once()
		fs.EXPECT().ListFiles(testInstallDir).Return(nil, nil).Once()

		_, err := newTestService(fs).Sync(ctx, map[string]string{"a": "a.zip"})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestValidName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want bool
	}{
		{give: "terralith", want: true},
		{give: "v1.2-pack", want: true},
		{give: "", want: false},
		{give: "..", want: false},
		{give: "a/b", want: false},
		{give: `a\b`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, datapacks.ValidName(tt.give))
		})
	}
}
