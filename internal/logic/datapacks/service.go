package datapacks

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
)

// installedExt is the extension of every datapack the service installs.
// Other files in the world datapacks directory are left alone.
const installedExt = ".zip"

// Result lists what a sync changed, each sorted by datapack name.
type Result struct {
	Installed []string `json:"installed"`
	Removed   []string `json:"removed"`
	Skipped   []string `json:"skipped"`
}

// Service makes the world datapacks directory match the configured set.
type Service struct {
	logger     *slog.Logger
	fs         Filesystem
	sourceDir  string
	installDir string
}

// New creates a datapack service. Relative sources resolve against
// sourceDir; packs are installed into installDir as <name>.zip.
func New(logger *slog.Logger, fs Filesystem, sourceDir, installDir string) *Service {
	return &Service{
		logger:     logger.With("component", "datapacks"),
		fs:         fs,
		sourceDir:  sourceDir,
		installDir: installDir,
	}
}

// ValidName reports whether name can be used as an installed file name.
func ValidName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`)
}

// Sync uninstalls packs that are no longer configured and then copies every
// configured pack from its source. A missing source is skipped with a
// warning and does not fail the sync.
func (s *Service) Sync(ctx context.Context, packs map[string]string) (Result, error) {
	var result Result

	for name := range packs {
		if !ValidName(name) {
			return result, fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}

	if err := s.fs.MkdirAll(s.installDir); err != nil {
		return result, fmt.Errorf("sync datapacks: %w", err)
	}

	installed, err := s.fs.ListFiles(s.installDir)
	if err != nil {
		return result, fmt.Errorf("sync datapacks: %w", err)
	}

	slices.Sort(installed)

	for _, file := range installed {
		name, ok := strings.CutSuffix(file, installedExt)
		if !ok {
			continue
		}

		if _, keep := packs[name]; keep {
			continue
		}

		if err := s.fs.Remove(filepath.Join(s.installDir, file)); err != nil {
			return result, fmt.Errorf("uninstall datapack %s: %w", name, err)
		}

		s.logger.InfoContext(ctx, "datapack uninstalled", "datapack", name)
		result.Removed = append(result.Removed, name)
	}

	names := make([]string, 0, len(packs))
	for name := range packs {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("sync datapacks: %w", err)
		}

		src := s.sourcePath(packs[name])
		logger := s.logger.With("datapack", name, "source", src)

		exists, err := s.fs.Exists(src)
		if err != nil {
			return result, fmt.Errorf("install datapack %s: %w", name, err)
		}

		if !exists {
			logger.WarnContext(ctx, "datapack source not found, skipping")
			result.Skipped = append(result.Skipped, name)

			continue
		}

		if err := s.fs.CopyFile(src, filepath.Join(s.installDir, name+installedExt)); err != nil {
			return result, fmt.Errorf("install datapack %s: %w", name, err)
		}

		logger.InfoContext(ctx, "datapack installed")
		result.Installed = append(result.Installed, name)
	}

	return result, nil
}

func (s *Service) sourcePath(source string) string {
	if filepath.IsAbs(source) {
		return source
	}

	return filepath.Join(s.sourceDir, source)
}
