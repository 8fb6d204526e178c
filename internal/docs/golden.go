package docs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/eventui/pkg/diff"
	eventerrors "github.com/alexisbeaulieu97/eventui/pkg/errors"
)

const goldenExt = ".golden"

// GoldenPath returns the snapshot file for page in dir.
func GoldenPath(dir string, page Page) string {
	return filepath.Join(dir, page.ID+goldenExt)
}

// UpdateGolden writes every page body to dir, creating it if needed.
func UpdateGolden(dir string, pages []Page) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create golden dir: %w", err)
	}
	for _, page := range pages {
		if err := os.WriteFile(GoldenPath(dir, page), []byte(page.Body), 0o644); err != nil {
			return fmt.Errorf("write golden %s: %w", page.ID, err)
		}
	}
	return nil
}

// CheckGolden compares every page with its snapshot. Each mismatch or
// missing snapshot is a SnapshotError carrying a unified diff; all of them
// are joined into the returned error.
func CheckGolden(dir string, pages []Page) error {
	var errs []error
	for _, page := range pages {
		path := GoldenPath(dir, page)
		want, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("read golden %s: %w", page.ID, err))
			continue
		}
		if d := diff.Unified(want, []byte(page.Body), path, page.ID); d != "" {
			errs = append(errs, eventerrors.NewSnapshotError(path, d))
		}
	}
	return errors.Join(errs...)
}
