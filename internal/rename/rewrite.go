package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/example/hello-fyne-go/internal/model"
)

// RewriteOptions control the content pass.
type RewriteOptions struct {
	Skip   map[string]bool // Absolute paths left untouched
	DryRun bool
	Logger zerolog.Logger
}

// RewriteContents applies rules to the text of every file and writes back the
// ones that changed. Files that cannot be read or are not UTF-8 text are
// skipped. It returns the files whose content changed.
func RewriteContents(files []string, rules model.RuleSet, opts RewriteOptions) ([]string, error) {
	var updated []string
	for _, path := range files {
		if opts.Skip[absPath(path)] {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			opts.Logger.Debug().Str("file", path).Err(err).Msg("skipping unreadable file")
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			opts.Logger.Debug().Str("file", path).Err(err).Msg("skipping unreadable file")
			continue
		}
		if !utf8.Valid(data) {
			opts.Logger.Debug().Str("file", path).Msg("skipping non-text file")
			continue
		}

		content := string(data)
		rewritten := rules.Apply(content)
		if rewritten == content {
			continue
		}
		if !opts.DryRun {
			if err := os.WriteFile(path, []byte(rewritten), info.Mode().Perm()); err != nil {
				return updated, fmt.Errorf("failed to write %s: %w", path, err)
			}
		}
		opts.Logger.Debug().Str("file", path).Msg("content updated")
		updated = append(updated, path)
	}
	return updated, nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
