package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/example/hello-fyne-go/internal/model"
)

// Move is one file-name change.
type Move struct {
	From string
	To   string
}

// RenameFiles renames every file whose base name contains a rule's Old
// literal. Longer paths go first; each rule is applied to the result of the
// previous one.
func RenameFiles(files []string, rules model.RuleSet, dryRun bool, log zerolog.Logger) ([]Move, error) {
	ordered := append([]string(nil), files...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	var moves []Move
	for _, path := range ordered {
		for _, r := range rules {
			name := filepath.Base(path)
			if !strings.Contains(name, r.Old) {
				continue
			}
			target := filepath.Join(filepath.Dir(path), strings.ReplaceAll(name, r.Old, r.New))
			if !dryRun {
				if err := os.Rename(path, target); err != nil {
					return moves, fmt.Errorf("failed to rename %s: %w", path, err)
				}
			}
			log.Debug().Str("from", path).Str("to", target).Msg("file renamed")
			moves = append(moves, Move{From: path, To: target})
			path = target
		}
	}
	return moves, nil
}
