// Package rename re-brands the template by rewriting its names in file
// contents and file names.
package rename

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/example/hello-fyne-go/internal/model"
	"github.com/example/hello-fyne-go/internal/project"
)

// Result summarises a rename run.
type Result struct {
	Updated []string
	Moves   []Move
}

// Renamer rewrites the tree under Root from one identity to another.
type Renamer struct {
	Root     string
	From     model.NamingProfile
	SkipDirs []string
	Skip     []string // Files never rewritten, e.g. the running executable
	DryRun   bool

	// IdentityPath, when set, receives the new names after a successful run
	// so the next run starts from them.
	IdentityPath string
	Logger   zerolog.Logger
}

// Run rewrites file contents first and renames files second, on a fresh
// listing, so that no file is renamed while its content is being processed.
// There is no rollback: an error leaves the tree partially renamed.
func (r *Renamer) Run(to model.NamingProfile) (Result, error) {
	content := model.ContentRules(r.From, to)
	names := model.FileNameRules(r.From, to)
	if err := content.Validate(); err != nil {
		return Result{}, err
	}
	if err := names.Validate(); err != nil {
		return Result{}, err
	}

	skipDirs := r.SkipDirs
	if skipDirs == nil {
		skipDirs = DefaultSkipDirs
	}
	skip := make(map[string]bool, len(r.Skip))
	for _, s := range r.Skip {
		skip[absPath(s)] = true
	}

	files, err := CollectFiles(r.Root, skipDirs)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list files: %w", err)
	}
	r.Logger.Debug().Int("files", len(files)).Str("root", r.Root).Msg("content pass")

	var res Result
	res.Updated, err = RewriteContents(files, content, RewriteOptions{Skip: skip, DryRun: r.DryRun, Logger: r.Logger})
	if err != nil {
		return res, err
	}

	files, err = CollectFiles(r.Root, skipDirs)
	if err != nil {
		return res, fmt.Errorf("failed to list files: %w", err)
	}
	res.Moves, err = RenameFiles(files, names, r.DryRun, r.Logger)
	if err != nil || r.DryRun || r.IdentityPath == "" {
		return res, err
	}
	if err := project.SaveIdentity(r.IdentityPath, to); err != nil {
		return res, fmt.Errorf("failed to record new identity: %w", err)
	}
	return res, nil
}

// Rel returns p relative to the renamer's root, for display.
func (r *Renamer) Rel(p string) string {
	if rel, err := filepath.Rel(r.Root, p); err == nil {
		return rel
	}
	return p
}
