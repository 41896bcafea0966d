package rename

import (
	"io/fs"
	"path/filepath"
)

// DefaultSkipDirs are never descended into.
var DefaultSkipDirs = []string{
	".git", "build", "builddir", "_build", ".flatpak-builder", "build-flatpak",
	"__pycache__", ".uv", ".venv", "node_modules", "vendor", "fyne-cross", "dist",
}

// CollectFiles lists every regular file under root, pruning directories whose
// name is in skipDirs.
func CollectFiles(root string, skipDirs []string) ([]string, error) {
	skip := make(map[string]bool, len(skipDirs))
	for _, d := range skipDirs {
		skip[d] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skip[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
