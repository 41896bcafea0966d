package rename

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/hello-fyne-go/internal/model"
	"github.com/example/hello-fyne-go/internal/project"
)

func sampleIdentity(t *testing.T) model.NamingProfile {
	t.Helper()
	p, err := model.NewNamingProfile("sample-app", "org.sample.SampleApp", "Sample App")
	require.NoError(t, err)
	return p
}

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

// sampleTree lays out a miniature copy of the template.
func sampleTree(t *testing.T) string {
	root := t.TempDir()
	writeFile(t, root, "go.mod", "module github.com/example/sample-app\n")
	writeFile(t, root, "cmd/sample-app/main.go", `package main

const appID = "org.sample.SampleApp"

func main() { run("Sample App", "/org/sample/SampleApp/window.yaml") }
`)
	writeFile(t, root, "internal/ui/window.go", "type SampleAppWindow struct{}\n")
	writeFile(t, root, "data/org.sample.SampleApp.desktop", "Name=Sample App\nExec=sample-app\n")
	writeFile(t, root, "data/sample-app.svg", "<svg/>")
	writeFile(t, root, "bin/sample_app.dat", "\xff\xfeSampleApp")
	writeFile(t, root, ".git/config", "url = sample-app\n")
	writeFile(t, root, "build/sample-app", "sample-app")
	writeFile(t, root, "README.md", "Nothing to see.\n")
	return root
}

func TestCollectFilesSkipsBlocklist(t *testing.T) {
	root := sampleTree(t)

	files, err := CollectFiles(root, DefaultSkipDirs)
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, _ := filepath.Rel(root, f)
		rel = append(rel, filepath.ToSlash(r))
	}
	sort.Strings(rel)
	assert.Equal(t, []string{
		"README.md",
		"bin/sample_app.dat",
		"cmd/sample-app/main.go",
		"data/org.sample.SampleApp.desktop",
		"data/sample-app.svg",
		"go.mod",
		"internal/ui/window.go",
	}, rel)
}

func TestRenamerRun(t *testing.T) {
	root := sampleTree(t)
	to, err := model.NewNamingProfile("my-cool-app", "", "")
	require.NoError(t, err)

	r := &Renamer{Root: root, From: sampleIdentity(t), Logger: zerolog.Nop()}
	res, err := r.Run(to)
	require.NoError(t, err)

	assert.Equal(t, "module github.com/example/my-cool-app\n", readFile(t, root, "go.mod"))

	main := readFile(t, root, "cmd/sample-app/main.go")
	assert.Contains(t, main, `const appID = "com.example.MyCoolApp"`)
	assert.Contains(t, main, `run("My Cool App", "/com/example/MyCoolApp/window.yaml")`)

	assert.Equal(t, "type MyCoolAppWindow struct{}\n", readFile(t, root, "internal/ui/window.go"))
	assert.Equal(t, "Name=My Cool App\nExec=my-cool-app\n", readFile(t, root, "data/com.example.MyCoolApp.desktop"))
	assert.Equal(t, "<svg/>", readFile(t, root, "data/my-cool-app.svg"))

	// Excluded and binary files are untouched.
	assert.Equal(t, "url = sample-app\n", readFile(t, root, ".git/config"))
	assert.Equal(t, "sample-app", readFile(t, root, "build/sample-app"))
	assert.Equal(t, "\xff\xfeSampleApp", readFile(t, root, "bin/sample_app.dat"))

	assert.Len(t, res.Updated, 4)
	assert.Len(t, res.Moves, 2)

	// Directories are not renamed, only files.
	_, err = os.Stat(filepath.Join(root, "cmd", "sample-app", "main.go"))
	assert.NoError(t, err)
}

func TestRenamerDryRunLeavesTree(t *testing.T) {
	root := sampleTree(t)
	to, _ := model.NewNamingProfile("my-cool-app", "", "")

	r := &Renamer{Root: root, From: sampleIdentity(t), DryRun: true, Logger: zerolog.Nop()}
	res, err := r.Run(to)
	require.NoError(t, err)

	assert.Len(t, res.Updated, 4)
	assert.Len(t, res.Moves, 2)
	assert.Equal(t, "module github.com/example/sample-app\n", readFile(t, root, "go.mod"))
	assert.Equal(t, "<svg/>", readFile(t, root, "data/sample-app.svg"))
}

func TestRenamerSkipsListedFiles(t *testing.T) {
	root := sampleTree(t)
	self := filepath.Join(root, "go.mod")
	to, _ := model.NewNamingProfile("my-cool-app", "", "")

	r := &Renamer{Root: root, From: sampleIdentity(t), Skip: []string{self}, Logger: zerolog.Nop()}
	_, err := r.Run(to)
	require.NoError(t, err)

	assert.Equal(t, "module github.com/example/sample-app\n", readFile(t, root, "go.mod"))
}

func TestRewriteKeepsPermissions(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "run.sh", "#!/bin/sh\nexec sample-app\n")
	require.NoError(t, os.Chmod(path, 0755))

	to, _ := model.NewNamingProfile("my-cool-app", "", "")
	rules := model.ContentRules(sampleIdentity(t), to)

	updated, err := RewriteContents([]string{path}, rules, RewriteOptions{Logger: zerolog.Nop()})
	require.NoError(t, err)
	require.Len(t, updated, 1)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	assert.Equal(t, "#!/bin/sh\nexec my-cool-app\n", readFile(t, root, "run.sh"))
}

func TestRenameFilesChainsRules(t *testing.T) {
	root := t.TempDir()
	// The name holds both the app ID and the slug.
	path := writeFile(t, root, "org.sample.SampleApp-sample-app.txt", "")

	to, _ := model.NewNamingProfile("my-cool-app", "", "")
	moves, err := RenameFiles([]string{path}, model.FileNameRules(sampleIdentity(t), to), false, zerolog.Nop())
	require.NoError(t, err)

	require.Len(t, moves, 2)
	assert.Equal(t, filepath.Join(root, "com.example.MyCoolApp-my-cool-app.txt"), moves[1].To)
	_, err = os.Stat(moves[1].To)
	assert.NoError(t, err)
}

func TestRenameFilesLongestPathFirst(t *testing.T) {
	root := t.TempDir()
	short := writeFile(t, root, "sample-app.txt", "")
	long := writeFile(t, root, "nested/deeper/sample-app.txt", "")

	to, _ := model.NewNamingProfile("my-cool-app", "", "")
	moves, err := RenameFiles([]string{short, long}, model.FileNameRules(sampleIdentity(t), to), true, zerolog.Nop())
	require.NoError(t, err)

	require.Len(t, moves, 2)
	assert.Equal(t, long, moves[0].From)
	assert.True(t, strings.HasSuffix(moves[1].To, "my-cool-app.txt"))
}

func TestRenamerSingleWordSlugTwice(t *testing.T) {
	root := sampleTree(t)
	identity := filepath.Join(root, project.IdentityFileName)

	notes, err := model.NewNamingProfile("notes", "org.acme.Notes", "")
	require.NoError(t, err)
	first := &Renamer{Root: root, From: sampleIdentity(t), IdentityPath: identity, Logger: zerolog.Nop()}
	_, err = first.Run(notes)
	require.NoError(t, err)
	assert.Equal(t, "type NotesWindow struct{}\n", readFile(t, root, "internal/ui/window.go"))

	loaded, err := project.LoadIdentity(identity)
	require.NoError(t, err)
	assert.Equal(t, notes, loaded)

	to, err := model.NewNamingProfile("my-cool-app", "", "")
	require.NoError(t, err)
	second := &Renamer{Root: root, From: loaded, IdentityPath: identity, Logger: zerolog.Nop()}
	_, err = second.Run(to)
	require.NoError(t, err)

	assert.Equal(t, "module github.com/example/my-cool-app\n", readFile(t, root, "go.mod"))
	assert.Equal(t, "type MyCoolAppWindow struct{}\n", readFile(t, root, "internal/ui/window.go"))
	assert.Equal(t, "<svg/>", readFile(t, root, "data/my-cool-app.svg"))

	loaded, err = project.LoadIdentity(identity)
	require.NoError(t, err)
	assert.Equal(t, "my-cool-app", loaded.Slug)
}

func TestRenamerDryRunKeepsIdentityFile(t *testing.T) {
	root := sampleTree(t)
	identity := filepath.Join(root, project.IdentityFileName)
	to, _ := model.NewNamingProfile("my-cool-app", "", "")

	r := &Renamer{Root: root, From: sampleIdentity(t), DryRun: true, IdentityPath: identity, Logger: zerolog.Nop()}
	_, err := r.Run(to)
	require.NoError(t, err)

	_, err = os.Stat(identity)
	assert.True(t, os.IsNotExist(err))
}
