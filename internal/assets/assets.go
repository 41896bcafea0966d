// Package assets bundles the app's resources and resolves them by resource
// path, e.g. /com/example/HelloFyneGo/window.yaml.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/example/hello-fyne-go/internal/model"
)

//go:embed resources/window.yaml resources/icon.svg
var files embed.FS

var ErrNotFound = errors.New("resource not found")

// Prefix is the resource path all bundled files live under.
var Prefix = model.TemplateIdentity().ResourcePath

// WindowLayoutPath is the resource path of the main window's layout template.
var WindowLayoutPath = path.Join(Prefix, "window.yaml")

// Lookup returns the bundled file at resourcePath.
func Lookup(resourcePath string) ([]byte, error) {
	rel, ok := strings.CutPrefix(resourcePath, Prefix+"/")
	if !ok || rel == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, resourcePath)
	}
	data, err := files.ReadFile(path.Join("resources", rel))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, resourcePath)
	}
	return data, nil
}

// Icon returns the application icon.
func Icon() fyne.Resource {
	data, err := files.ReadFile("resources/icon.svg")
	if err != nil {
		return nil
	}
	return fyne.NewStaticResource("icon.svg", data)
}
