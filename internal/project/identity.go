package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/hello-fyne-go/internal/model"
)

// IdentityFileName is the file at the repository root that records the
// template's current names.
const IdentityFileName = "template.yaml"

type identityFile struct {
	Slug        string `yaml:"slug"`
	AppID       string `yaml:"app_id"`
	DisplayName string `yaml:"display_name"`
}

// LoadIdentity reads the naming profile stored at path. A missing file yields
// model.TemplateIdentity.
func LoadIdentity(path string) (model.NamingProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.TemplateIdentity(), nil
		}
		return model.NamingProfile{}, fmt.Errorf("failed to read identity file: %w", err)
	}
	var f identityFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return model.NamingProfile{}, fmt.Errorf("failed to parse identity file %s: %w", path, err)
	}
	p, err := model.NewNamingProfile(f.Slug, f.AppID, f.DisplayName)
	if err != nil {
		return model.NamingProfile{}, fmt.Errorf("identity file %s: %w", path, err)
	}
	return p, nil
}

// SaveIdentity writes p to path as YAML, creating parent directories.
func SaveIdentity(path string, p model.NamingProfile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(identityFile{
		Slug:        p.Slug,
		AppID:       p.AppID,
		DisplayName: p.DisplayName,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
