package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/hello-fyne-go/internal/model"
)

func TestLoadIdentityMissingFile(t *testing.T) {
	p, err := LoadIdentity(filepath.Join(t.TempDir(), IdentityFileName))
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if p != model.TemplateIdentity() {
		t.Errorf("expected template identity, got %+v", p)
	}
}

func TestSaveAndLoadIdentity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", IdentityFileName)

	want, err := model.NewNamingProfile("sample-app", "org.sample.SampleApp", "Sample App")
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveIdentity(path, want); err != nil {
		t.Fatalf("SaveIdentity failed: %v", err)
	}

	got, err := LoadIdentity(path)
	if err != nil {
		t.Fatalf("LoadIdentity failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if got.ClassPrefix != "SampleApp" {
		t.Errorf("expected derived class prefix SampleApp, got %s", got.ClassPrefix)
	}
}

func TestLoadIdentityDerivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), IdentityFileName)
	if err := os.WriteFile(path, []byte("slug: sample-app\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadIdentity(path)
	if err != nil {
		t.Fatalf("LoadIdentity failed: %v", err)
	}
	if p.AppID != "com.example.SampleApp" {
		t.Errorf("expected derived app ID, got %s", p.AppID)
	}
	if p.DisplayName != "Sample App" {
		t.Errorf("expected derived display name, got %s", p.DisplayName)
	}
}

func TestLoadIdentityInvalidSlug(t *testing.T) {
	path := filepath.Join(t.TempDir(), IdentityFileName)
	if err := os.WriteFile(path, []byte("slug: Not_Valid\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadIdentity(path)
	if !errors.Is(err, model.ErrInvalidSlug) {
		t.Fatalf("expected ErrInvalidSlug, got %v", err)
	}
}

func TestLoadIdentityInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), IdentityFileName)
	if err := os.WriteFile(path, []byte("slug: [unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadIdentity(path); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}
