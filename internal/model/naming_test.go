package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSlug(t *testing.T) {
	valid := []string{"a", "app", "my-cool-app", "app2", "a1-b2-c3", "x-1"}
	for _, s := range valid {
		assert.NoError(t, ValidateSlug(s), "slug %q should be accepted", s)
	}

	invalid := []string{"My-App", "-app", "app-", "my--app", "1app", "my_app", "my app", "app.", "ümlaut"}
	for _, s := range invalid {
		err := ValidateSlug(s)
		assert.ErrorIs(t, err, ErrInvalidSlug, "slug %q should be rejected", s)
	}

	assert.ErrorIs(t, ValidateSlug(""), ErrSlugRequired)
}

func TestValidateAppID(t *testing.T) {
	valid := []string{"com.example.MyCoolApp", "org.gnome.Maps", "a.b", "io.github.user1.App2"}
	for _, id := range valid {
		assert.NoError(t, ValidateAppID(id), "app ID %q should be accepted", id)
	}

	invalid := []string{"", "MyApp", "com..example", "com.1example", ".com.example", "com.example.", "com.my-app.App"}
	for _, id := range invalid {
		assert.ErrorIs(t, ValidateAppID(id), ErrInvalidAppID, "app ID %q should be rejected", id)
	}
}

func TestDerivedNames(t *testing.T) {
	assert.Equal(t, "my_cool_app", SnakeCase("my-cool-app"))
	assert.Equal(t, "MyCoolApp", PascalCase("my-cool-app"))
	assert.Equal(t, "My Cool App", TitleCase("my-cool-app"))
	assert.Equal(t, "com.example.MyCoolApp", DefaultAppID("my-cool-app"))
	assert.Equal(t, "/com/example/MyCoolApp", ResourcePath("com.example.MyCoolApp"))
	assert.Equal(t, "App2go", PascalCase("app2go"))
}

func TestNewNamingProfile_Defaults(t *testing.T) {
	p, err := NewNamingProfile("my-cool-app", "", "")
	require.NoError(t, err)

	assert.Equal(t, "my-cool-app", p.Slug)
	assert.Equal(t, "com.example.MyCoolApp", p.AppID)
	assert.Equal(t, "My Cool App", p.DisplayName)
	assert.Equal(t, "my_cool_app", p.Module)
	assert.Equal(t, "MyCoolApp", p.ClassPrefix)
	assert.Equal(t, "/com/example/MyCoolApp", p.ResourcePath)
}

func TestNewNamingProfile_Explicit(t *testing.T) {
	p, err := NewNamingProfile("notes", "org.acme.Notes", "Acme Notes")
	require.NoError(t, err)

	assert.Equal(t, "org.acme.Notes", p.AppID)
	assert.Equal(t, "Acme Notes", p.DisplayName)
	assert.Equal(t, "/org/acme/Notes", p.ResourcePath)
	assert.Equal(t, "Notes", p.ClassPrefix)
}

func TestNewNamingProfile_Invalid(t *testing.T) {
	_, err := NewNamingProfile("Bad-Name", "", "")
	if !errors.Is(err, ErrInvalidSlug) {
		t.Errorf("expected ErrInvalidSlug, got %v", err)
	}

	_, err = NewNamingProfile("good", "single", "")
	if !errors.Is(err, ErrInvalidAppID) {
		t.Errorf("expected ErrInvalidAppID, got %v", err)
	}
}

func TestTemplateIdentity(t *testing.T) {
	p := TemplateIdentity()

	assert.Equal(t, "hello-fyne-go", p.Slug)
	assert.Equal(t, "com.example.HelloFyneGo", p.AppID)
	assert.Equal(t, "Hello Fyne Go", p.DisplayName)
	assert.Equal(t, "hello_fyne_go", p.Module)
	assert.Equal(t, "HelloFyneGo", p.ClassPrefix)
	assert.Equal(t, "/com/example/HelloFyneGo", p.ResourcePath)
}
