package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
	appIDPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*(\.[a-zA-Z][a-zA-Z0-9]*)+$`)
)

var (
	ErrSlugRequired = errors.New("project name is required")
	ErrInvalidSlug  = errors.New("project name must be lowercase-with-hyphens (e.g. my-cool-app)")
	ErrInvalidAppID = errors.New("invalid application ID (e.g. com.mycompany.MyApp)")
)

// NamingProfile holds every spelling of a project's name that appears in the
// template. Build it with NewNamingProfile; the derived fields are never set
// independently.
type NamingProfile struct {
	Slug         string `json:"slug" yaml:"slug"`
	AppID        string `json:"app_id" yaml:"app_id"`
	DisplayName  string `json:"display_name" yaml:"display_name"`
	Module       string `json:"module" yaml:"-"`
	ClassPrefix  string `json:"class_prefix" yaml:"-"`
	ResourcePath string `json:"resource_path" yaml:"-"`
}

// NewNamingProfile validates the slug and application ID and derives the
// remaining forms. An empty appID or displayName falls back to the value
// derived from the slug.
func NewNamingProfile(slug, appID, displayName string) (NamingProfile, error) {
	if err := ValidateSlug(slug); err != nil {
		return NamingProfile{}, err
	}
	if appID == "" {
		appID = DefaultAppID(slug)
	}
	if err := ValidateAppID(appID); err != nil {
		return NamingProfile{}, err
	}
	if displayName == "" {
		displayName = TitleCase(slug)
	}
	return NamingProfile{
		Slug:         slug,
		AppID:        appID,
		DisplayName:  displayName,
		Module:       SnakeCase(slug),
		ClassPrefix:  PascalCase(slug),
		ResourcePath: ResourcePath(appID),
	}, nil
}

// TemplateIdentity is the identity the template ships with.
func TemplateIdentity() NamingProfile {
	p, err := NewNamingProfile("hello-fyne-go", "com.example.HelloFyneGo", "Hello Fyne Go")
	if err != nil {
		panic(fmt.Sprintf("template identity is invalid: %v", err))
	}
	return p
}

// ValidateSlug reports whether slug is a lowercase, hyphen-separated name
// starting with a letter.
func ValidateSlug(slug string) error {
	if slug == "" {
		return ErrSlugRequired
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	return nil
}

// ValidateAppID reports whether id is a reverse-DNS identifier with at least
// two segments, each starting with a letter.
func ValidateAppID(id string) error {
	if !appIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidAppID, id)
	}
	return nil
}

// SnakeCase turns my-cool-app into my_cool_app.
func SnakeCase(slug string) string {
	return strings.ReplaceAll(slug, "-", "_")
}

// PascalCase turns my-cool-app into MyCoolApp.
func PascalCase(slug string) string {
	var b strings.Builder
	for _, word := range strings.Split(slug, "-") {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// TitleCase turns my-cool-app into My Cool App.
func TitleCase(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// DefaultAppID suggests an application ID for a slug.
func DefaultAppID(slug string) string {
	return "com.example." + PascalCase(slug)
}

// ResourcePath turns com.example.MyCoolApp into /com/example/MyCoolApp.
func ResourcePath(appID string) string {
	return "/" + strings.Join(strings.Split(appID, "."), "/")
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(word string) string {
	if word == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}
