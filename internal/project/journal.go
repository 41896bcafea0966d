package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/example/hello-fyne-go/internal/model"
)

const journalVersion = "1.0.0"

// RenamedFile records one file-name change.
type RenamedFile struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Journal records what a rename run changed. There is no undo; the journal
// only tells the operator what happened.
type Journal struct {
	ID        string              `json:"id"`
	Version   string              `json:"version"`
	CreatedAt string              `json:"created_at"`
	DryRun    bool                `json:"dry_run"`
	From      model.NamingProfile `json:"from"`
	To        model.NamingProfile `json:"to"`
	Updated   []string            `json:"updated"`
	Renamed   []RenamedFile       `json:"renamed"`
}

// NewJournal starts a journal for a rename between two identities.
func NewJournal(from, to model.NamingProfile) Journal {
	return Journal{
		ID:        uuid.New().String(),
		Version:   journalVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		From:      from,
		To:        to,
		Updated:   []string{},
		Renamed:   []RenamedFile{},
	}
}

// WriteJournal writes j to path as indented JSON.
func WriteJournal(path string, j Journal) error {
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journal: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write journal file: %w", err)
	}
	return nil
}
