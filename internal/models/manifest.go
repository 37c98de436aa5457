// ABOUTME: Build manifest describing one dataset build run.
// ABOUTME: Written alongside the dataset files as manifest.json.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Manifest records what a build run produced.
type Manifest struct {
	ID         uuid.UUID `json:"id"`
	Dataset    string    `json:"dataset"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Records    int       `json:"records"`
	Formats    []string  `json:"formats"`
	Outputs    []string  `json:"outputs"`
}

// NewManifest starts a manifest for the named dataset.
func NewManifest(dataset string) *Manifest {
	return &Manifest{
		ID:        uuid.New(),
		Dataset:   dataset,
		StartedAt: time.Now(),
	}
}

// Finish stamps the end time and record count.
func (m *Manifest) Finish(records int) {
	m.FinishedAt = time.Now()
	m.Records = records
}
