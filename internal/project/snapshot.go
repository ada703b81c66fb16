package project

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/piwi3910/FutonFrame/internal/model"
)

// SnapshotVersion is the version written into every snapshot.
const SnapshotVersion = "1.0.0"

// Snapshot records one calculation run: the design it used and what came out.
type Snapshot struct {
	ID           string             `json:"id"`
	Version      string             `json:"version"`
	CreatedAt    string             `json:"created_at"`
	Design       model.Design       `json:"design"`
	Measurements model.Measurements `json:"measurements"`
	CutList      []model.Member     `json:"cut_list"`
}

// NewSnapshot captures a run with a fresh ID and the current UTC time.
func NewSnapshot(d model.Design, m model.Measurements) Snapshot {
	return Snapshot{
		ID:           uuid.New().String(),
		Version:      SnapshotVersion,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Design:       d,
		Measurements: m,
		CutList:      model.CutList(d, m),
	}
}

// WriteSnapshot encodes a snapshot as indented JSON.
func WriteSnapshot(w io.Writer, s Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if s.Version == "" {
		return Snapshot{}, fmt.Errorf("invalid snapshot: missing version field")
	}
	if s.CutList == nil {
		s.CutList = []model.Member{}
	}
	return s, nil
}
