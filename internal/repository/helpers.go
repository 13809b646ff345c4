package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// timeLayout keeps sub-second precision so raw durations survive a round trip.
const timeLayout = time.RFC3339Nano

// encodeNotes serializes notes as a JSON array; nil becomes "[]".
func encodeNotes(notes []string) (string, error) {
	if notes == nil {
		notes = []string{}
	}
	b, err := json.Marshal(notes)
	if err != nil {
		return "", fmt.Errorf("encoding notes: %w", err)
	}
	return string(b), nil
}

// decodeNotes parses a JSON array of notes, mapping failures to ErrCorrupt.
func decodeNotes(raw string) ([]string, error) {
	notes := []string{}
	if raw == "" {
		return notes, nil
	}
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		return nil, fmt.Errorf("decoding notes %q: %w", raw, ErrCorrupt)
	}
	return notes, nil
}

// parseTimestamp parses a stored timestamp, mapping failures to ErrCorrupt.
func parseTimestamp(raw string) (time.Time, error) {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", raw, ErrCorrupt)
	}
	return t, nil
}

// scanCorrupt reports a row whose stored values do not fit their fields.
// Rows.Scan only fails on conversion once Next has fetched the row.
func scanCorrupt(what string, err error) error {
	return fmt.Errorf("scanning %s: %w: %w", what, ErrCorrupt, err)
}
