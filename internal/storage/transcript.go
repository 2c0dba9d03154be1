package storage

import (
	"context"
	"fmt"
	"time"
)

// TranscriptEntry is one line of the persisted chat log. The log is
// append-only and owned by the UI layer; the query engine never reads it.
type TranscriptEntry struct {
	CriadoEm time.Time
	Quem     string
	Texto    string
}

// AppendTranscript records one chat line.
func (s *Store) AppendTranscript(ctx context.Context, quem, texto string) error {
	if quem == "" || texto == "" {
		return fmt.Errorf("transcript entry cannot be empty")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transcript (quem, texto) VALUES (?, ?)`, quem, texto)
	if err != nil {
		return fmt.Errorf("failed to append transcript: %w", err)
	}
	return nil
}

// ListTranscript returns the most recent chat lines, newest first, capped
// at limit.
func (s *Store) ListTranscript(ctx context.Context, limit int) ([]TranscriptEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT quem, texto, criado_em FROM transcript
		ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transcript: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []TranscriptEntry
	for rows.Next() {
		var e TranscriptEntry
		if err := rows.Scan(&e.Quem, &e.Texto, &e.CriadoEm); err != nil {
			return nil, fmt.Errorf("failed to scan transcript entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
