package archive

import (
	"context"
	"fmt"

	"github.com/ripkitten-co/idpcodec/internal/pg"
)

// Session wraps a PostgreSQL transaction spanning writes to any number of
// collections. Call Commit to persist them atomically, or Close/Rollback
// to discard them.
type Session struct {
	tx     *pg.Tx
	be     backend
	closed bool
}

func (s *Session) archiveBackend() *backend { return &s.be }

// Commit persists all operations in this session atomically.
func (s *Session) Commit(ctx context.Context) error {
	if s.closed {
		return fmt.Errorf("archive: commit: %w", ErrSessionClosed)
	}
	s.closed = true
	if err := s.tx.Commit(ctx); err != nil {
		return fmt.Errorf("archive: commit session: %w", err)
	}
	s.be.logger.DebugContext(ctx, "archive session committed")
	return nil
}

// Rollback discards all operations. Safe to call multiple times.
func (s *Session) Rollback(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.tx.Rollback(ctx); err != nil {
		return fmt.Errorf("archive: rollback session: %w", err)
	}
	s.be.logger.DebugContext(ctx, "archive session rolled back")
	return nil
}

// Close rolls back if not already committed. Safe to defer.
func (s *Session) Close(ctx context.Context) error {
	return s.Rollback(ctx)
}
