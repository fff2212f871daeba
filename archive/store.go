package archive

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ripkitten-co/idpcodec/codec"
	"github.com/ripkitten-co/idpcodec/internal/codecs"
	"github.com/ripkitten-co/idpcodec/internal/pg"
	"github.com/ripkitten-co/idpcodec/schema"
)

type backend struct {
	exec   pg.Executor
	codec  codecs.Codec
	schema *schema.Bootstrap
	logger *slog.Logger
}

// Backend is what collections run against: a Store or a Session.
type Backend interface {
	archiveBackend() *backend
}

// Store holds a PostgreSQL connection pool and the codec used for stored
// records.
type Store struct {
	pool *pg.Pool
	be   backend
}

// New connects to PostgreSQL and returns a configured Store.
func New(ctx context.Context, connString string, opts ...Option) (*Store, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}
	if cfg.codec == nil {
		cfg.codec = codecs.NewTable(codecs.NewJSONIter(), codec.WithTimestampFormat(cfg.timestamps))
	}

	pool, err := pg.NewPool(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}

	return &Store{
		pool: pool,
		be: backend{
			exec:   pool,
			codec:  cfg.codec,
			schema: schema.New(),
			logger: cfg.logger,
		},
	}, nil
}

// Close shuts down the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) archiveBackend() *backend { return &s.be }

// Session begins a transaction. Collections opened on the session write
// inside it until Commit.
func (s *Store) Session(ctx context.Context) (*Session, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("archive: begin session: %w", err)
	}
	return &Session{
		tx: tx,
		be: backend{
			exec:   tx,
			codec:  s.be.codec,
			schema: schema.New(),
			logger: s.be.logger,
		},
	}, nil
}
