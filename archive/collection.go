package archive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ripkitten-co/idpcodec/codec"
	"github.com/ripkitten-co/idpcodec/internal/codecs"
	"github.com/ripkitten-co/idpcodec/internal/indexes"
	"github.com/ripkitten-co/idpcodec/internal/pg"
	"github.com/ripkitten-co/idpcodec/schema"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// CollectionOf stores records of one shape under a caller-chosen key.
type CollectionOf[T any] struct {
	name    string
	table   string
	fields  *codec.Struct[T]
	key     func(*T) string
	exec    pg.Executor
	codec   codecs.Codec
	schema  *schema.Bootstrap
	logger  *slog.Logger
	indexes []indexes.Index
}

type CollectionOption func(*collectionConfig)

type collectionConfig struct {
	indexes []indexes.Index
}

// WithFieldIndex adds a btree index on a top-level wire member. Number and
// boolean members are indexed by value, matching how queries compare them.
func WithFieldIndex(wireName string) CollectionOption {
	return func(cfg *collectionConfig) {
		cfg.indexes = append(cfg.indexes, indexes.Index{Kind: indexes.Btree, Field: wireName})
	}
}

// WithGINIndex adds a GIN index over the whole document.
func WithGINIndex() CollectionOption {
	return func(cfg *collectionConfig) {
		cfg.indexes = append(cfg.indexes, indexes.Index{Kind: indexes.GIN})
	}
}

// Collection opens the named collection. table is registered for T and used
// to encode records and to validate query fields; when nil, the table
// already registered for T is used. Collection panics if T has no table,
// if a different table is already registered for T, or if an index names a
// member the table lacks.
func Collection[T any](b Backend, name string, table *codec.Struct[T], key func(*T) string, opts ...CollectionOption) *CollectionOf[T] {
	if table != nil {
		if registered := codec.Register(table); registered != table {
			panic(fmt.Sprintf("archive: collection %s: record type already has table %s", name, registered.Name()))
		}
	} else if registered, ok := codec.For[T](); ok {
		table = registered
	} else {
		panic(fmt.Sprintf("archive: collection %s: no field table registered for record type", name))
	}
	if key == nil {
		panic(fmt.Sprintf("archive: collection %s: nil key function", name))
	}

	var cfg collectionConfig
	for _, o := range opts {
		o(&cfg)
	}
	for i, idx := range cfg.indexes {
		if idx.Kind != indexes.Btree {
			continue
		}
		kind, ok := table.FieldKind(idx.Field)
		if !ok {
			panic(fmt.Sprintf("archive: collection %s: index on unknown member %q of %s", name, idx.Field, table.Name()))
		}
		cfg.indexes[i].Cast = memberCast(kind)
	}

	be := b.archiveBackend()
	return &CollectionOf[T]{
		name:    name,
		table:   schema.TableName(name),
		fields:  table,
		key:     key,
		exec:    be.exec,
		codec:   be.codec,
		schema:  be.schema,
		logger:  be.logger,
		indexes: cfg.indexes,
	}
}

// Name returns the collection name.
func (c *CollectionOf[T]) Name() string { return c.name }

func (c *CollectionOf[T]) ensure(ctx context.Context) error {
	if err := c.schema.EnsureCollection(ctx, c.exec, c.name); err != nil {
		return err
	}
	return c.schema.EnsureIndexes(ctx, c.exec, c.name, c.indexes)
}

func (c *CollectionOf[T]) encode(op string, rec *T) (string, []byte, error) {
	if rec == nil {
		return "", nil, fmt.Errorf("collection %s: %s: nil record: %w", c.name, op, codec.ErrInvalidArgument)
	}
	id := c.key(rec)
	if id == "" {
		return "", nil, fmt.Errorf("collection %s: %s: %w", c.name, op, ErrEmptyKey)
	}
	data, err := c.codec.Marshal(rec)
	if err != nil {
		return "", nil, fmt.Errorf("collection %s: %s %s: marshal: %w", c.name, op, id, err)
	}
	return id, data, nil
}

// Insert stores a new record at version 1.
func (c *CollectionOf[T]) Insert(ctx context.Context, rec *T) error {
	if err := c.ensure(ctx); err != nil {
		return err
	}

	id, data, err := c.encode("insert", rec)
	if err != nil {
		return err
	}

	sql, args, err := psql.Insert(c.table).
		Columns("id", "shape", "data").
		Values(id, c.fields.Name(), data).
		ToSql()
	if err != nil {
		return fmt.Errorf("collection %s: insert %s: build sql: %w", c.name, id, err)
	}

	if _, err := c.exec.Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pg.UniqueViolation {
			return fmt.Errorf("collection %s: insert %s: %w", c.name, id, ErrDuplicateID)
		}
		return fmt.Errorf("collection %s: insert %s: %w", c.name, id, err)
	}
	return nil
}

// Put inserts or replaces a record and returns its new version: 1 for a
// new key, one more than the stored version otherwise.
func (c *CollectionOf[T]) Put(ctx context.Context, rec *T) (int, error) {
	if err := c.ensure(ctx); err != nil {
		return 0, err
	}

	id, data, err := c.encode("put", rec)
	if err != nil {
		return 0, err
	}

	sql, args, err := psql.Insert(c.table).
		Columns("id", "shape", "data").
		Values(id, c.fields.Name(), data).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, shape = EXCLUDED.shape, version = %s.version + 1, updated_at = now() RETURNING version",
			c.table)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("collection %s: put %s: build sql: %w", c.name, id, err)
	}

	var version int
	if err := c.exec.QueryRow(ctx, sql, args...).Scan(&version); err != nil {
		return 0, fmt.Errorf("collection %s: put %s: %w", c.name, id, err)
	}
	c.logger.DebugContext(ctx, "archived record", "collection", c.name, "id", id, "version", version)
	return version, nil
}

// PutMany puts each record in turn. Failures are collected into a
// *BatchError; records before and after a failure are still attempted.
// Run it on a Session to make the batch atomic.
func (c *CollectionOf[T]) PutMany(ctx context.Context, recs []*T) error {
	var failed map[string]error
	for i, rec := range recs {
		if _, err := c.Put(ctx, rec); err != nil {
			if failed == nil {
				failed = make(map[string]error)
			}
			k := fmt.Sprintf("#%d", i)
			if rec != nil && c.key(rec) != "" {
				k = c.key(rec)
			}
			failed[k] = err
		}
	}
	if failed != nil {
		return &BatchError{Op: "put", Total: len(recs), Errors: failed}
	}
	return nil
}

// Load returns the record stored under id.
func (c *CollectionOf[T]) Load(ctx context.Context, id string) (*T, error) {
	rec, _, err := c.LoadVersion(ctx, id)
	return rec, err
}

// LoadVersion returns the record stored under id and its version.
func (c *CollectionOf[T]) LoadVersion(ctx context.Context, id string) (*T, int, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, 0, err
	}

	sql, args, err := psql.Select("data", "version").From(c.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("collection %s: load %s: build sql: %w", c.name, id, err)
	}

	var data []byte
	var version int
	err = c.exec.QueryRow(ctx, sql, args...).Scan(&data, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, fmt.Errorf("collection %s: load %s: %w", c.name, id, ErrNotFound)
		}
		return nil, 0, fmt.Errorf("collection %s: load %s: %w", c.name, id, err)
	}

	var rec T
	if err := c.codec.Unmarshal(data, &rec); err != nil {
		return nil, 0, fmt.Errorf("collection %s: load %s: unmarshal: %w", c.name, id, err)
	}
	return &rec, version, nil
}

// Delete removes the record stored under id.
func (c *CollectionOf[T]) Delete(ctx context.Context, id string) error {
	if err := c.ensure(ctx); err != nil {
		return err
	}

	sql, args, err := psql.Delete(c.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("collection %s: delete %s: build sql: %w", c.name, id, err)
	}

	tag, err := c.exec.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("collection %s: delete %s: %w", c.name, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("collection %s: delete %s: %w", c.name, id, ErrNotFound)
	}
	return nil
}
