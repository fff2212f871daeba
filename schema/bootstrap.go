package schema

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/ripkitten-co/idpcodec/internal/indexes"
	"github.com/ripkitten-co/idpcodec/internal/pg"
)

// TablePrefix is prepended to every archive collection name.
const TablePrefix = "idp_"

var validName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]{0,54}$`)

// ValidateCollectionName checks that name is a valid collection identifier
// (alphanumeric + underscores, max 55 characters, starts with a letter).
func ValidateCollectionName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("schema: invalid collection name %q: must be alphanumeric with underscores, max 55 chars", name)
	}
	return nil
}

// TableName returns the table backing a collection.
func TableName(collection string) string { return TablePrefix + collection }

func collectionDDL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id TEXT PRIMARY KEY,
	shape TEXT NOT NULL,
	data JSONB NOT NULL,
	version INTEGER NOT NULL DEFAULT 1,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`, table)
}

// Bootstrap manages idempotent creation of archive tables and indexes.
// It caches what it has created to avoid repeated DDL.
type Bootstrap struct {
	tables  sync.Map
	indexes sync.Map
}

// New returns a Bootstrap with empty caches.
func New() *Bootstrap {
	return &Bootstrap{}
}

// IsCreated reports whether the named table has been created in this session.
func (b *Bootstrap) IsCreated(table string) bool {
	_, ok := b.tables.Load(table)
	return ok
}

// IsIndexCreated reports whether the named index has been created in this session.
func (b *Bootstrap) IsIndexCreated(name string) bool {
	_, ok := b.indexes.Load(name)
	return ok
}

// EnsureCollection creates the table for name if it doesn't exist.
func (b *Bootstrap) EnsureCollection(ctx context.Context, exec pg.Executor, name string) error {
	if err := ValidateCollectionName(name); err != nil {
		return err
	}
	table := TableName(name)
	if _, ok := b.tables.Load(table); ok {
		return nil
	}
	if _, err := exec.Exec(ctx, collectionDDL(table)); err != nil {
		return fmt.Errorf("schema: create table %s: %w", table, err)
	}
	b.tables.Store(table, true)
	return nil
}

// EnsureIndexes creates the given indexes on a collection's table. Inside
// a transaction the indexes are built without CONCURRENTLY.
func (b *Bootstrap) EnsureIndexes(ctx context.Context, exec pg.Executor, name string, idxs []indexes.Index) error {
	table := TableName(name)
	concurrent := !pg.InTransaction(exec)
	for _, idx := range idxs {
		iname := indexes.Name(table, idx)
		if _, ok := b.indexes.Load(iname); ok {
			continue
		}
		ddl := indexes.DDLs(table, []indexes.Index{idx}, concurrent)
		if len(ddl) == 0 {
			continue
		}
		if _, err := exec.Exec(ctx, ddl[0]); err != nil {
			return fmt.Errorf("schema: create index %s: %w", iname, err)
		}
		b.indexes.Store(iname, true)
	}
	return nil
}
