package indexes

import "fmt"

// Kind selects the index method.
type Kind int

const (
	// Btree indexes one top-level wire member, as text or cast to Cast.
	Btree Kind = iota
	// GIN indexes the whole JSONB document for containment queries.
	GIN
)

// Index describes an index on an archive table. Field is a wire name and
// Cast an optional SQL type for its text; both are ignored for GIN.
type Index struct {
	Kind  Kind
	Field string
	Cast  string
}

func create(concurrent bool) string {
	if concurrent {
		return "CREATE INDEX CONCURRENTLY IF NOT EXISTS"
	}
	return "CREATE INDEX IF NOT EXISTS"
}

func btreeDDL(table string, idx Index, concurrent bool) string {
	expr := fmt.Sprintf("data->>'%s'", idx.Field)
	if idx.Cast != "" {
		expr = fmt.Sprintf("(%s)::%s", expr, idx.Cast)
	}
	return fmt.Sprintf("%s idx_%s_%s ON %s ((%s))",
		create(concurrent), table, idx.Field, table, expr)
}

func ginDDL(table string, concurrent bool) string {
	return fmt.Sprintf("%s idx_%s_data_gin ON %s USING GIN (data)",
		create(concurrent), table, table)
}

// Name returns the index name used for idx on table.
func Name(table string, idx Index) string {
	if idx.Kind == GIN {
		return fmt.Sprintf("idx_%s_data_gin", table)
	}
	return fmt.Sprintf("idx_%s_%s", table, idx.Field)
}

// DDLs returns one statement per index. CONCURRENTLY cannot run inside a
// transaction block, so callers in a transaction pass concurrent=false.
func DDLs(table string, idxs []Index, concurrent bool) []string {
	if len(idxs) == 0 {
		return nil
	}
	ddls := make([]string, 0, len(idxs))
	for _, idx := range idxs {
		switch idx.Kind {
		case Btree:
			ddls = append(ddls, btreeDDL(table, idx, concurrent))
		case GIN:
			ddls = append(ddls, ginDDL(table, concurrent))
		}
	}
	return ddls
}
