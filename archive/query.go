package archive

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ripkitten-co/idpcodec/codec"
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

type orderByClause struct {
	field     string
	direction Direction
}

var knownColumns = map[string]bool{
	"id": true, "shape": true, "version": true, "created_at": true, "updated_at": true,
}

var allowedOps = map[string]bool{
	"=": true, "!=": true,
	">": true, "<": true,
	">=": true, "<=": true,
}

type condition struct {
	field string
	op    string
	value any
}

// Query filters a collection by row columns or top-level wire members.
// Number, boolean and timestamp members compare by value; other members
// compare as text. Each builder method returns a new Query.
type Query[T any] struct {
	col        *CollectionOf[T]
	conditions []condition
	orderBys   []orderByClause
	limit      *uint64
	offset     *uint64
}

func (q *Query[T]) clone() *Query[T] {
	c := &Query[T]{
		col:    q.col,
		limit:  q.limit,
		offset: q.offset,
	}
	if len(q.conditions) > 0 {
		c.conditions = make([]condition, len(q.conditions))
		copy(c.conditions, q.conditions)
	}
	if len(q.orderBys) > 0 {
		c.orderBys = make([]orderByClause, len(q.orderBys))
		copy(c.orderBys, q.orderBys)
	}
	return c
}

func (c *CollectionOf[T]) Query() *Query[T] {
	return &Query[T]{col: c}
}

func (c *CollectionOf[T]) Where(field, op string, value any) *Query[T] {
	return c.Query().Where(field, op, value)
}

func (q *Query[T]) Where(field, op string, value any) *Query[T] {
	c := q.clone()
	c.conditions = append(c.conditions, condition{field, op, value})
	return c
}

func (q *Query[T]) OrderBy(field string, dir Direction) *Query[T] {
	c := q.clone()
	c.orderBys = append(c.orderBys, orderByClause{field, dir})
	return c
}

func (q *Query[T]) Limit(n uint64) *Query[T] {
	c := q.clone()
	c.limit = &n
	return c
}

func (q *Query[T]) Offset(n uint64) *Query[T] {
	c := q.clone()
	c.offset = &n
	return c
}

// resolveField maps a row column to itself and a wire member of the
// collection's table to an expression over the stored document, cast so
// numbers, booleans and timestamps compare by value. Anything else is
// rejected, which keeps caller text out of the SQL.
func (q *Query[T]) resolveField(field string) (string, codec.Kind, error) {
	if field == "" {
		return "", codec.KindOther, fmt.Errorf("query: empty field name")
	}
	if knownColumns[field] {
		return field, codec.KindOther, nil
	}
	kind, ok := q.col.fields.FieldKind(field)
	if !ok {
		return "", codec.KindOther, fmt.Errorf("query: %s has no member %q", q.col.fields.Name(), field)
	}
	return memberExpr(field, kind), kind, nil
}

// memberCast is the SQL type a member's text is cast to, or "" for text.
func memberCast(kind codec.Kind) string {
	switch kind {
	case codec.KindNumber:
		return "numeric"
	case codec.KindBool:
		return "boolean"
	}
	return ""
}

// memberExpr accepts timestamps in either wire format, since the store's
// timestamp format is configurable.
func memberExpr(field string, kind codec.Kind) string {
	text := fmt.Sprintf("data->>'%s'", field)
	if kind == codec.KindTimestamp {
		return fmt.Sprintf(
			"CASE jsonb_typeof(data->'%s') WHEN 'number' THEN to_timestamp((%s)::double precision) ELSE (%s)::timestamptz END",
			field, text, text)
	}
	if cast := memberCast(kind); cast != "" {
		return fmt.Sprintf("(%s)::%s", text, cast)
	}
	return text
}

func (q *Query[T]) where(builder sq.SelectBuilder) (sq.SelectBuilder, error) {
	for _, c := range q.conditions {
		if !allowedOps[c.op] {
			return builder, fmt.Errorf("query: unsupported operator %q", c.op)
		}
		expr, kind, err := q.resolveField(c.field)
		if err != nil {
			return builder, err
		}
		value := c.value
		if !knownColumns[c.field] {
			if value, err = memberArg(kind, value); err != nil {
				return builder, fmt.Errorf("query: %s: %w", c.field, err)
			}
		}
		builder = builder.Where(sq.Expr(fmt.Sprintf("%s %s ?", expr, c.op), value))
	}
	return builder, nil
}

func (q *Query[T]) toSQL() (string, []any, error) {
	builder, err := q.where(psql.Select("id", "data", "version").From(q.col.table))
	if err != nil {
		return "", nil, err
	}

	for _, o := range q.orderBys {
		if o.direction != Asc && o.direction != Desc {
			return "", nil, fmt.Errorf("query: invalid direction %q", o.direction)
		}
		expr, _, err := q.resolveField(o.field)
		if err != nil {
			return "", nil, err
		}
		builder = builder.OrderBy(fmt.Sprintf("%s %s", expr, o.direction))
	}
	if q.limit != nil {
		builder = builder.Limit(*q.limit)
	}
	if q.offset != nil {
		builder = builder.Offset(*q.offset)
	}
	return builder.ToSql()
}

func (q *Query[T]) countSQL() (string, []any, error) {
	builder, err := q.where(psql.Select("count(*)").From(q.col.table))
	if err != nil {
		return "", nil, err
	}
	return builder.ToSql()
}

// Execute returns the matching records.
func (q *Query[T]) Execute(ctx context.Context) ([]*T, error) {
	sql, args, err := q.toSQL()
	if err != nil {
		return nil, err
	}
	if err := q.col.ensure(ctx); err != nil {
		return nil, err
	}

	rows, err := q.col.exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query: execute: %w", err)
	}
	defer rows.Close()

	var results []*T
	for rows.Next() {
		var id string
		var data []byte
		var version int
		if err := rows.Scan(&id, &data, &version); err != nil {
			return nil, fmt.Errorf("query: scan: %w", err)
		}

		var rec T
		if err := q.col.codec.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("query: unmarshal %s: %w", id, err)
		}
		results = append(results, &rec)
	}
	return results, rows.Err()
}

// Count returns the number of matching records, ignoring Limit and Offset.
func (q *Query[T]) Count(ctx context.Context) (int64, error) {
	sql, args, err := q.countSQL()
	if err != nil {
		return 0, err
	}
	if err := q.col.ensure(ctx); err != nil {
		return 0, err
	}
	var n int64
	if err := q.col.exec.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("query: count: %w", err)
	}
	return n, nil
}

// memberArg converts a comparison value to the Go type bound against a
// member of the given kind.
func memberArg(kind codec.Kind, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	switch kind {
	case codec.KindNumber:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return rv.Int(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if rv.Uint() > math.MaxInt64 {
				return nil, fmt.Errorf("%d overflows a numeric comparison", rv.Uint())
			}
			return int64(rv.Uint()), nil
		case reflect.Float32, reflect.Float64:
			return rv.Float(), nil
		}
	case codec.KindBool:
		if rv.Kind() == reflect.Bool {
			return rv.Bool(), nil
		}
	case codec.KindTimestamp:
		if t, ok := rv.Interface().(time.Time); ok {
			return t.UTC(), nil
		}
	default:
		return textArg(rv.Interface()), nil
	}
	return nil, fmt.Errorf("%s member compared with %T", kind, v)
}

// textArg renders a comparison value the way a string member appears in
// the stored JSON text.
func textArg(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case fmt.Stringer:
		return x.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}
	return v
}
