//go:build integration

package archive_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/ripkitten-co/idpcodec/archive"
	"github.com/ripkitten-co/idpcodec/codec"
	"github.com/ripkitten-co/idpcodec/internal/testutil"
	"github.com/ripkitten-co/idpcodec/model"
)

func setupStore(t *testing.T) *archive.Store {
	t.Helper()
	connStr := testutil.SetupPostgres(t)
	store, err := archive.New(context.Background(), connStr)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func byUsername(u *model.UserType) string { return aws.ToString(u.Username) }

func user(name string, enabled bool) *model.UserType {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &model.UserType{
		Username:       aws.String(name),
		Attributes:     model.Attributes(map[string]string{"email": name + "@example.com", "sub": "sub-" + name}),
		UserCreateDate: &created,
		Enabled:        aws.Bool(enabled),
		UserStatus:     ptr(model.UserStatusConfirmed),
	}
}

func ptr[T any](v T) *T { return &v }

func TestCollection_InsertAndLoad(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	users := archive.Collection(store, "users", nil, byUsername)

	if err := users.Insert(ctx, user("alice", true)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, version, err := users.LoadVersion(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if version != 1 {
		t.Errorf("version: got %d, want 1", version)
	}
	if got.Sub() != "sub-alice" || !aws.ToBool(got.Enabled) {
		t.Errorf("got %+v", got)
	}
	if got.UserStatus == nil || *got.UserStatus != model.UserStatusConfirmed {
		t.Errorf("status: got %v", got.UserStatus)
	}
	if !got.UserCreateDate.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("created: got %v", got.UserCreateDate)
	}
}

func TestCollection_StoresWireDocument(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	users := archive.Collection(store, "users", nil, byUsername)
	if err := users.Insert(ctx, user("alice", true)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	n, err := users.Where("UserCreateDate", "=", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)).Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("ISO timestamp match: got %d, want 1", n)
	}

	n, err = users.Where("shape", "=", "UserType").Count(ctx)
	if err != nil {
		t.Fatalf("count shape: %v", err)
	}
	if n != 1 {
		t.Errorf("shape: got %d, want 1", n)
	}
}

func TestCollection_InsertDuplicate(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	users := archive.Collection(store, "users", nil, byUsername)

	if err := users.Insert(ctx, user("alice", true)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	err := users.Insert(ctx, user("alice", false))
	if !errors.Is(err, archive.ErrDuplicateID) {
		t.Errorf("got %v, want ErrDuplicateID", err)
	}
}

func TestCollection_PutBumpsVersion(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	users := archive.Collection(store, "users", nil, byUsername)

	for want := 1; want <= 3; want++ {
		version, err := users.Put(ctx, user("alice", want%2 == 1))
		if err != nil {
			t.Fatalf("put %d: %v", want, err)
		}
		if version != want {
			t.Errorf("put %d: version %d", want, version)
		}
	}

	got, err := users.Load(ctx, "alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !aws.ToBool(got.Enabled) {
		t.Error("expected last put to win")
	}
}

func TestCollection_LoadNotFound(t *testing.T) {
	store := setupStore(t)
	users := archive.Collection(store, "users", nil, byUsername)

	_, err := users.Load(context.Background(), "nobody")
	if !errors.Is(err, archive.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestCollection_Delete(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	users := archive.Collection(store, "users", nil, byUsername)

	if _, err := users.Put(ctx, user("alice", true)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := users.Delete(ctx, "alice"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := users.Delete(ctx, "alice"); !errors.Is(err, archive.ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestCollection_PutManyCollectsFailures(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	users := archive.Collection(store, "users", nil, byUsername)

	err := users.PutMany(ctx, []*model.UserType{
		user("alice", true),
		{Enabled: aws.Bool(true)},
		user("bob", false),
	})

	var batch *archive.BatchError
	if !errors.As(err, &batch) {
		t.Fatalf("got %v, want *BatchError", err)
	}
	if batch.Total != 3 || len(batch.Errors) != 1 {
		t.Errorf("batch: %+v", batch)
	}
	if !errors.Is(batch.Errors["#1"], archive.ErrEmptyKey) {
		t.Errorf("#1: got %v, want ErrEmptyKey", batch.Errors["#1"])
	}

	n, err := users.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("count: got %d, want 2", n)
	}
}

func TestCollection_Query(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	users := archive.Collection(store, "users", nil, byUsername, archive.WithFieldIndex("Username"))

	for _, u := range []*model.UserType{user("carol", true), user("alice", true), user("bob", false)} {
		if _, err := users.Put(ctx, u); err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	got, err := users.Where("Enabled", "=", true).OrderBy("Username", archive.Asc).Execute(ctx)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(got) != 2 || byUsername(got[0]) != "alice" || byUsername(got[1]) != "carol" {
		names := make([]string, len(got))
		for i, u := range got {
			names[i] = byUsername(u)
		}
		t.Errorf("got %v, want [alice carol]", names)
	}

	page, err := users.Query().OrderBy("Username", archive.Desc).Limit(1).Offset(1).Execute(ctx)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if len(page) != 1 || byUsername(page[0]) != "bob" {
		t.Errorf("page: got %d records", len(page))
	}
}

func TestSession_CommitAndRollback(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	sess, err := store.Session(ctx)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	users := archive.Collection(sess, "users", nil, byUsername, archive.WithGINIndex())
	if err := users.PutMany(ctx, []*model.UserType{user("alice", true), user("bob", true)}); err != nil {
		t.Fatalf("put many: %v", err)
	}
	if err := sess.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := sess.Commit(ctx); !errors.Is(err, archive.ErrSessionClosed) {
		t.Errorf("second commit: got %v, want ErrSessionClosed", err)
	}

	discard, err := store.Session(ctx)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if _, err := archive.Collection(discard, "users", nil, byUsername).Put(ctx, user("carol", true)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := discard.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}

	n, err := archive.Collection(store, "users", nil, byUsername).Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("count: got %d, want 2", n)
	}
}

func TestCollection_RawDocumentIsWireJSON(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	users := archive.Collection(store, "users", nil, byUsername)

	if _, err := users.Put(ctx, user("alice", true)); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := users.Where("Username", "=", "alice").Execute(ctx)
	if err != nil || len(got) != 1 {
		t.Fatalf("execute: %v (%d)", err, len(got))
	}
	raw, err := model.UserTypeTable.MarshalValue(got[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := doc["UserStatus"]; !ok {
		t.Errorf("wire names missing: %s", raw)
	}
}

type login struct {
	ID       *string
	Attempts *int32
	At       *time.Time
}

var loginTable = codec.Register(codec.NewStruct("Login",
	codec.Member("ID", codec.String, func(r *login) **string { return &r.ID }),
	codec.Member("Attempts", codec.Int32, func(r *login) **int32 { return &r.Attempts }),
	codec.Member("At", codec.Timestamp, func(r *login) **time.Time { return &r.At }),
))

func loginIDs(recs []*login) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = aws.ToString(r.ID)
	}
	return ids
}

func TestCollection_QueryComparesByValue(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	logins := []*login{
		{ID: aws.String("a"), Attempts: aws.Int32(5), At: aws.Time(base)},
		{ID: aws.String("b"), Attempts: aws.Int32(10), At: aws.Time(base.Add(500 * time.Millisecond))},
		{ID: aws.String("c"), Attempts: aws.Int32(9), At: aws.Time(base.Add(-time.Second))},
	}

	for _, format := range []codec.TimestampFormat{codec.ISO8601, codec.EpochSeconds} {
		t.Run(format.String(), func(t *testing.T) {
			store, err := archive.New(context.Background(), testutil.SetupPostgres(t), archive.WithTimestampFormat(format))
			if err != nil {
				t.Fatalf("create store: %v", err)
			}
			t.Cleanup(store.Close)
			ctx := context.Background()

			col := archive.Collection(store, "logins", loginTable, func(r *login) string { return aws.ToString(r.ID) },
				archive.WithFieldIndex("Attempts"))
			if err := col.PutMany(ctx, logins); err != nil {
				t.Fatalf("put many: %v", err)
			}

			got, err := col.Where("Attempts", ">", 5).OrderBy("Attempts", archive.Asc).Execute(ctx)
			if err != nil {
				t.Fatalf("attempts: %v", err)
			}
			if ids := loginIDs(got); len(ids) != 2 || ids[0] != "c" || ids[1] != "b" {
				t.Errorf("attempts > 5: got %v, want [c b]", ids)
			}

			got, err = col.Where("At", ">", base).Execute(ctx)
			if err != nil {
				t.Fatalf("after: %v", err)
			}
			if ids := loginIDs(got); len(ids) != 1 || ids[0] != "b" {
				t.Errorf("at > base: got %v, want [b]", ids)
			}

			got, err = col.Query().OrderBy("At", archive.Desc).Execute(ctx)
			if err != nil {
				t.Fatalf("order: %v", err)
			}
			if ids := loginIDs(got); len(ids) != 3 || ids[0] != "b" || ids[1] != "a" || ids[2] != "c" {
				t.Errorf("order by at desc: got %v, want [b a c]", ids)
			}
		})
	}
}
