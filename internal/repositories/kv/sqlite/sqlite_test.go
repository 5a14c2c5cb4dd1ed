package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *Repository {
	t.Helper()
	r, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	r := openMemory(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k1", []byte{0x01, 0x02}))

	v, err := r.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, v)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	r := openMemory(t)

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r := openMemory(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestList_ReturnsAllPairs(t *testing.T) {
	r := openMemory(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{0xAA}))
	require.NoError(t, r.Set(ctx, "b", []byte{0xBB, 0xCC}))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, []byte{0xAA}, m["a"])
	assert.Equal(t, []byte{0xBB, 0xCC}, m["b"])
}

func TestDelete_RemovesKey_AndIsIdempotent(t *testing.T) {
	r := openMemory(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", []byte{0x01}))
	require.NoError(t, r.Delete(ctx, "x"))

	v, err := r.Get(ctx, "x")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Delete(ctx, "x"))
}

func TestClear_RemovesAllKeys(t *testing.T) {
	r := openMemory(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{1}))
	require.NoError(t, r.Set(ctx, "b", []byte{2}))
	require.NoError(t, r.Clear(ctx))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestOpen_FilePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "accountbook.db")

	r, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, r.Set(ctx, "accounts", []byte(`{"accounts":[]}`)))
	require.NoError(t, r.Close())

	r, err = Open(ctx, path)
	require.NoError(t, err)
	defer r.Close()

	v, err := r.Get(ctx, "accounts")
	require.NoError(t, err)
	assert.Equal(t, `{"accounts":[]}`, string(v))
}

func TestErrorsAreWrapped_WhenDBClosed(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	r := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, err = r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get kv[k]")
	require.ErrorContains(t, r.Set(ctx, "k", []byte("v")), "failed to set kv[k]")
	require.ErrorContains(t, r.Delete(ctx, "k"), "failed to delete kv[k]")
	require.ErrorContains(t, r.Clear(ctx), "failed to clear kv")
	_, err = r.List(ctx)
	require.ErrorContains(t, err, "failed to list kv")
}

func TestRunMigrations_Error(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	err = RunMigrations(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='kv'`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestOpen_CreatesMissingDirectories(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "kv.db")

	repo, err := Open(ctx, path)
	require.NoError(t, err)
	defer repo.Close()

	require.NoError(t, repo.Set(ctx, "k", []byte("v")))
	require.FileExists(t, path)
}
