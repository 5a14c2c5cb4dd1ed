package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_SetGetOverwrite(t *testing.T) {
	r := New()
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestRepository_GetMissing_ReturnsNilNil(t *testing.T) {
	v, err := New().Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRepository_ValuesAreCopied(t *testing.T) {
	r := New()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, r.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	out[0] = 'Y'
	again, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestRepository_DeleteListClear(t *testing.T) {
	r := New()
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{1}))
	require.NoError(t, r.Set(ctx, "b", []byte{2}))
	require.NoError(t, r.Delete(ctx, "a"))
	require.NoError(t, r.Delete(ctx, "a"))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"b": {2}}, m)

	require.NoError(t, r.Clear(ctx))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
	assert.NoError(t, r.Close())
}

func TestRepository_CanceledContext(t *testing.T) {
	r := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, r.Set(ctx, "k", []byte{1}), context.Canceled)
	_, err := r.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
