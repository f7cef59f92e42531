package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "life-sim-save-v1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "life-sim-save-v1", []byte(`{"day":2}`)))
	got, err := s.Get(ctx, "life-sim-save-v1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":2}`, string(got))

	// Перезапись
	require.NoError(t, s.Put(ctx, "life-sim-save-v1", []byte(`{"day":3}`)))
	got, err = s.Get(ctx, "life-sim-save-v1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":3}`, string(got))

	// Изменение возвращенного буфера не портит хранилище
	got[0] = 'X'
	again, err := s.Get(ctx, "life-sim-save-v1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":3}`, string(again))
}

func TestMemoryStore(t *testing.T) {
	testStoreContract(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(filepath.Join(dir, "saves"))
	require.NoError(t, err)

	testStoreContract(t, s)

	// Временных файлов не остается
	entries, err := os.ReadDir(s.Dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "life-sim-save-v1.json", entries[0].Name())
}

func TestFileStore_KeyCannotEscapeDir(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Put(context.Background(), "../../evil", []byte(`{}`)))
	assert.Equal(t, s.Dir, filepath.Dir(s.path("../../evil")))
}

// countingStore считает обращения к нижнему хранилищу
type countingStore struct {
	Store
	gets int
	fail error
}

func (c *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	c.gets++
	return c.Store.Get(ctx, key)
}

func (c *countingStore) Put(ctx context.Context, key string, value []byte) error {
	if c.fail != nil {
		return c.fail
	}
	return c.Store.Put(ctx, key, value)
}

func TestCachedStore(t *testing.T) {
	ctx := context.Background()
	backend := &countingStore{Store: NewMemoryStore()}

	s, err := NewCachedStore(backend, 4)
	require.NoError(t, err)

	testStoreContract(t, s)

	// После Put чтения идут из кэша
	before := backend.gets
	_, err = s.Get(ctx, "life-sim-save-v1")
	require.NoError(t, err)
	assert.Equal(t, before, backend.gets)

	// Ошибка записи сбрасывает кэш, чтобы не отдавать неподтвержденные данные
	backend.fail = errors.New("disk full")
	assert.Error(t, s.Put(ctx, "life-sim-save-v1", []byte(`{"day":9}`)))
	got, err := s.Get(ctx, "life-sim-save-v1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":3}`, string(got))
	assert.Equal(t, before+1, backend.gets)
}

func TestNewCachedStore_InvalidSize(t *testing.T) {
	_, err := NewCachedStore(NewMemoryStore(), 0)
	assert.Error(t, err)
}
