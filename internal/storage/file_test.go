package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawmart/storefront-go/internal/domain"
	"github.com/pawmart/storefront-go/internal/storage"
)

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := storage.NewFile(path)

	user := domain.User{
		ID:       int64(gofakeit.Number(1, 1000)),
		Email:    gofakeit.Email(),
		FullName: gofakeit.Name(),
		Phone:    gofakeit.Phone(),
		Role:     "CUSTOMER",
	}

	require.NoError(t, store.Save(user))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Empty(t, cmp.Diff(user, *loaded))
}

func TestFileLoadMissing(t *testing.T) {
	store := storage.NewFile(filepath.Join(t.TempDir(), "session.json"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := storage.NewFile(path).Load()
	require.Error(t, err)
}

func TestFileClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := storage.NewFile(path)

	require.NoError(t, store.Save(domain.User{ID: 1}))
	require.NoError(t, store.Clear())
	assert.NoFileExists(t, path)

	// clearing again is not an error
	require.NoError(t, store.Clear())
}
