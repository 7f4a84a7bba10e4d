package identity

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-list-api/models"
)

var errStorageDown = errors.New("storage down")

// failingStorage simula um armazenamento local indisponível
type failingStorage struct {
	failGet bool
	failSet bool
	data    map[string]string
}

func (f *failingStorage) Get(key string) (string, error) {
	if f.failGet {
		return "", errStorageDown
	}
	return f.data[key], nil
}

func (f *failingStorage) Set(key, value string) error {
	if f.failSet {
		return errStorageDown
	}
	if f.data == nil {
		f.data = make(map[string]string)
	}
	f.data[key] = value
	return nil
}

func TestGetOrCreateUserIDGeneratesAndPersists(t *testing.T) {
	provider := NewProvider(NewFileStorage(t.TempDir()))

	first, err := provider.GetOrCreateUserID()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// o valor gerado precisa ser um UUID válido
	_, err = uuid.Parse(first)
	assert.NoError(t, err)

	// a segunda chamada lê o que a primeira persistiu
	second, err := provider.GetOrCreateUserID()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetOrCreateUserIDStableAcrossProviders(t *testing.T) {
	dir := t.TempDir()

	first, err := NewProvider(NewFileStorage(dir)).GetOrCreateUserID()
	require.NoError(t, err)

	// outro provider sobre o mesmo diretório vê o mesmo identificador
	second, err := NewProvider(NewFileStorage(dir)).GetOrCreateUserID()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetOrCreateUserIDPrePopulated(t *testing.T) {
	storage := &failingStorage{data: map[string]string{"userId": "abc-123"}}
	provider := NewProvider(storage)

	id, err := provider.GetOrCreateUserID()
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)

	again, err := provider.GetOrCreateUserID()
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestGetOrCreateUserIDStorageFailures(t *testing.T) {
	_, err := NewProvider(&failingStorage{failGet: true}).GetOrCreateUserID()
	assert.Error(t, err)

	_, err = NewProvider(&failingStorage{failSet: true}).GetOrCreateUserID()
	assert.Error(t, err)
}

func TestFileStorageUnreadableDir(t *testing.T) {
	// baseDir que ainda não existe: chave ausente, não erro
	dir := t.TempDir()
	storage := NewFileStorage(dir + "/not-a-dir/child")

	v, err := storage.Get("userId")
	assert.NoError(t, err) // chave ausente não é erro
	assert.Empty(t, v)
}

func TestFileStorageSetErrorKind(t *testing.T) {
	storage := NewFileStorage("/proc/shoplist-no-write")

	err := storage.Set("userId", "x")
	assert.ErrorIs(t, err, models.ErrStorageUnavailable)
}
