package identity

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"shop-list-api/models"
)

// userIDKey é a chave fixa sob a qual o identificador anônimo fica salvo
const userIDKey = "userId"

// Storage é um armazenamento local de chave-valor. Get devolve string
// vazia quando a chave não existe.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// FileStorage guarda cada chave como um arquivo dentro de baseDir
type FileStorage struct {
	baseDir string
}

func NewFileStorage(baseDir string) *FileStorage {
	return &FileStorage{baseDir: baseDir}
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.baseDir, key)
}

func (f *FileStorage) Get(key string) (string, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return string(data), nil
}

func (f *FileStorage) Set(key, value string) error {
	if err := os.MkdirAll(f.baseDir, 0o700); err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	if err := os.WriteFile(f.path(key), []byte(value), 0o600); err != nil {
		return fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}
	return nil
}

// Provider resolve o identificador anônimo estável desta instalação
type Provider struct {
	storage Storage
}

func NewProvider(storage Storage) *Provider {
	return &Provider{storage: storage}
}

// GetOrCreateUserID lê o identificador persistido; se ainda não existir,
// gera um UUID novo, persiste e devolve. O valor nunca é rotacionado.
func (p *Provider) GetOrCreateUserID() (string, error) {
	id, err := p.storage.Get(userIDKey)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id = uuid.New().String()
	if err := p.storage.Set(userIDKey, id); err != nil {
		return "", err
	}
	return id, nil
}
