package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage grava cada chave como um documento JSON próprio dentro de um
// diretório de dados, o análogo local do armazenamento do navegador.
type FileStorage struct {
	dir string
}

// NewFileStorage cria um FileStorage sobre o diretório informado, criando-o
// se necessário
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("erro ao criar diretório de dados: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load implementa Storage.Load
func (s *FileStorage) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("erro ao ler chave %s: %w", key, err)
	}
	return data, nil
}

// Save implementa Storage.Save
func (s *FileStorage) Save(key string, value []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("erro ao gravar chave %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("erro ao gravar chave %s: %w", key, err)
	}
	return nil
}

// Delete implementa Storage.Delete
func (s *FileStorage) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("erro ao remover chave %s: %w", key, err)
	}
	return nil
}
