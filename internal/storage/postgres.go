package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStorage persiste as chaves em uma única tabela chave/valor no
// PostgreSQL. O esquema é gerenciado pelas migrações em migrations/.
type PostgresStorage struct {
	db *pgxpool.Pool
}

// NewPostgresStorage cria uma nova instância de PostgresStorage
func NewPostgresStorage(db *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// Load implementa Storage.Load
func (s *PostgresStorage) Load(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(context.Background(),
		`SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("erro ao carregar chave %s: %w", key, err)
	}
	return value, nil
}

// Save implementa Storage.Save
func (s *PostgresStorage) Save(key string, value []byte) error {
	_, err := s.db.Exec(context.Background(),
		`INSERT INTO kv_store (key, value, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value)
	if err != nil {
		return fmt.Errorf("erro ao gravar chave %s: %w", key, err)
	}
	return nil
}

// Delete implementa Storage.Delete
func (s *PostgresStorage) Delete(key string) error {
	_, err := s.db.Exec(context.Background(),
		`DELETE FROM kv_store WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("erro ao remover chave %s: %w", key, err)
	}
	return nil
}
