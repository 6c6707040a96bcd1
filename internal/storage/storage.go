package storage

import "errors"

// ErrKeyNotFound é retornado quando não há valor persistido para a chave
var ErrKeyNotFound = errors.New("chave não encontrada")

// Storage é a porta de persistência chave/valor do sistema. Cada coleção é
// gravada integralmente sob uma chave fixa, serializada como JSON.
type Storage interface {
	// Load carrega o valor persistido da chave; ErrKeyNotFound quando ausente
	Load(key string) ([]byte, error)

	// Save grava o valor da chave, substituindo o conteúdo anterior
	Save(key string, value []byte) error

	// Delete remove a chave; remover uma chave ausente não é erro
	Delete(key string) error
}
