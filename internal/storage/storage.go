// Package storage provides the key-value stores that back the repository.
//
// Values are opaque byte slices, the repository stores JSON documents in them.
// Every Set replaces the complete value for its key. There are no
// transactions: two writers doing read-modify-write on the same key can
// overwrite each other.
package storage

import "errors"

var (
	ErrKeyNotFound = errors.New("no value is stored for the key")
	ErrGeneral     = errors.New("an error occurred in the storage backend")
)

// Storage is a synchronous key-value store.
type Storage interface {
	// Get returns the value for the key or ErrKeyNotFound.
	Get(key string) ([]byte, error)

	// Set stores the value for the key, replacing any previous value.
	Set(key string, value []byte) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}

// Pinger is implemented by stores that can check their backend connection.
type Pinger interface {
	Ping() error
}
