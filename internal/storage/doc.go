package storage

// Package storage provides the key-value substrate behind the persistent
// slot: a single string value per key, read and overwritten wholesale.
