package storage

import (
	"context"
	"fmt"
)

// SlotKey names the slot holding the encoded video list
const SlotKey = "encrypted_videos"

// Substrate is a string key-value store. Get reports ok=false when the key
// holds no value.
type Substrate interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// IOError wraps a failed read or write against a substrate
type IOError struct {
	Op  string // "get" or "set"
	Key string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
