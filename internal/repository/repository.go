// Package repository maps each entity collection onto one JSON array stored
// under a fixed key in the local store. Every mutation is a full
// read-modify-write of that array, serialized per repository; there is no
// atomicity across keys.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dukatrack-backend/store"
)

// ErrNotFound is returned when an entity does not exist in its collection.
var ErrNotFound = errors.New("repository: not found")

// loadList reads and decodes the JSON array stored under key. A missing key
// reads as an empty list.
func loadList[T any](ctx context.Context, kv store.Store, key string) ([]T, error) {
	raw, err := kv.Get(ctx, key)
	if err == store.ErrKeyNotFound {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	var list []T
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return list, nil
}

// saveList encodes the list and writes the full array back under key.
func saveList[T any](ctx context.Context, kv store.Store, key string, list []T) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return kv.Set(ctx, key, string(raw))
}

// loadObject reads a single JSON object stored under key.
func loadObject[T any](ctx context.Context, kv store.Store, key string) (*T, error) {
	raw, err := kv.Get(ctx, key)
	if err == store.ErrKeyNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var obj T
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return &obj, nil
}

// saveObject writes a single JSON object under key.
func saveObject[T any](ctx context.Context, kv store.Store, key string, obj *T) error {
	raw, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return kv.Set(ctx, key, string(raw))
}
