package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/smart-budget/backend/internal/storage"
	"golang.org/x/exp/slices"
)

// collection is a list of entities stored as one JSON array under one key.
//
// Every operation reads the whole array and every write replaces it.
type collection[T any] struct {
	store storage.Storage
	key   string
	id    func(T) uuid.UUID
	setID func(*T, uuid.UUID)
}

func (c collection[T]) all() ([]T, error) {
	data, err := c.store.Get(c.key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []T{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.key, err)
	}

	items := []T{}
	err = json.Unmarshal(data, &items)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", storage.ErrGeneral, c.key, err)
	}

	return items, nil
}

func (c collection[T]) save(items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.key, err)
	}

	err = c.store.Set(c.key, data)
	if err != nil {
		return fmt.Errorf("writing %s: %w", c.key, err)
	}

	log.Debug().Str("key", c.key).Int("count", len(items)).Msg("Repository")
	return nil
}

// filter returns all items for which keep returns true, in stored order.
func (c collection[T]) filter(keep func(T) bool) ([]T, error) {
	items, err := c.all()
	if err != nil {
		return nil, err
	}

	result := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}

	return result, nil
}

func (c collection[T]) find(id uuid.UUID) (T, bool, error) {
	var zero T

	items, err := c.all()
	if err != nil {
		return zero, false, err
	}

	i := slices.IndexFunc(items, func(item T) bool { return c.id(item) == id })
	if i == -1 {
		return zero, false, nil
	}

	return items[i], true, nil
}

func (c collection[T]) create(items ...T) ([]T, error) {
	stored, err := c.all()
	if err != nil {
		return nil, err
	}

	for i := range items {
		c.setID(&items[i], uuid.New())
	}

	err = c.save(append(stored, items...))
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (c collection[T]) update(item T) (T, error) {
	items, err := c.all()
	if err != nil {
		return item, err
	}

	i := slices.IndexFunc(items, func(stored T) bool { return c.id(stored) == c.id(item) })
	if i == -1 {
		return item, nil
	}

	items[i] = item
	return item, c.save(items)
}

func (c collection[T]) delete(id uuid.UUID) error {
	items, err := c.all()
	if err != nil {
		return err
	}

	count := len(items)
	kept := slices.DeleteFunc(items, func(item T) bool { return c.id(item) == id })
	if len(kept) == count {
		return nil
	}

	return c.save(kept)
}
