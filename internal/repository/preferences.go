package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/smart-budget/backend/internal/models"
	"github.com/smart-budget/backend/internal/storage"
)

// Tokens maps user IDs to their current token.
type Tokens struct {
	store storage.Storage
}

func (r Tokens) all() (map[string]string, error) {
	tokens := map[string]string{}

	data, err := r.store.Get(KeyTokens)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return tokens, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", KeyTokens, err)
	}

	err = json.Unmarshal(data, &tokens)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", storage.ErrGeneral, KeyTokens, err)
	}

	return tokens, nil
}

func (r Tokens) save(tokens map[string]string) error {
	data, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", KeyTokens, err)
	}

	return r.store.Set(KeyTokens, data)
}

// Save stores the token for the user, replacing the previous one.
func (r Tokens) Save(userID uuid.UUID, token string) error {
	tokens, err := r.all()
	if err != nil {
		return err
	}

	tokens[userID.String()] = token
	return r.save(tokens)
}

func (r Tokens) Get(userID uuid.UUID) (string, bool, error) {
	tokens, err := r.all()
	if err != nil {
		return "", false, err
	}

	token, ok := tokens[userID.String()]
	return token, ok, nil
}

func (r Tokens) Remove(userID uuid.UUID) error {
	tokens, err := r.all()
	if err != nil {
		return err
	}

	if _, ok := tokens[userID.String()]; !ok {
		return nil
	}

	delete(tokens, userID.String())
	return r.save(tokens)
}

// Preferences holds the settings shared by all users of the store.
type Preferences struct {
	store storage.Storage
}

// Theme returns the stored theme, light if none is set.
func (r Preferences) Theme() (models.Theme, error) {
	data, err := r.store.Get(KeyTheme)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return models.ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", KeyTheme, err)
	}

	var theme models.Theme
	err = json.Unmarshal(data, &theme)
	if err != nil || theme.Validate() != nil {
		return models.ThemeLight, nil
	}

	return theme, nil
}

func (r Preferences) SetTheme(theme models.Theme) error {
	err := theme.Validate()
	if err != nil {
		return err
	}

	data, err := json.Marshal(theme)
	if err != nil {
		return err
	}

	return r.store.Set(KeyTheme, data)
}
