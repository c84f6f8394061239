// Package account registers, logs in and saves players on top of a store.
package account

import (
	"context"
	"errors"
	"fmt"

	"learnmaths/internal/store"
	"learnmaths/internal/user"
)

var (
	ErrUserExists  = errors.New("This superhero name and secret number are already taken! Try different ones.")
	ErrUnknownUser = errors.New(`We don't know you yet! Use "register" to join the fun!`)
)

// Service performs account operations against a store.
type Service struct {
	store store.Store
}

// NewService returns a Service backed by s.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Register creates a new record for the credentials.
func (s *Service) Register(ctx context.Context, username, code string) (user.Record, error) {
	username, code = user.NormalizeCredentials(username, code)
	if err := user.ValidateCredentials(username, code); err != nil {
		return user.Record{}, err
	}
	key := user.Key(username, code)
	_, exists, err := s.store.Get(ctx, key)
	if err != nil {
		return user.Record{}, fmt.Errorf("register: %w", err)
	}
	if exists {
		return user.Record{}, ErrUserExists
	}
	record := user.NewRecord(username, code)
	if err := s.store.Put(ctx, key, record); err != nil {
		return user.Record{}, fmt.Errorf("register: %w", err)
	}
	return record, nil
}

// Welcome returns the greeting shown after registering.
func Welcome(username string) string {
	return fmt.Sprintf("Welcome to the team, %s! Let's start learning! 🎉", username)
}

// Login returns the record matching the credentials.
func (s *Service) Login(ctx context.Context, username, code string) (user.Record, error) {
	username, code = user.NormalizeCredentials(username, code)
	if err := user.ValidateCredentials(username, code); err != nil {
		return user.Record{}, err
	}
	record, ok, err := s.store.Get(ctx, user.Key(username, code))
	if err != nil {
		return user.Record{}, fmt.Errorf("login: %w", err)
	}
	if !ok {
		return user.Record{}, ErrUnknownUser
	}
	return record, nil
}

// Save persists an updated record under its own key.
func (s *Service) Save(ctx context.Context, record user.Record) error {
	if err := s.store.Put(ctx, record.Key(), record); err != nil {
		return fmt.Errorf("save %s: %w", record.Username, err)
	}
	return nil
}
