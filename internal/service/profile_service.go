package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/you/login-tut/internal/cache"
	"github.com/you/login-tut/internal/model"
)

// ProfileRepository persists profile records.
type ProfileRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.Profile, error)
	Upsert(ctx context.Context, username, email, phoneNumber, photo string) error
	Create(ctx context.Context, p *model.Profile) error
	Update(ctx context.Context, username, email, phoneNumber, photo string) error
}

// ProfileService handles profile reads and the three write pathways
// (upsert, strict create, update-existing-only).
type ProfileService struct {
	repo  ProfileRepository
	cache *cache.ProfileCache
}

func NewProfileService(r ProfileRepository, c *cache.ProfileCache) *ProfileService {
	return &ProfileService{repo: r, cache: c}
}

// Get returns the profile for username, checking the cache first when one is
// configured. Absence is model.ErrProfileNotFound, not a failure.
func (s *ProfileService) Get(ctx context.Context, username string) (*model.Profile, error) {
	if s.cache != nil {
		if p, err := s.cache.Get(ctx, username); err == nil {
			return p, nil
		}
	}

	p, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, p)
	}
	return p, nil
}

// Upsert creates or updates the profile for username. An empty photo leaves
// any previously stored photo in place.
func (s *ProfileService) Upsert(ctx context.Context, username, email, phoneNumber, photo string) error {
	if err := s.repo.Upsert(ctx, username, email, phoneNumber, photo); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	s.invalidate(ctx, username)
	return nil
}

// Create inserts a new profile and fails with model.ErrProfileExists when one
// already exists for the username, regardless of field values.
func (s *ProfileService) Create(ctx context.Context, p *model.Profile) error {
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, model.ErrProfileExists) {
			return err
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}
	s.invalidate(ctx, p.Username)
	return nil
}

// Update overwrites contact fields of an existing profile; it never creates
// one. Missing profiles surface as model.ErrProfileNotFound.
func (s *ProfileService) Update(ctx context.Context, username, email, phoneNumber, photo string) error {
	err := s.repo.Update(ctx, username, email, phoneNumber, photo)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return err
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}
	s.invalidate(ctx, username)
	return nil
}

func (s *ProfileService) invalidate(ctx context.Context, username string) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, username)
	}
}
