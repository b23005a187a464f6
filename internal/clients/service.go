package clients

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crestadmit/portal/internal/apperr"
)

var errNotFound = errors.New("client profile not found")

// ErrNotFound is returned when a write targets a profile that does not exist.
var ErrNotFound = errNotFound

// Service applies the profile mutation rules: clients replace their target
// schools and round wholesale; the consultant owns status and notes. Neither
// side may touch the other's fields through this API.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

// GetByUserID returns the profile for a user, or nil when none exists.
func (s *Service) GetByUserID(ctx context.Context, userID string) (*Profile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("fetch profile", err)
	}
	return p, nil
}

// GetByID returns the profile with the given id, or nil when none exists.
func (s *Service) GetByID(ctx context.Context, id string) (*Profile, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("fetch profile", err)
	}
	return p, nil
}

// List returns all profiles, newest first.
func (s *Service) List(ctx context.Context) ([]*Profile, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Persistence("list profiles", err)
	}
	return out, nil
}

// SetTargets replaces the target-school set and application round (client
// operation). Duplicate school names are dropped, first occurrence wins; an
// empty round unsets it. No catalog validation is applied.
func (s *Service) SetTargets(ctx context.Context, id string, schools []string, round string) error {
	deduped := make([]string, 0, len(schools))
	seen := make(map[string]bool, len(schools))
	for _, sc := range schools {
		if seen[sc] {
			continue
		}
		seen[sc] = true
		deduped = append(deduped, sc)
	}
	if err := s.repo.UpdateTargets(ctx, id, deduped, round); err != nil {
		if isMissing(err) {
			return ErrNotFound
		}
		return apperr.Persistence("update targets", err)
	}
	return nil
}

// SetReview replaces engagement status and notes (consultant operation). An
// empty status falls back to active.
func (s *Service) SetReview(ctx context.Context, id string, status, notes string) error {
	if status == "" {
		status = StatusActive
	}
	if err := s.repo.UpdateReview(ctx, id, status, notes); err != nil {
		if isMissing(err) {
			return ErrNotFound
		}
		return apperr.Persistence("update client review", err)
	}
	return nil
}

func isMissing(err error) bool {
	return errors.Is(err, errNotFound) || errors.Is(err, mongo.ErrNoDocuments)
}
