package users

import (
	"context"

	"github.com/crestadmit/portal/internal/identity"
	"github.com/crestadmit/portal/internal/models"
)

// Service encapsulates user-related business logic
type Service struct {
	repo UserRepository
}

func NewService(r UserRepository) *Service {
	return &Service{repo: r}
}

// UpsertFromClaims creates or updates a user using OIDC claims map. The role
// is resolved the same way the dashboards resolve it (flat "role" claim or
// Keycloak realm_access.roles).
func (s *Service) UpsertFromClaims(ctx context.Context, claims map[string]interface{}) (*models.User, error) {
	ident := identity.FromClaims(claims)
	if ident.UserID == "" {
		return nil, nil
	}
	u := &models.User{
		Sub:   ident.UserID,
		Email: ident.Email,
		Name:  ident.Name,
		Role:  string(ident.Role),
	}
	return s.repo.UpsertBySub(ctx, u)
}

func (s *Service) GetBySub(ctx context.Context, sub string) (*models.User, error) {
	return s.repo.GetBySub(ctx, sub)
}
