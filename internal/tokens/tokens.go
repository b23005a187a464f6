package tokens

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crestadmit/portal/internal/config"
	"github.com/crestadmit/portal/internal/models"
)

// GenerateAccessToken creates a signed JWT access token for the user. The
// role claim is what gates the client and admin dashboards downstream.
func GenerateAccessToken(cfg *config.Config, u *models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.Sub,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.JWT.Secret))
}
