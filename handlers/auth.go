package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crestadmit/portal/internal/config"
	"github.com/crestadmit/portal/internal/oidc"
	"github.com/crestadmit/portal/internal/sessions"
	"github.com/crestadmit/portal/internal/tokens"
	"github.com/crestadmit/portal/internal/users"
	"github.com/crestadmit/portal/pkg/logger"
)

// LoginRequest used for password-mode login (dev/testing) and auth-code exchange
type LoginRequest struct {
	Mode        string `json:"mode" binding:"required"` // "password" | "auth_code"
	Username    string `json:"username"`
	Password    string `json:"password"`
	Code        string `json:"code"`         // authorization code
	RedirectURI string `json:"redirect_uri"` // redirect uri used in auth code flow
}

// AuthHandler holds dependencies
type AuthHandler struct {
	cfg         *config.Config
	usersSvc    *users.Service
	sessionsSvc *sessions.Service
}

func NewAuthHandler(cfg *config.Config, u *users.Service, s *sessions.Service) *AuthHandler {
	return &AuthHandler{cfg: cfg, usersSvc: u, sessionsSvc: s}
}

// Register routes under /auth
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
	a.POST("/refresh", h.Refresh)
	a.POST("/logout", h.Logout)
}

// Login implements a minimal login: password grant (dev/testing) and authorization-code exchange
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Mode != "password" && req.Mode != "auth_code" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported mode"})
		return
	}
	host := h.cfg.Keycloak.URL
	realm := h.cfg.Keycloak.Realm
	if host == "" || realm == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Keycloak not configured"})
		return
	}

	var tokenResp *tokenResponse
	var err error
	if req.Mode == "password" {
		tokenResp, err = requestPasswordToken(c.Request.Context(), host, realm, h.cfg.Keycloak.ClientID, h.cfg.Keycloak.ClientSecret, req.Username, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication failed", "details": err.Error()})
			return
		}
	} else {
		if req.Code == "" || req.RedirectURI == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code and redirect_uri required for auth_code mode"})
			return
		}
		logger.Debugf("Login(auth_code): received code length=%d redirect_uri=%s", len(req.Code), req.RedirectURI)
		tokenResp, err = requestAuthCodeToken(c.Request.Context(), host, realm, h.cfg.Keycloak.ClientID, h.cfg.Keycloak.ClientSecret, req.Code, req.RedirectURI)
		if err != nil {
			logger.Errorf("auth-code token exchange error (redirect_uri=%q): %v", req.RedirectURI, err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication failed", "details": err.Error()})
			return
		}
	}
	// verify id_token and upsert user
	claims, err := verifyIDToken(c.Request.Context(), tokenResp.IDToken, h.cfg)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid id token", "details": err.Error()})
		return
	}
	u, err := h.usersSvc.UpsertFromClaims(c.Request.Context(), claims)
	if err != nil {
		logger.Errorf("user upsert error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user upsert failed", "details": err.Error()})
		return
	}
	if u == nil {
		logger.Errorf("user upsert returned nil user (claims missing 'sub')")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user upsert failed", "details": "no user returned from upsert"})
		return
	}
	// create refresh session
	rft, err := h.sessionsSvc.CreateSession(c.Request.Context(), u.Sub, 7*24*time.Hour)
	if err != nil {
		logger.Errorf("failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session", "details": err.Error()})
		return
	}
	// create access token carrying the portal role
	access, err := tokens.GenerateAccessToken(h.cfg, u, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create access token"})
		return
	}
	// camelCase response to match the dashboard's LoginResponse shape
	c.JSON(http.StatusOK, gin.H{"accessToken": access, "refreshToken": rft, "user": u, "expiresIn": 900})
}

// Refresh accepts a refresh token and returns a new access token
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.sessionsSvc.ValidateRefresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "validation failed"})
		return
	}
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
		return
	}
	u, err := h.usersSvc.GetBySub(c.Request.Context(), sess.Sub)
	if err != nil || u == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user lookup failed"})
		return
	}
	access, err := tokens.GenerateAccessToken(h.cfg, u, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create access token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": access, "expires_in": 900})
}

// Logout invalidates the refresh token and (optionally) blacklists the current access token
func (h *AuthHandler) Logout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// If the client supplied an Authorization Bearer token, attempt to blacklist it
	auth := c.GetHeader("Authorization")
	if auth != "" {
		var at string
		if n, _ := fmt.Sscanf(auth, "Bearer %s", &at); n == 1 {
			if exp, err := parseExpFromJWT(at); err == nil {
				ttl := time.Until(exp)
				if ttl > 0 {
					if err := sessions.BlacklistAccessToken(c.Request.Context(), at, ttl); err != nil {
						c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to blacklist access token"})
						return
					}
				}
			}
		}
	}

	if err := h.sessionsSvc.DeleteRefresh(c.Request.Context(), req.RefreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// parseExpFromJWT decodes the JWT payload and returns the `exp` claim as time.Time.
// This performs payload-only parsing (no signature verification) and is suitable
// for computing remaining TTLs for blacklisting purposes.
func parseExpFromJWT(tok string) (time.Time, error) {
	parts := strings.Split(tok, ".")
	if len(parts) < 2 {
		return time.Time{}, fmt.Errorf("invalid token")
	}
	payload := parts[1]
	b, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		// try standard base64 (pad) as a fallback
		b, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return time.Time{}, err
		}
	}
	var claims map[string]interface{}
	if err := json.Unmarshal(b, &claims); err != nil {
		return time.Time{}, err
	}
	v, ok := claims["exp"]
	if !ok {
		return time.Time{}, fmt.Errorf("exp claim not present")
	}
	// exp may be float64 (json number) or json.Number; handle common cases
	switch vv := v.(type) {
	case float64:
		return time.Unix(int64(vv), 0), nil
	case int64:
		return time.Unix(vv, 0), nil
	case json.Number:
		i64, err := vv.Int64()
		if err != nil {
			f, err2 := vv.Float64()
			if err2 != nil {
				return time.Time{}, err
			}
			return time.Unix(int64(f), 0), nil
		}
		return time.Unix(i64, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported exp type %T", v)
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
}

func requestPasswordToken(ctx context.Context, host, realm, clientID, clientSecret, username, password string) (*tokenResponse, error) {
	tokenURL := host + "/realms/" + realm + "/protocol/openid-connect/token"
	form := urlValues(map[string]string{
		"grant_type":    "password",
		"client_id":     clientID,
		"client_secret": clientSecret,
		"username":      username,
		"password":      password,
	})
	req, err := http.NewRequestWithContext(ctx, "POST", tokenURL, form)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, string(b))
	}
	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

func requestAuthCodeToken(ctx context.Context, host, realm, clientID, clientSecret, code, redirectURI string) (*tokenResponse, error) {
	tokenURL := host + "/realms/" + realm + "/protocol/openid-connect/token"
	v := url.Values{}
	v.Set("grant_type", "authorization_code")
	v.Set("client_id", clientID)
	v.Set("client_secret", clientSecret)
	v.Set("code", code)
	v.Set("redirect_uri", redirectURI)
	body := v.Encode()

	// One quick retry when Keycloak reports a transient 'Code not valid'
	for attempt := 1; attempt <= 2; attempt++ {
		req, err := http.NewRequestWithContext(ctx, "POST", tokenURL, strings.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		// Primary attempt uses client_secret_post; fall back to HTTP Basic
		// auth, which is more robust across Keycloak client configs.
		resp, err := http.DefaultClient.Do(req)
		if err == nil && resp.StatusCode == http.StatusUnauthorized && clientSecret != "" {
			_ = resp.Body.Close()
			logger.Warnf("requestAuthCodeToken: token exchange returned 401, retrying with Basic auth")
			req2, err2 := http.NewRequestWithContext(ctx, "POST", tokenURL, strings.NewReader(body))
			if err2 == nil {
				req2.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				req2.SetBasicAuth(clientID, clientSecret)
				resp, err = http.DefaultClient.Do(req2)
			}
		}
		if err != nil {
			if attempt == 2 {
				return nil, err
			}
			time.Sleep(100 * time.Millisecond)
			continue
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			bodyStr := string(b)
			if resp.StatusCode == http.StatusBadRequest && strings.Contains(bodyStr, "Code not valid") && attempt == 1 {
				time.Sleep(150 * time.Millisecond)
				continue
			}
			return nil, fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, bodyStr)
		}
		var tr tokenResponse
		if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
			return nil, err
		}
		return &tr, nil
	}
	return nil, fmt.Errorf("token exchange failed after retries")
}

func verifyIDToken(ctx context.Context, idToken string, cfg *config.Config) (map[string]interface{}, error) {
	// Use the OIDC verifier if available, otherwise fall back to insecure parsing when allowed
	issuer := strings.TrimRight(cfg.Keycloak.URL, "/") + "/realms/" + cfg.Keycloak.Realm
	ver, err := oidc.NewVerifier(ctx, issuer, cfg.Keycloak.ClientID)
	if err != nil {
		if strings.ToLower(strings.TrimSpace(os.Getenv("ALLOW_INSECURE_TOKEN"))) == "true" {
			iv := oidc.NewInsecureVerifier()
			tkn, err := iv.Verify(ctx, idToken)
			if err != nil {
				return nil, err
			}
			var claims map[string]interface{}
			if err := tkn.Claims(&claims); err != nil {
				return nil, err
			}
			return claims, nil
		}
		return nil, err
	}
	idt, err := ver.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}
	var claims map[string]interface{}
	if err := idt.Claims(&claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func urlValues(m map[string]string) io.Reader {
	v := url.Values{}
	for k, vv := range m {
		v.Set(k, vv)
	}
	return strings.NewReader(v.Encode())
}
