package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/echoed/echoed-cli/internal/client/session"
)

// identityFromToken decodes the access token's claims locally and maps
// them onto an Identity tagged GOOGLE. The signature is not verified;
// the token came straight from the backend's redirect and is verified
// server-side on every request.
func identityFromToken(token string) (*session.Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}

	username, err := claims.GetSubject()
	if err != nil || username == "" {
		return nil, fmt.Errorf("access token has no subject claim")
	}

	identity := &session.Identity{
		UserID:      claimInt64(claims, "id"),
		Username:    username,
		Email:       claimString(claims, "email"),
		Provider:    session.ProviderGoogle,
		Roles:       claimStrings(claims, "roles"),
		Permissions: claimStrings(claims, "permissions"),
		Active:      true,
	}
	if len(identity.Roles) == 0 {
		identity.Roles = []string{"ROLE_USER"}
	}
	if len(identity.Permissions) == 0 {
		identity.Permissions = []string{"READ"}
	}
	return identity, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

// claimInt64 reads a numeric claim; JSON numbers decode as float64
func claimInt64(claims jwt.MapClaims, key string) int64 {
	switch v := claims[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	}
	return 0
}

func claimStrings(claims jwt.MapClaims, key string) []string {
	raw, ok := claims[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
