package admin

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Identity is what the dashboard header shows about the signed-in user. It
// comes from an unverified decode and is for display only.
type Identity struct {
	Email   string
	Expires time.Time
}

// IdentityFromToken decodes a JWT without checking its signature. Tokens
// that are not JWTs yield false.
func IdentityFromToken(token string) (Identity, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(token), claims); err != nil {
		return Identity{}, false
	}
	var id Identity
	for _, k := range []string{"email", "sub", "id"} {
		if v, ok := claims[k].(string); ok && v != "" {
			id.Email = v
			break
		}
	}
	switch exp := claims["exp"].(type) {
	case float64:
		id.Expires = time.Unix(int64(exp), 0).UTC()
	case int64:
		id.Expires = time.Unix(exp, 0).UTC()
	}
	return id, id.Email != "" || !id.Expires.IsZero()
}
