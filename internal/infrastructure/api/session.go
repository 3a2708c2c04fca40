package api

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// session guarda el token de acceso y su vencimiento. El token se recibe
// ya firmado por el backend; aquí solo se inspecciona el claim exp (sin
// verificar la firma, que es responsabilidad del servidor) para poder
// avisar al usuario antes de que la sesión caduque.
type session struct {
	token     string
	expiresAt time.Time
	userData  map[string]any
}

func (s *session) start(token string, userData map[string]any) error {
	if token == "" {
		return fmt.Errorf("el servidor no devolvió token de acceso")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("token de acceso ilegible: %w", err)
	}

	s.token = token
	s.userData = userData
	s.expiresAt = time.Time{}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.expiresAt = exp.Time
	}
	return nil
}

// valid indica si hay token y, de conocerse el vencimiento, si aún no pasó.
func (s *session) valid(now time.Time) bool {
	if s.token == "" {
		return false
	}
	if s.expiresAt.IsZero() {
		return true
	}
	return now.Before(s.expiresAt)
}
