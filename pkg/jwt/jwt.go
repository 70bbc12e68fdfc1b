package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos que el backend emite
// en el token de sesión. El cliente no valida la firma (no conoce el secreto);
// solo inspecciona expiración e identidad para fallar rápido y etiquetar logs.
type Claims struct {
	jwt.RegisteredClaims
	UserID        string `json:"user_id"`
	InstitutionID string `json:"institution_id"`
	Role          string `json:"role"` // "comprador" | "visitador" | "admin"
}

// Inspect decodifica el token sin verificar la firma y devuelve sus claims.
// La autoridad final sobre la sesión es el servidor; esto solo evita iniciar
// un recorrido de varias páginas con una sesión ya vencida.
func Inspect(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("jwt: token vacío")
	}
	claims := &Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, fmt.Errorf("jwt: token malformado: %w", err)
	}
	return claims, nil
}

// Expired indica si el token tiene claim exp y ya venció. Un token sin exp se
// considera vigente (el servidor decidirá).
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return now.After(c.ExpiresAt.Time)
}
