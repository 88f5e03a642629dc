package helper

import (
	"crypto/rsa"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/likeclem30/taxipassbackend/internal/domain"
)

// Auth verifies bearer tokens issued by the external auth service. Tokens are
// RS256-signed; only the public key lives here.
type Auth struct {
	publicKey *rsa.PublicKey
}

func SetupAuth(publicKeyPEM []byte) (Auth, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		return Auth{}, errors.New("invalid public key")
	}
	return Auth{publicKey: key}, nil
}

// VerifyToken validates an Authorization header value and returns the claim
// set. It accepts both "Bearer <token>" and a bare token.
func (a Auth) VerifyToken(tokenString string) (domain.Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return domain.Claims{}, errors.New("missing token")
	}

	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return domain.Claims{}, errors.New("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.publicKey, nil
	})
	if err != nil {
		return domain.Claims{}, errors.New("token parse error")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return domain.Claims{}, errors.New("invalid token claims")
	}

	idAny, ok := claims["id"]
	if !ok {
		return domain.Claims{}, errors.New("missing subject id")
	}
	idFloat, ok := idAny.(float64)
	if !ok {
		return domain.Claims{}, errors.New("invalid subject id type")
	}

	out := domain.Claims{ID: int64(idFloat), Role: domain.RolePassenger}

	// The admin claim is a presence marker: absent means ordinary passenger,
	// 0 a regular admin, 1 a super admin.
	if adminAny, ok := claims["admin"]; ok {
		adminFloat, ok := adminAny.(float64)
		if !ok {
			return domain.Claims{}, errors.New("invalid admin claim type")
		}
		if int(adminFloat) == 1 {
			out.Role = domain.RoleSuperAdmin
		} else {
			out.Role = domain.RoleAdmin
		}
	}

	return out, nil
}

func (a Auth) GetCurrentUser(ctx *fiber.Ctx) (domain.Claims, error) {
	u := ctx.Locals("claims")
	claims, ok := u.(domain.Claims)
	if !ok {
		return domain.Claims{}, errors.New("missing auth claims in context")
	}
	return claims, nil
}
