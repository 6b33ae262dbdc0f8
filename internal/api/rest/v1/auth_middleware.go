package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// OwnerIDContextKey holds the verified token subject in the gin context
const OwnerIDContextKey = "ownerID"

// OwnerAuthMiddleware verifies an HS256 bearer token and exposes its subject as the report owner
func OwnerAuthMiddleware(secret []byte, issuer string) gin.HandlerFunc {
	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if issuer != "" {
		options = append(options, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(options...)

	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid token"})
			return
		}
		if claims.Subject == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "token has no subject"})
			return
		}

		ctx.Set(OwnerIDContextKey, claims.Subject)
		ctx.Next()
	}
}

// NewOwnerToken signs a token for ownerID, used by the CLI and tests
func NewOwnerToken(secret []byte, issuer, ownerID string, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = ownerID
	if issuer != "" {
		claims.Issuer = issuer
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func ownerFromContext(ctx *gin.Context) string {
	return ctx.GetString(OwnerIDContextKey)
}
