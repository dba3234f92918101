package middleware

import (
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
)

const actorUIDKey = "actor_uid"

// AuthError reports a failure extracting the principal from the request.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Code + ": " + e.Message
}

// EnsureValidToken validates the bearer JWT against the identity provider
// and stores the principal uid (the sub claim) in the gin context. The uid
// is only a principal reference; role and assigned stages are resolved from
// the user profile store by the usecases.
//
// Supported env vars:
//   - AUTH_ISSUER_DOMAIN (e.g. workshop.eu.auth0.com)
//   - AUTH_AUDIENCE
func EnsureValidToken() gin.HandlerFunc {
	issuerURL, err := url.Parse("https://" + strings.TrimSpace(os.Getenv("AUTH_ISSUER_DOMAIN")) + "/")
	if err != nil {
		log.Fatalf("failed to parse identity issuer url: %v", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{os.Getenv("AUTH_AUDIENCE")},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		log.Fatalf("failed to set up the jwt validator: %v", err)
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("[auth][middleware] token validation failed err=%v", err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		if _, writeErr := w.Write([]byte(`{"code":"INVALID_TOKEN","message":"Failed to validate JWT."}`)); writeErr != nil {
			log.Printf("[auth][middleware] failed writing error response err=%v", writeErr)
		}
	}

	mw := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
	)

	return func(c *gin.Context) {
		var handler http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			token := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
			c.Set(actorUIDKey, token.RegisteredClaims.Subject)
			c.Next()
		}

		mw.CheckJWT(handler).ServeHTTP(c.Writer, c.Request)
	}
}

// GetActorUID extracts the authenticated principal uid from the context.
func GetActorUID(c *gin.Context) (string, error) {
	uid, exists := c.Get(actorUIDKey)
	if !exists {
		return "", &AuthError{Code: "MISSING_ACTOR_UID", Message: "Principal uid not found in context"}
	}

	uidStr, ok := uid.(string)
	if !ok || uidStr == "" {
		return "", &AuthError{Code: "INVALID_ACTOR_UID", Message: "Principal uid is not a string"}
	}
	return uidStr, nil
}
