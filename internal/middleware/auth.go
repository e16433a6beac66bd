package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Kashikuroni/YP-Blogicum/internal/domain"
)

// ViewerKey is the gin context key the resolved viewer is stored under.
const ViewerKey = "viewer"

// Identity returns a middleware that resolves the acting viewer from a
// Bearer JWT minted by the external auth service. Requests without an
// Authorization header pass through as anonymous; a present but
// invalid or expired token is rejected with 401 so a stale session
// never silently degrades to anonymous browsing.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		userID, _ := claims["sub"].(string)
		username, _ := claims["username"].(string)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		c.Set(ViewerKey, &domain.Viewer{UserID: userID, Username: username})
		c.Next()
	}
}

// GetViewer retrieves the viewer from the gin context. Returns nil for
// anonymous requests.
func GetViewer(c *gin.Context) *domain.Viewer {
	if v, exists := c.Get(ViewerKey); exists {
		if viewer, ok := v.(*domain.Viewer); ok {
			return viewer
		}
	}
	return nil
}
