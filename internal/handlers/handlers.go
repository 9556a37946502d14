package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/helpers"
)

// currentUser pulls the enhanced claims set by AuthMiddleware out of the
// context, along with the caller's parsed user id.
func currentUser(c *gin.Context) (*helpers.EnhancedClaims, uuid.UUID, bool) {
	val, exists := c.Get("user")
	if !exists {
		c.JSON(401, gin.H{"error": "unauthorized"})
		return nil, uuid.Nil, false
	}
	claims, ok := val.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(500, gin.H{"error": "invalid user claims"})
		return nil, uuid.Nil, false
	}
	userId, err := uuid.Parse(claims.Subject)
	if err != nil {
		c.JSON(401, gin.H{"error": "invalid user ID in token"})
		return nil, uuid.Nil, false
	}
	return claims, userId, true
}
