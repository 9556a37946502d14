package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/services"
)

func ListSavedArtists(s *services.SavedArtistsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		ids, err := s.ListSaved(c.Request.Context(), userId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"saved_artists": ids})
	}
}

// ReplaceSavedArtists overwrites the caller's bookmark set wholesale with the
// ids in the request body.
func ReplaceSavedArtists(s *services.SavedArtistsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			ArtistIds []string `json:"artist_ids"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error(), "message": "invalid request payload"})
			return
		}

		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		ids, err := s.ReplaceSaved(c.Request.Context(), userId, req.ArtistIds)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"saved_artists": ids})
	}
}

// ToggleSavedArtist flips an artist in the caller's bookmark set and returns
// the new membership.
func ToggleSavedArtist(s *services.SavedArtistsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistId := strings.TrimSpace(c.Param("id"))
		if artistId == "" {
			c.JSON(400, gin.H{"error": "artist ID is required"})
			return
		}

		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		saved, err := s.ToggleSaved(c.Request.Context(), userId, artistId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"artist_id": artistId, "saved": saved})
	}
}
