package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/catalog"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/services"
)

// Search applies the marketplace filter to the current catalog snapshot.
// All parameters are optional; invalid bounds are ignored rather than
// rejected.
func Search(s *services.SearchService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter catalog.Filter
		if err := c.ShouldBindQuery(&filter); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		result := s.Search(filter)
		c.JSON(200, gin.H{
			"gigs":    result.Gigs,
			"artists": result.Artists,
		})
	}
}

func ListCategories(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"categories": cs.ListCategories()})
	}
}

func ListArtists(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"artists": cs.ListArtists()})
	}
}
