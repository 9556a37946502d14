package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/services"
)

func CreateGig(g *services.GigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var gig models.Gig
		if err := c.ShouldBindJSON(&gig); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		claims, userId, ok := currentUser(c)
		if !ok {
			return
		}
		if !claims.IsArtist() && !claims.IsAdmin() {
			c.JSON(403, gin.H{"error": "only artists can publish gigs"})
			return
		}

		created, err := g.CreateGig(c.Request.Context(), &gig, userId)
		if err != nil {
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(201, models.SuccessResponse(created, "Gig created successfully"))
	}
}

func ListGigs(g *services.GigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		gigs := g.ListGigs()
		c.JSON(200, models.PaginatedResponse(gigs, 1, len(gigs), len(gigs)))
	}
}

func GetGig(g *services.GigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid gig ID format"})
			return
		}

		gig, err := g.GetGig(id)
		if err != nil {
			c.JSON(404, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(200, models.SuccessResponse(gig, ""))
	}
}

func UpdateGig(g *services.GigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid gig ID format"})
			return
		}

		var update models.GigUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		updated, err := g.UpdateGig(c.Request.Context(), id, update, userId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, updated)
	}
}

func DeleteGig(g *services.GigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid gig ID format"})
			return
		}

		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		if err := g.DeleteGig(c.Request.Context(), id, userId); err != nil {
			c.JSON(500, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(200, models.SuccessResponse(nil, "gig deleted successfully"))
	}
}

func ListGigsByArtist(g *services.GigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		artistId, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid artist ID format"})
			return
		}

		gigs, err := g.ListGigsByArtist(c.Request.Context(), artistId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"gigs": gigs})
	}
}

func AddReview(g *services.GigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		gigId, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid gig ID format"})
			return
		}

		var review models.Review
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		claims, userId, ok := currentUser(c)
		if !ok {
			return
		}
		review.UserID = userId
		if review.UserName == "" {
			review.UserName = claims.UserName
		}

		gig, err := g.AddReview(c.Request.Context(), gigId, review)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, gig)
	}
}

// QuoteGig prices a gig for the given quantity and add-on selections without
// creating an order.
func QuoteGig(g *services.GigService) gin.HandlerFunc {
	return func(c *gin.Context) {
		gigId, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid gig ID format"})
			return
		}

		var req struct {
			Quantity    int            `json:"quantity"`
			AddOnIds    []string       `json:"add_on_ids,omitempty"`
			AddOnCounts map[string]int `json:"add_on_counts,omitempty"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		quote, err := g.Quote(gigId, req.Quantity, req.AddOnIds, req.AddOnCounts)
		if err != nil {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}

		c.JSON(200, gin.H{
			"quote": quote,
			"total": quote.Total(),
		})
	}
}
