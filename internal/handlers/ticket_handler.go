package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/services"
)

func ListTickets(t *services.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"tickets": t.ListTickets()})
	}
}

func AddTicket(t *services.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		gigId, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid gig ID format"})
			return
		}

		var ticket models.Ticket
		if err := c.ShouldBindJSON(&ticket); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		claims, _, ok := currentUser(c)
		if !ok {
			return
		}
		if !claims.IsArtist() && !claims.IsAdmin() {
			c.JSON(403, gin.H{"error": "only artists can publish tickets"})
			return
		}

		created, err := t.AddTicket(c.Request.Context(), gigId, ticket)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, created)
	}
}

// PublishTicket is the gigless publish flow: the ticket lands on the first
// gig, synthesizing a placeholder gig when the catalog has none.
func PublishTicket(t *services.TicketService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ticket models.Ticket
		if err := c.ShouldBindJSON(&ticket); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		claims, userId, ok := currentUser(c)
		if !ok {
			return
		}
		if !claims.IsArtist() && !claims.IsAdmin() {
			c.JSON(403, gin.H{"error": "only artists can publish tickets"})
			return
		}

		gig, created, err := t.PublishTicket(c.Request.Context(), ticket, userId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, gin.H{
			"gig":    gig,
			"ticket": created,
		})
	}
}
