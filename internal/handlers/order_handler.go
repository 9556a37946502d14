package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/models"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/services"
)

func PlaceOrder(o *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Lines   []services.OrderLineRequest `json:"lines" binding:"required"`
			Message string                      `json:"message"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error(), "message": "invalid request payload"})
			return
		}

		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		order, err := o.PlaceOrder(c.Request.Context(), userId, req.Lines, req.Message)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, order)
	}
}

func GetOrder(o *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid order ID format"})
			return
		}

		claims, userId, ok := currentUser(c)
		if !ok {
			return
		}

		order, err := o.GetOrder(c.Request.Context(), id)
		if err != nil {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}

		// Clients see their own orders; artists theirs; admins everything.
		if order.ClientID != userId && order.ArtistID != userId && !claims.IsAdmin() {
			c.JSON(403, gin.H{"error": "access denied"})
			return
		}
		c.JSON(200, order)
	}
}

func ListMyOrders(o *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, userId, ok := currentUser(c)
		if !ok {
			return
		}

		orders, err := o.ListOrdersByClient(c.Request.Context(), userId)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"orders": orders})
	}
}

func ListOrders(o *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"orders": o.ListOrders()})
	}
}

func UpdateOrderStatus(o *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid order ID format"})
			return
		}

		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		claims, _, ok := currentUser(c)
		if !ok {
			return
		}
		if !claims.IsArtist() && !claims.IsAdmin() {
			c.JSON(403, gin.H{"error": "only artists can manage orders"})
			return
		}

		order, err := o.UpdateStatus(c.Request.Context(), id, models.OrderStatus(req.Status))
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, order)
	}
}
