package handlers

import (
	"net/http"

	"attendance_backend/models"

	"github.com/gin-gonic/gin"
)

const rootMessage = "Backend is running.."

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Root reports that the service is reachable. It has no dependencies to
// check, so it always succeeds.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.RootResponse{Message: rootMessage})
}

func (h *HealthHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.DetailResponse{Detail: "Not Found"})
}

func (h *HealthHandler) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, models.DetailResponse{Detail: "Method Not Allowed"})
}
