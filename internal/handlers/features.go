package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikDhanave/diabetes-risk-service/internal/features"
)

// RegisterFeatureRoutes registers the static reference-data endpoints.
//
// GET /api/features     feature catalog (descriptions, ranges, units)
// GET /api/sample-data  example payloads for manual testing
func RegisterFeatureRoutes(r gin.IRoutes) {
	r.GET("/api/features", func(c *gin.Context) {
		c.JSON(http.StatusOK, features.Catalog())
	})

	r.GET("/api/sample-data", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"samples": features.Samples()})
	})
}
