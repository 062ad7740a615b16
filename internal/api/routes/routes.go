package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tailorhq/resume-tailor/internal/api/handlers"
	"github.com/tailorhq/resume-tailor/internal/api/middleware"
)

type Deps struct {
	Job     *handlers.JobHandler
	Tailor  *handlers.TailorHandler
	Profile *handlers.ProfileHandler

	// TailorLimiter guards the LLM-cost endpoint; nil-safe.
	TailorLimiter gin.HandlerFunc
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.Envelope{Success: false, Error: "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, handlers.Envelope{Success: false, Error: "method not allowed"})
	})

	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.POST("/jobs", d.Job.Create)
	auth.GET("/jobs", d.Job.List)

	tailor := auth.Group("/")
	if d.TailorLimiter != nil {
		tailor.Use(d.TailorLimiter)
	}
	tailor.POST("/resume/tailor", d.Tailor.Tailor)

	auth.GET("/resumes", d.Tailor.History)

	auth.GET("/profile", d.Profile.Me)
	auth.POST("/profile", d.Profile.Save)
}
