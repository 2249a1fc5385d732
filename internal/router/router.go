package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jteo/listify-backend/config"
	"github.com/jteo/listify-backend/internal/app/controller"
	"github.com/jteo/listify-backend/internal/middleware"
)

type Router struct {
	wizardController   *controller.WizardController
	submitController   *controller.SubmitController
	listingController  *controller.ListingController
	progressController *controller.ProgressController
	sessionMiddleware  *middleware.SessionMiddleware
	stepGuard          *middleware.StepGuardMiddleware
	config             *config.Config
}

func NewRouter(
	wizardController *controller.WizardController,
	submitController *controller.SubmitController,
	listingController *controller.ListingController,
	progressController *controller.ProgressController,
	sessionMiddleware *middleware.SessionMiddleware,
	stepGuard *middleware.StepGuardMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		wizardController:   wizardController,
		submitController:   submitController,
		listingController:  listingController,
		progressController: progressController,
		sessionMiddleware:  sessionMiddleware,
		stepGuard:          stepGuard,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "LISTIFY API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		wizard := v1.Group("/wizard")
		wizard.Use(r.sessionMiddleware.Attach())
		{
			wizard.GET("/draft", r.wizardController.GetDraft)
			wizard.GET("/progress", r.wizardController.GetProgress)
			wizard.GET("/progress/feed", r.progressController.Feed)
			wizard.POST("/geocode", r.wizardController.Geocode)

			// The review route stays outside the step guard; Submit
			// re-checks completeness itself.
			wizard.GET("/review", r.submitController.Review)
			wizard.POST("/submit", r.submitController.Submit)

			steps := wizard.Group("/steps")
			steps.Use(r.stepGuard.Guard())
			{
				steps.GET("/:step", r.wizardController.GetStepData)
				steps.PUT("/:step", r.wizardController.SaveStep)
				steps.POST("/:step", r.wizardController.AddServiceOffering)
			}
		}

		listings := v1.Group("/listings")
		{
			listings.GET("", r.listingController.ListListings)
			listings.GET("/export", r.listingController.ExportListings)
			listings.GET("/:id", r.listingController.GetListing)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
