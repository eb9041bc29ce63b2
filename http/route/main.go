package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/delcom/angkasa-api/http/controller"
	middlewares "github.com/delcom/angkasa-api/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = 5 << 20

	middles := middlewares.NewMiddlewares(ctrl)
	r.Use(middles.CORSMiddleware)
	r.Use(middles.ErrorMiddleware)

	r.GET("/", ctrl.Root)

	celestialBodyRoutes := r.Group("/celestial-bodies")
	{
		celestialBodyRoutes.GET("", ctrl.GetAllCelestialBodies)
		celestialBodyRoutes.POST("", ctrl.CreateCelestialBody)
		celestialBodyRoutes.GET("/:id", ctrl.GetCelestialBodyByID)
		celestialBodyRoutes.PUT("/:id", ctrl.UpdateCelestialBody)
		celestialBodyRoutes.DELETE("/:id", ctrl.DeleteCelestialBody)
		celestialBodyRoutes.GET("/:id/image", ctrl.GetCelestialBodyImage)
	}

	profileRoutes := r.Group("/profile")
	{
		profileRoutes.GET("", ctrl.GetProfile)
		profileRoutes.GET("/photo", ctrl.GetProfilePhoto)
	}

	return r
}
