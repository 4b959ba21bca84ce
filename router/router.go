package router

import (
	"net/http"
	"time"

	"historicgems/controllers"
	"historicgems/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// credentialed CORS: the cookie only travels for allow-listed origins
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:5173",
			"http://localhost:5174",
			"https://historicgems-e6d80.web.app",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "Welcome to the Historic Gems server!")
	})

	r.POST("/jwt", controllers.GenerateToken)
	r.POST("/logout", controllers.Logout)
	r.GET("/all-artifacts", controllers.GetArtifacts)
	r.GET("/top-artifacts", controllers.GetTopArtifacts)

	auth := r.Group("/", middlewares.AuthMiddleware())
	auth.POST("/create-artifact", controllers.CreateArtifact)
	auth.POST("/liked-artifact/:email", controllers.LikeArtifact)
	auth.GET("/single-artifact/:id", controllers.GetArtifact)
	auth.PUT("/single-artifact/:id", controllers.UpdateArtifact)
	auth.GET("/my-artifacts/:email", controllers.GetMyArtifacts)
	auth.GET("/liked-artifacts/:email", controllers.GetLikedArtifacts)
	auth.GET("/check-liked", controllers.CheckLiked)

	return r
}
