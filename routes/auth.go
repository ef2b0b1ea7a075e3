package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/HA2345567/buttonhaus/auth"
)

// SetupAuthRoutes registers the public "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signin", auth.SignIn(d.Sessions, d.Config.JWTSecret)) // POST /auth/signin
		authGroup.POST("/signup", auth.SignUp(d.Sessions, d.Config.JWTSecret)) // POST /auth/signup
		authGroup.POST("/guest", auth.CreateGuestUser(d.Sessions, d.Config.JWTSecret))
	}
}
