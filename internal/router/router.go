package router

import (
	"vendlink/internal/handlers"
	"vendlink/internal/middleware"
	"vendlink/internal/services"
	"vendlink/internal/utils"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the routes need; handlers are constructed here.
type Deps struct {
	Auth     *services.AuthService
	Products *services.ProductService
	Votes    *services.VoteService
	Users    *services.UserService
	Cache    *utils.Cache
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	authHandler := handlers.NewAuthHandler(d.Auth)
	productHandler := handlers.NewProductHandler(d.Products, d.Cache)
	voteHandler := handlers.NewVoteHandler(d.Votes, d.Cache)
	userHandler := handlers.NewUserHandler(d.Users, d.Products, d.Cache)

	// Public routes
	r.GET("/health", handlers.Health)
	r.POST("/signup", authHandler.Signup)                    // Register account
	r.POST("/login", authHandler.Login)                      // Issue bearer token
	r.GET("/products", productHandler.List)                  // limit/skip/search
	r.GET("/products/:id", productHandler.Get)               // Detail with rendered description
	r.GET("/users/:id", userHandler.Get)                     // Public profile
	r.GET("/users/:id/products", userHandler.ListProducts)   // Products owned by a user

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.RequireAuth(d.Auth))
	{
		authorized.GET("/me", authHandler.Me)

		authorized.POST("/products", productHandler.Create)       // Requires approved
		authorized.PUT("/products/:id", productHandler.Update)    // Requires approved + ownership
		authorized.DELETE("/products/:id", productHandler.Delete) // Requires approved + ownership

		authorized.POST("/vote", voteHandler.Vote) // Toggle endorsement

		authorized.GET("/users", userHandler.List)          // Admin only
		authorized.PATCH("/users/:id", userHandler.Patch)   // Admin only
		authorized.DELETE("/users/:id", userHandler.Delete) // Admin only
	}
}
