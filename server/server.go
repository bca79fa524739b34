package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"microfin-server/confs"
	"microfin-server/db"
	httpHandler "microfin-server/handlers/http"
	"microfin-server/repositories"
	"microfin-server/services"
	"microfin-server/usecases"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

// Routes wires middleware, handlers, and routes onto the engine and
// returns it. Split out from Start so tests can drive the engine directly.
func (s *Server) Routes() *gin.Engine {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	todoRepo := repositories.NewTodoPgRepository(s.db)
	appRepo := repositories.NewApplicationPgRepository(s.db)

	// Initialize use cases
	tokens := services.NewTokenService(confs.JWTSecret())
	authUseCase := usecases.NewAuthUseCase(userRepo, tokens)
	todoUseCase := usecases.NewTodoUseCase(todoRepo)
	appUseCase := usecases.NewApplicationUseCase(appRepo)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	todoHandler := httpHandler.NewTodoHandler(todoUseCase)
	appHandler := httpHandler.NewApplicationHandler(appUseCase)

	// Auth routes
	s.app.POST("/signup", authHandler.Signup)
	s.app.POST("/login", authHandler.Login)
	s.app.GET("/user/:id", authHandler.GetUser)
	s.app.POST("/logout", authHandler.Logout)

	api := s.app.Group("/api")
	{
		// Todo routes
		todos := api.Group("/todos")
		{
			todos.GET("", todoHandler.List)
			todos.POST("", todoHandler.Create)
			todos.PUT("/:id", todoHandler.Update)
			todos.DELETE("/:id", todoHandler.Delete)
		}

		// Microfinance application routes
		apps := api.Group("/applications")
		{
			apps.GET("/filter", appHandler.Filter)
			apps.POST("", appHandler.Create)
			apps.PUT("/:id", appHandler.UpdateStatus)
			apps.POST("/:id/token", appHandler.AttachToken)
		}
	}

	return s.app
}

func (s *Server) Start() {
	s.Routes()
	if err := s.app.Run("0.0.0.0:" + confs.Port()); err != nil {
		panic(err)
	}
}
