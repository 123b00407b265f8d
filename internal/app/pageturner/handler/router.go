package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pageturner/pkg/logger"
	"pageturner/pkg/metrics"
)

// SetupRoutes настраивает все маршруты приложения с использованием Gin
func SetupRoutes(
	catalogHandler *CatalogHandler,
	reviewHandler *ReviewHandler,
	authHandler *AuthHandler,
	authMiddleware *AuthMiddleware,
) *gin.Engine {
	router := gin.New()

	// Recovery middleware для обработки panic
	router.Use(gin.Recovery())

	// JSON logging middleware для HTTP-запросов
	router.Use(logger.GinLoggerMiddleware())

	// Prometheus metrics middleware
	router.Use(metrics.GinPrometheusMiddleware("pageturner"))

	// CORS настройки
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "pageturner",
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Каталог
	books := router.Group("/books")
	{
		books.GET("", catalogHandler.ListBooks)
		books.GET("/featured", catalogHandler.FeaturedBooks)
		books.GET("/genres", catalogHandler.ListGenres)
		books.GET("/:id", catalogHandler.GetBook)
		books.GET("/:id/reviews", reviewHandler.GetReviewsByBook)
	}

	// Отзывы: проверка текущего пользователя выполняется сервисом,
	// неавторизованное создание отклоняется с 401
	router.POST("/reviews", reviewHandler.CreateReview)

	// Пользователи
	users := router.Group("/users")
	{
		users.GET("/:id", authHandler.GetUser)
		users.GET("/:id/reviews", reviewHandler.GetUserReviews)
	}

	// Аутентификация
	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/session", authHandler.GetSession)

		// Защищенные эндпоинты (требуют access токен)
		protected := auth.Group("")
		protected.Use(authMiddleware.Authenticate())
		{
			protected.GET("/me", authHandler.GetMe)
		}
	}

	return router
}
