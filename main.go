package main

import (
	"log"

	"github.com/dagger983/Umpire11-Backend/api"
	"github.com/dagger983/Umpire11-Backend/config"
	_ "github.com/dagger983/Umpire11-Backend/docs" // Swagger docs
	"github.com/dagger983/Umpire11-Backend/payment"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Umpire11 API
// @version         1.0
// @description     Backend for the Umpire11 fantasy cricket contest platform

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := config.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()
	log.Println("Database connected")

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	paymentService := payment.NewService(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	module := api.NewModule(db, paymentService)
	module.SetupRoutes(r)

	if err := module.StartScheduler(); err != nil {
		log.Printf("Failed to start scheduler: %v", err)
	}
	defer module.StopScheduler()

	// Swagger endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", rootHandler)
	r.GET("/health", healthHandler)

	port := cfg.ListenPort()
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// @Summary Liveness
// @Description Plain liveness probe kept for the legacy mobile client
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func rootHandler(c *gin.Context) {
	c.String(200, "API Works Perfectly")
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and database is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func healthHandler(c *gin.Context) {
	c.JSON(200, HealthResponse{
		Message:  "Server is running",
		Database: "connected",
	})
}
