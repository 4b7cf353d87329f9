package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/smartecommerce/insight-api/internal/router"
	"github.com/smartecommerce/insight-api/pkg/ai"
	"github.com/smartecommerce/insight-api/pkg/global"
	"github.com/smartecommerce/insight-api/pkg/mongo"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	client, err := ai.NewClient(ai.ConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}
	router.InitServices(ai.NewEnricher(client))

	if global.MongoEnabled() {
		mongo.InitMongoDB()
		mongo.EnsureIndexesOnStartup()
	} else {
		log.Println("MONGODB_URI not set, insight history disabled")
	}

	router.InitEngine()
	router.InitializeRoutes()

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
