package main

import (
	"log"

	"github.com/dagger983/Umpire11-Backend/config"
	"github.com/dagger983/Umpire11-Backend/fixtures"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer config.Close(db)

	fixtureManager := fixtures.NewFixtures(db)
	if err := fixtureManager.GenerateTestData(); err != nil {
		log.Fatal("Fixtures generation failed:", err)
	}
}
