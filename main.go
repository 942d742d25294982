package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/danielessuu/backend-sd3/configs"
	"github.com/danielessuu/backend-sd3/middlewares"
	"github.com/danielessuu/backend-sd3/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		logrus.Fatalf("database connection failed: %v", err)
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	if err := configs.SeedStaff(cfg); err != nil {
		logrus.Fatalf("seed staff failed: %v", err)
	}
	if cfg.SeedDishes {
		if err := configs.SeedDishes(); err != nil {
			logrus.Fatalf("seed dishes failed: %v", err)
		}
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.Info("server running at ", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
