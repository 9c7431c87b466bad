package main

import (
	"os"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mhartmann/roster-api-go/pkg/auth"
	"github.com/mhartmann/roster-api-go/pkg/config"
	"github.com/mhartmann/roster-api-go/pkg/database"
	"github.com/mhartmann/roster-api-go/pkg/handlers"
	"github.com/mhartmann/roster-api-go/pkg/roster"
)

func main() {
	config.Load()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	if err := auth.EnsureAdminExists(db); err != nil {
		log.Warnf("admin bootstrap failed: %v", err)
	}

	h := &handlers.Handler{DB: db, Catalog: roster.New()}
	r := handlers.NewRouter(h)

	port := config.Port()
	log.Infof("server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
