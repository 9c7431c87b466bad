package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhartmann/roster-api-go/pkg/auth"
	"github.com/mhartmann/roster-api-go/pkg/config"
	"github.com/mhartmann/roster-api-go/pkg/database"
	"github.com/mhartmann/roster-api-go/pkg/handlers"
	"github.com/mhartmann/roster-api-go/pkg/roster"
)

var r *gin.Engine

func init() {
	config.Load()

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)

	gin.SetMode(gin.ReleaseMode)
	r = handlers.NewRouter(&handlers.Handler{DB: db, Catalog: roster.New()})
}

// Handler is the entry point for the Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
