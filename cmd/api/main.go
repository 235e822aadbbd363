package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tiagorodrigues47/barbearia-api/internal/config"
	dbpkg "github.com/tiagorodrigues47/barbearia-api/internal/db"
	"github.com/tiagorodrigues47/barbearia-api/internal/logger"
	"github.com/tiagorodrigues47/barbearia-api/internal/routes"
)

func main() {

	// .env é opcional (em produção as variáveis vêm do ambiente)
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)
	dbpkg.Seed(db, cfg, log)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
