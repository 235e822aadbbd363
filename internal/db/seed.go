package db

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tiagorodrigues47/barbearia-api/internal/config"
	"github.com/tiagorodrigues47/barbearia-api/internal/models"
)

// Seed cria a conta do barbeiro e o catálogo inicial no primeiro
// boot. Reexecutar é inofensivo: só insere o que não existe.
func Seed(db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	seedBarber(db, cfg, log)
	seedServices(db, log)
}

func seedBarber(db *gorm.DB, cfg *config.Config, log *zap.Logger) {
	var count int64
	db.Model(&models.Barber{}).Where("username = ?", cfg.BarberUsername).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.BarberPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("seed: failed to hash barber password", zap.Error(err))
	}

	barber := models.Barber{
		Username:     cfg.BarberUsername,
		PasswordHash: string(hashed),
		Name:         cfg.BarberName,
	}

	if err := db.Create(&barber).Error; err != nil {
		log.Fatal("seed: failed to create barber", zap.Error(err))
	}

	log.Info("seed: barber account created", zap.String("username", barber.Username))
}

func seedServices(db *gorm.DB, log *zap.Logger) {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}

	services := []models.Service{
		{Name: "Corte de Cabelo", Description: "Corte tradicional ou degradê", Price: 35, DurationMin: 30, Active: true},
		{Name: "Barba", Description: "Barba completa com toalha quente", Price: 25, DurationMin: 30, Active: true},
		{Name: "Corte + Barba", Description: "Combo corte e barba", Price: 55, DurationMin: 30, Active: true},
		{Name: "Sobrancelha", Description: "Design de sobrancelha na navalha", Price: 10, DurationMin: 30, Active: true},
	}

	if err := db.Create(&services).Error; err != nil {
		log.Fatal("seed: failed to create services", zap.Error(err))
	}

	log.Info("seed: default services created", zap.Int("count", len(services)))
}
