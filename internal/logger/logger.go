package logger

import (
	"os"

	"go.uber.org/zap"
)

// New monta o logger padrão do serviço. Em desenvolvimento
// (APP_ENV != production) usa o encoder legível de console.
func New() *zap.Logger {
	var (
		log *zap.Logger
		err error
	)

	if os.Getenv("APP_ENV") == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	return log
}
