package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/DiogoCarvalho999/FinanceDashboard/api"
	"github.com/DiogoCarvalho999/FinanceDashboard/internal/config"
	"github.com/DiogoCarvalho999/FinanceDashboard/internal/logging"
	"github.com/DiogoCarvalho999/FinanceDashboard/internal/service"
	"github.com/DiogoCarvalho999/FinanceDashboard/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-dashboard starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	svc := service.NewService(dbStorage)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
