package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/DiogoCarvalho999/FinanceDashboard/internal/handlers/v1/status"
	"github.com/DiogoCarvalho999/FinanceDashboard/internal/handlers/v1/summary"
	"github.com/DiogoCarvalho999/FinanceDashboard/internal/handlers/v1/transaction"
	"github.com/DiogoCarvalho999/FinanceDashboard/internal/logging"
	"github.com/DiogoCarvalho999/FinanceDashboard/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("FinanceDashboard", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	transactionSvc := r.Service.Transaction
	transaction.NewCreateTransactionHandler(transactionSvc).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(transactionSvc).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(transactionSvc).Register(humaAPI)
	transaction.NewListTransactionsHandler(transactionSvc).Register(humaAPI)
	summary.NewGetSummaryHandler(transactionSvc).Register(humaAPI)
	summary.NewGetBalanceHandler(transactionSvc).Register(humaAPI)
	summary.NewGetTotalsByTypeHandler(transactionSvc).Register(humaAPI)
	summary.NewGetTotalsByCategoryHandler(transactionSvc).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
