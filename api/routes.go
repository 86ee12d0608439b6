package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	categoryhandler "github.com/carson-networks/finance-tracker/internal/handlers/v1/category"
	goalhandler "github.com/carson-networks/finance-tracker/internal/handlers/v1/goal"
	reporthandler "github.com/carson-networks/finance-tracker/internal/handlers/v1/report"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	transactionhandler "github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	userhandler "github.com/carson-networks/finance-tracker/internal/handlers/v1/user"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	humaAPI := humago.New(mux, huma.DefaultConfig("finance-tracker", "1.0.0"))
	humaAPI.UseMiddleware(logging.NewHumaMiddleware(r.Logger))

	categoryhandler.NewCreateCategoryHandler(r.Operator).Register(humaAPI)
	categoryhandler.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)

	transactionhandler.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transactionhandler.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)

	goalhandler.NewCreateGoalHandler(r.Operator).Register(humaAPI)
	goalhandler.NewUpdateGoalHandler(r.Operator).Register(humaAPI)
	goalhandler.NewListGoalsHandler(r.Service.Goal).Register(humaAPI)

	reporthandler.NewMonthlySummaryHandler(r.Service.Report).Register(humaAPI)
	reporthandler.NewYearlySummaryHandler(r.Service.Report).Register(humaAPI)
	reporthandler.NewMonthlyReportHandler(r.Service.Report).Register(humaAPI)
	reporthandler.NewYearlyReportHandler(r.Service.Report).Register(humaAPI)

	userhandler.NewRegisterUserHandler(r.Operator).Register(humaAPI)
	userhandler.NewLoginHandler(r.Service.User).Register(humaAPI)
	userhandler.NewDeleteUserHandler(r.Operator).Register(humaAPI)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

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
