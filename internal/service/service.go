package service

import (
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Category    *CategoryService
	Transaction *TransactionService
	Report      *ReportService
	Goal        *GoalService
	User        *UserService
}

// NewService creates a new Service reading through the given storage reader.
func NewService(reader *storage.Reader) *Service {
	return &Service{
		Category:    NewCategoryService(reader),
		Transaction: NewTransactionService(reader),
		Report:      NewReportService(reader),
		Goal:        NewGoalService(reader),
		User:        NewUserService(reader),
	}
}
