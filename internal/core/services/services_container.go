package services

import (
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
	"github.com/harmonia-labs/label_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Leaf services first: the rate resolver and alert evaluator have no
	// service dependencies of their own.
	container.Rate = NewRateService(repos.RateRepo)
	container.Alert = NewAlertService(repos.AlertRepo)

	container.Reconciliation = NewReconciliationService(repos.ReconciliationRepo, container.Rate)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.ReconciliationRepo, container.Alert)
	container.Recoupment = NewRecoupmentService(repos.ProjectRepo, repos.ReconciliationRepo, repos.RecoupmentRepo, repos.IncomeRepo)

	container.Project = NewProjectService(repos.ProjectRepo)
	container.Income = NewIncomeService(repos.IncomeRepo, repos.ProjectRepo)
	container.Import = NewImportService(repos.ProjectRepo, repos.UserRepo, repos.IncomeRepo, container.Reconciliation)

	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, container.User)

	return container
}
