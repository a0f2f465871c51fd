package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ProjectRepo        ProjectRepositoryFacade
	BudgetRepo         BudgetRepositoryFacade
	ReconciliationRepo ReconciliationRepositoryFacade
	RecoupmentRepo     RecoupmentRepositoryFacade
	AlertRepo          AlertRepositoryFacade
	RateRepo           RateRepositoryFacade
	IncomeRepo         IncomeRepositoryFacade
	UserRepo           UserRepositoryFacade
}
