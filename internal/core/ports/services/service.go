package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Rate           RateSvcFacade
	Reconciliation ReconciliationSvcFacade
	Budget         BudgetSvcFacade
	Alert          AlertSvcFacade
	Recoupment     RecoupmentSvcFacade
	Import         ImportSvcFacade
	Project        ProjectSvcFacade
	Income         IncomeSvcFacade
	User           UserSvcFacade
	Auth           AuthSvcFacade
}
