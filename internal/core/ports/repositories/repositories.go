package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service layer.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	ExpenseRepo      ExpenseRepositoryFacade
	IncomeRepo       IncomeRepositoryFacade
	TransferRepo     TransferRepositoryFacade
	SubscriptionRepo SubscriptionRepositoryFacade
}
