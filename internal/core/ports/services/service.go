package services

// ServiceContainer bundles every service facade for injection into the
// handler layer.
type ServiceContainer struct {
	User         UserSvcFacade
	Token        TokenSvcFacade
	GoogleOAuth  GoogleOAuthSvcFacade
	Ledger       LedgerSvcFacade
	Expense      ExpenseSvcFacade
	Income       IncomeSvcFacade
	CSVImport    CSVImportSvcFacade
	Subscription SubscriptionSvcFacade
}
