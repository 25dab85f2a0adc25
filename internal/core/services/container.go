package services

import (
	portsrepo "github.com/SscSPs/fin_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fin_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/fin_tracker_app/internal/events"
	"github.com/SscSPs/fin_tracker_app/internal/platform/config"
)

// NewServiceContainer wires all services against the repository provider and
// shared infrastructure.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, publisher *events.Publisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// User service first since the token service depends on it.
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	container.Ledger = NewLedgerService(
		repos.UserRepo,
		repos.TransferRepo,
		repos.ExpenseRepo,
		repos.IncomeRepo,
		publisher,
		cfg.TransferTimeout,
	)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Income = NewIncomeService(repos.IncomeRepo)
	container.CSVImport = NewCSVImportService(repos.ExpenseRepo, repos.IncomeRepo, publisher)
	container.Subscription = NewSubscriptionService(repos.SubscriptionRepo)

	return container
}
