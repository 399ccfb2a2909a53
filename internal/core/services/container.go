package services

import (
	portsrepo "github.com/finledger/finance-ledger/internal/core/ports/repositories"
	portssvc "github.com/finledger/finance-ledger/internal/core/ports/services"
	"github.com/finledger/finance-ledger/internal/platform/resilience"
)

// Container bundles the concrete services handed to the HTTP layer.
type Container struct {
	Account          portssvc.AccountSvc
	Transaction      portssvc.TransactionSvc
	Category         portssvc.CategorySvc
	ValidationAmount portssvc.ValidationAmountSvc
	Payment          portssvc.PaymentSvc
	Transfer         portssvc.TransferSvc
	User             portssvc.UserSvc
}

// Repositories bundles the storage dependencies the container is built from.
type Repositories struct {
	Account          portsrepo.AccountRepositoryWithTx
	Transaction      portsrepo.TransactionRepositoryFacade
	Category         portsrepo.CategoryRepositoryFacade
	ValidationAmount portsrepo.ValidationAmountRepository
	Payment          portsrepo.PaymentRepositoryWithTx
	Transfer         portsrepo.TransferRepositoryWithTx
	User             portsrepo.UserRepository
}

// NewContainer wires every service with its repositories and the shared
// retry executor.
func NewContainer(repos Repositories, executor resilience.Executor, refreshConcurrency int) *Container {
	return &Container{
		Account:          NewAccountService(repos.Account, repos.Transaction, executor, refreshConcurrency),
		Transaction:      NewTransactionService(repos.Transaction, repos.Account, repos.Category),
		Category:         NewCategoryService(repos.Category, repos.Transaction),
		ValidationAmount: NewValidationAmountService(repos.ValidationAmount, repos.Account, executor, refreshConcurrency),
		Payment:          NewPaymentService(repos.Payment, repos.Transaction, repos.Account),
		Transfer:         NewTransferService(repos.Transfer, repos.Transaction, repos.Account),
		User:             NewUserService(repos.User),
	}
}
