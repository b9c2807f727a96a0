package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// It lets the use case layer run check-then-act sequences atomically without
// depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back;
	// otherwise it is committed. All repository operations obtained from the
	// factory share the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error

	// ExecuteReadOnly runs a function within a read-only transaction. Used by
	// read paths that still want a consistent snapshot across several reads.
	ExecuteReadOnly(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	// CategoryRepo returns a CategoryRepository bound to the current transaction.
	CategoryRepo() CategoryRepository

	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// ReviewRepo returns a ReviewRepository bound to the current transaction.
	ReviewRepo() ReviewRepository

	// VoteRepo returns a VoteRepository bound to the current transaction.
	VoteRepo() VoteRepository

	// UserAppRepo returns a UserAppRepository bound to the current transaction.
	UserAppRepo() UserAppRepository

	// EventRepo returns an EventRepository bound to the current transaction.
	EventRepo() EventRepository
}
