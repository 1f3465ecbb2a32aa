// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"evaluation/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AwardRepoFactory provides access to the award repository within a transaction.
	AwardRepoFactory interface {
		AwardRepository() ports.AwardRepository
	}

	// AwardPeriodRepoFactory provides access to the award period repository within a transaction.
	AwardPeriodRepoFactory interface {
		AwardPeriodRepository() ports.AwardPeriodRepository
	}

	// AwardUoW manages transactions for award-only operations.
	// Used by commands that touch award aggregates but not the award period.
	AwardUoW interface {
		TxManager
		AwardRepoFactory
	}

	// AwardUoWFactory creates new award unit of work instances.
	AwardUoWFactory interface {
		Create() AwardUoW
	}

	// UoW manages transactions across award and award-period state.
	// Used by the creation workflow, which persists the new award and lazily
	// initializes the period anchor in one transaction.
	UoW interface {
		TxManager
		AwardRepoFactory
		AwardPeriodRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-repository operations.
	UoWFactory interface {
		Create() UoW
	}
)
