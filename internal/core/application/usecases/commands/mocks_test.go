package commands_test

import (
	"context"
	"time"

	"evaluation/internal/core/application/usecases/commands"
	"evaluation/internal/core/domain/model/award"
	"evaluation/internal/core/domain/model/kernel"
	"evaluation/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockAwardRepository struct{ mock.Mock }

func (m *MockAwardRepository) Add(ctx context.Context, a *award.Award) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAwardRepository) Update(ctx context.Context, a *award.Award) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAwardRepository) GetByContract(ctx context.Context, contractID string) ([]*award.Award, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*award.Award), args.Error(1)
}

func (m *MockAwardRepository) GetByToken(
	ctx context.Context, contractID, stage string, token kernel.UUID,
) (*award.Award, error) {
	args := m.Called(ctx, contractID, stage, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*award.Award), args.Error(1)
}

type MockAwardPeriodRepository struct{ mock.Mock }

func (m *MockAwardPeriodRepository) GetStart(ctx context.Context, contractID, stage string) (time.Time, error) {
	args := m.Called(ctx, contractID, stage)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockAwardPeriodRepository) SaveStart(ctx context.Context, contractID, stage string, start time.Time) error {
	args := m.Called(ctx, contractID, stage, start)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AwardRepository() ports.AwardRepository {
	args := m.Called()
	return args.Get(0).(ports.AwardRepository)
}

func (m *MockUoW) AwardPeriodRepository() ports.AwardPeriodRepository {
	args := m.Called()
	return args.Get(0).(ports.AwardPeriodRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockAwardUoWFactory struct{ mock.Mock }

func (m *MockAwardUoWFactory) Create() commands.AwardUoW {
	args := m.Called()
	return args.Get(0).(commands.AwardUoW)
}
