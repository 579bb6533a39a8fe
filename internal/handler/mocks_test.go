package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

// MockFishingService mocks fishing.Service
type MockFishingService struct {
	mock.Mock
}

func (m *MockFishingService) Start(ctx context.Context, player domain.PlayerState) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockFishingService) Bite(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func (m *MockFishingService) Catch(ctx context.Context, cc domain.CatchContext) (domain.CatchOutcome, error) {
	args := m.Called(ctx, cc)
	return args.Get(0).(domain.CatchOutcome), args.Error(1)
}

func (m *MockFishingService) Cancel(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func (m *MockFishingService) SessionState(playerID string) (domain.SessionState, bool) {
	args := m.Called(playerID)
	return args.Get(0).(domain.SessionState), args.Bool(1)
}

func (m *MockFishingService) SetDebugCategory(ctx context.Context, playerID, categoryName string) error {
	args := m.Called(ctx, playerID, categoryName)
	return args.Error(0)
}

func (m *MockFishingService) ValidateDebugCategory(categoryName string) ([]string, error) {
	args := m.Called(categoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFishingService) NewDebugRod(categoryName string) (domain.EquippedItem, error) {
	args := m.Called(categoryName)
	return args.Get(0).(domain.EquippedItem), args.Error(1)
}

type mockStats struct {
	mock.Mock
}

func (m *mockStats) Stats(ctx context.Context, world string, known int) (domain.WorldUniqueStats, error) {
	args := m.Called(ctx, world, known)
	return args.Get(0).(domain.WorldUniqueStats), args.Error(1)
}

type staticCatalog []string

func (c staticCatalog) UniqueIDs() []string { return c }

type mockReloader struct {
	summary domain.ConfigReloadedPayload
	err     error
}

func (m *mockReloader) Reload(context.Context) (domain.ConfigReloadedPayload, error) {
	return m.summary, m.err
}

type mockChecker struct {
	err error
}

func (m mockChecker) Ping(context.Context) error { return m.err }
