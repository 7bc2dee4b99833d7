package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kursbot/internal/domain"
)

// MockProfileRepository is a mock for ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Exists(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) Create(p domain.Profile) (bool, error) {
	args := m.Called(p)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) Update(userID int64, firstName, username, lastName string) (bool, error) {
	args := m.Called(userID, firstName, username, lastName)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) ListAll() ([]domain.Profile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

// MockRateProvider is a mock for rates.Provider
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) Fetch(ctx context.Context) (domain.RateSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateSnapshot), args.Error(1)
}
