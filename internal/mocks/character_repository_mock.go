package mocks

import (
	"github.com/stretchr/testify/mock"

	"inkbound-server/internal/models"
	"inkbound-server/internal/store"
)

// MockCharacterRepository is a mock type for the CharacterRepository type
type MockCharacterRepository struct {
	mock.Mock
}

// Load provides a mock function with given fields:
func (_m *MockCharacterRepository) Load() (store.LoadResult, error) {
	ret := _m.Called()

	var r0 store.LoadResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(store.LoadResult)
	}

	return r0, ret.Error(1)
}

// Append provides a mock function with given fields: character
func (_m *MockCharacterRepository) Append(character models.Character) error {
	ret := _m.Called(character)
	return ret.Error(0)
}

// List provides a mock function with given fields:
func (_m *MockCharacterRepository) List() []models.Character {
	ret := _m.Called()

	var r0 []models.Character
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Character)
	}

	return r0
}

// NewMockCharacterRepository creates a new instance of MockCharacterRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCharacterRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCharacterRepository {
	m := &MockCharacterRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ store.CharacterRepository = (*MockCharacterRepository)(nil)
