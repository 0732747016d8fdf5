package registry

import (
	"github.com/ruteri/fee-recipient-registry/interfaces"
	"github.com/stretchr/testify/mock"
)

// MockRegistry mocks the interfaces.Registry interface
type MockRegistry struct {
	mock.Mock
}

// Get mocks the Get method
func (m *MockRegistry) Get(key interfaces.ValidatorKey) (interfaces.PayoutAddress, bool) {
	args := m.Called(key)
	return args.Get(0).(interfaces.PayoutAddress), args.Bool(1)
}

// Set mocks the Set method
func (m *MockRegistry) Set(key interfaces.ValidatorKey, address interfaces.PayoutAddress) {
	m.Called(key, address)
}

// Snapshot mocks the Snapshot method
func (m *MockRegistry) Snapshot() map[interfaces.ValidatorKey]interfaces.PayoutAddress {
	args := m.Called()
	return args.Get(0).(map[interfaces.ValidatorKey]interfaces.PayoutAddress)
}

// Len mocks the Len method
func (m *MockRegistry) Len() int {
	args := m.Called()
	return args.Int(0)
}
