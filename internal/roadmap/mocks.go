package roadmap

import (
	"github.com/stretchr/testify/mock"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) GenerateRoadmap(topic string) (string, error) {
	args := m.Called(topic)
	return args.String(0), args.Error(1)
}

type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Save(entry *Entry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockEntryRepository) FindByUser(userID uint) ([]Entry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}
