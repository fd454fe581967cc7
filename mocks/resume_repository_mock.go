package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Vijaybattula26/gemini-ats/pkg/resume"
)

type MockResumeRepository struct {
	mock.Mock
}

func (m *MockResumeRepository) Create(ctx context.Context, r resume.Record) (int64, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResumeRepository) GetByID(ctx context.Context, id int64) (resume.Record, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(resume.Record), args.Error(1)
}

func (m *MockResumeRepository) SaveResults(ctx context.Context, id int64, res resume.Results) error {
	args := m.Called(ctx, id, res)
	return args.Error(0)
}

func (m *MockResumeRepository) List(ctx context.Context, limit, offset int) ([]resume.Record, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]resume.Record), args.Error(1)
}
