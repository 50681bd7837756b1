package gymservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/fitpass/gymcoin/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestCreate(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		gymName       string
		prepareMock   func()
		expectedGym   *domain.Gym
		expectedError error
	}{
		{
			name:    "Successful gym creation",
			gymName: "Iron Temple",
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), &domain.Gym{OwnerID: 5, Name: "Iron Temple"}).
					Return(&domain.Gym{ID: 1, OwnerID: 5, Name: "Iron Temple"}, nil)
			},
			expectedGym: &domain.Gym{ID: 1, OwnerID: 5, Name: "Iron Temple"},
		},
		{
			name:    "Name is trimmed before storage",
			gymName: "  Flex Yard  ",
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), &domain.Gym{OwnerID: 5, Name: "Flex Yard"}).
					Return(&domain.Gym{ID: 2, OwnerID: 5, Name: "Flex Yard"}, nil)
			},
			expectedGym: &domain.Gym{ID: 2, OwnerID: 5, Name: "Flex Yard"},
		},
		{
			name:          "Empty name",
			gymName:       "   ",
			prepareMock:   nil,
			expectedError: ErrEmptyName,
		},
		{
			name:    "Error creating gym",
			gymName: "Iron Temple",
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			gym, err := service.Create(context.Background(), 5, tt.gymName)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedGym, gym)
			}
		})
	}
}

func TestGet(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedGym   *domain.Gym
		expectedError error
	}{
		{
			name: "Retrieve gym successfully",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Gym{ID: 1, Name: "Iron Temple"}, nil)
			},
			expectedGym: &domain.Gym{ID: 1, Name: "Iron Temple"},
		},
		{
			name: "Gym not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrGymNotFound,
		},
		{
			name: "Error retrieving gym",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			gym, err := service.Get(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedGym, gym)
			}
		})
	}
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedGyms  []domain.Gym
		expectedError error
	}{
		{
			name: "List gyms successfully",
			prepareMock: func() {
				repo.EXPECT().List(gomock.Any()).Return([]domain.Gym{
					{ID: 1, Name: "Iron Temple"},
					{ID: 2, Name: "Flex Yard"},
				}, nil)
			},
			expectedGyms: []domain.Gym{
				{ID: 1, Name: "Iron Temple"},
				{ID: 2, Name: "Flex Yard"},
			},
		},
		{
			name: "Error listing gyms",
			prepareMock: func() {
				repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			gyms, err := service.List(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedGyms, gyms)
			}
		})
	}
}
