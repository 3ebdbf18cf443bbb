package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"posada/config"
	"posada/infras/otel/mocks"
	guestMocks "posada/internal/domains/guest/mocks"
	"posada/internal/domains/guest/model"
	"posada/internal/domains/guest/service"
	cacheMocks "posada/shared/cache/mocks"
	"posada/shared/constant"
	"posada/shared/failure"
)

func newService(t *testing.T) (service.Guest, *guestMocks.MockGuest, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func validGuestPayload() map[string]any {
	return map[string]any{
		"firstName":      "María",
		"lastName":       "González",
		"email":          "maria.gonzalez@example.com",
		"phone":          "+573001112233",
		"documentType":   model.DocumentTypePassport,
		"documentNumber": "AB-123456",
		"nationality":    "Colombiana",
	}
}

func TestGuestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		payload   map[string]any
		setupMock func(repo *guestMocks.MockGuest, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "successful creation",
			payload: validGuestPayload(),
			setupMock: func(repo *guestMocks.MockGuest, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "missing document number",
			payload: func() map[string]any {
				payload := validGuestPayload()
				delete(payload, "documentNumber")

				return payload
			}(),
			setupMock: func(_ *guestMocks.MockGuest, _ *cacheMocks.MockRedisCache) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:    "duplicate document number",
			payload: validGuestPayload(),
			setupMock: func(repo *guestMocks.MockGuest, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:    "repository error",
			payload: validGuestPayload(),
			setupMock: func(repo *guestMocks.MockGuest, _ *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			result, err := svc.Create(context.Background(), tt.payload)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.ID)
				assert.Equal(t, "María", result.FirstName)
				assert.Equal(t, "AB-123456", result.DocumentNumber)
				assert.True(t, result.IsActive)
			}
		})
	}
}

func TestGuestService_Get(t *testing.T) {
	t.Run("guest fetched from repository", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{
				ID:             "guest-1",
				FirstName:      "María",
				LastName:       "González",
				DocumentNumber: "AB-123456",
				IsActive:       true,
			}, nil)

		result, err := svc.Get(context.Background(), "guest-1")

		assert.NoError(t, err)
		assert.Equal(t, "guest-1", result.ID)
		assert.Equal(t, "González", result.LastName)
	})

	t.Run("guest not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)

		_, err := svc.Get(context.Background(), "nope")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestGuestService_Update(t *testing.T) {
	t.Run("partial update succeeds", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Update(context.Background(), map[string]any{"phone": "+573009998877"}, "guest-1")

		assert.NoError(t, err)
	})

	t.Run("empty payload rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.Update(context.Background(), map[string]any{}, "guest-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("guest not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), map[string]any{"notes": "late arrival"}, "nope")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("duplicate document number on update", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})

		err := svc.Update(context.Background(), map[string]any{"documentNumber": "CC-999"}, "guest-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
