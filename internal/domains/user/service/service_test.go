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
	userMocks "posada/internal/domains/user/mocks"
	"posada/internal/domains/user/service"
	"posada/shared/constant"
	"posada/shared/failure"
)

func validUserPayload() map[string]any {
	return map[string]any{
		"email":     "reception@hotel.test",
		"password":  "Sunrise42",
		"firstName": "Ana",
		"lastName":  "Torres",
		"role":      constant.RoleReceptionist,
	}
}

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		payload   map[string]any
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "successful creation",
			payload: validUserPayload(),
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "weak password",
			payload: func() map[string]any {
				payload := validUserPayload()
				payload["password"] = "alllowercase1"

				return payload
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "short password",
			payload: func() map[string]any {
				payload := validUserPayload()
				payload["password"] = "Ab1"

				return payload
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown role",
			payload: func() map[string]any {
				payload := validUserPayload()
				payload["role"] = "manager"

				return payload
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:    "duplicate email",
			payload: validUserPayload(),
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:    "repository error",
			payload: validUserPayload(),
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			result, err := svc.Create(ctx, tt.payload)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "reception@hotel.test", result.Email)
				assert.Equal(t, constant.RoleReceptionist, result.Role)
				assert.True(t, result.IsActive)
			}
		})
	}
}
