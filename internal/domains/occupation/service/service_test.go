package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"posada/config"
	"posada/infras/otel"
	"posada/infras/otel/mocks"
	kafkaMocks "posada/infras/kafka/mocks"
	occupationMocks "posada/internal/domains/occupation/mocks"
	"posada/internal/domains/occupation/model"
	"posada/internal/domains/occupation/service"
	roomMocks "posada/internal/domains/room/mocks"
	cacheMocks "posada/shared/cache/mocks"
	"posada/shared/constant"
	gDto "posada/shared/dto"
	"posada/shared/failure"
	gModel "posada/shared/model"
	"posada/shared/timezone"
)

func newService(ctrl *gomock.Controller) (service.Occupation, *occupationMocks.MockOccupation, *occupationMocks.MockOccupationGuest, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	mockRepo := occupationMocks.NewMockOccupation(ctrl)
	mockGuestRepo := occupationMocks.NewMockOccupationGuest(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockGuestRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockEvents)

	return svc, mockRepo, mockGuestRepo, mockRoomRepo, mockCache
}

func validCreatePayload() map[string]any {
	return map[string]any{
		"roomId":           "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		"checkInDatetime":  "2026-03-01T14:00:00Z",
		"checkOutDatetime": "2026-03-02T12:00:00Z",
		"stayType":         "nightly",
		"numberOfGuests":   float64(2),
		"totalPrice":       float64(150),
		"guests": []any{
			map[string]any{"guestId": "guest-1", "isPrimary": true},
			map[string]any{"guestId": "guest-2", "isPrimary": false},
		},
	}
}

func TestOccupationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockGuestRepo, mockRoomRepo, mockCache := newService(ctrl)

	tests := []struct {
		name        string
		payload     map[string]any
		setupMock   func()
		wantErr     bool
		wantCode    int
		wantMessage string
	}{
		{
			name:    "successful creation with two guests",
			payload: validCreatePayload(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockGuestRepo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "no primary guest",
			payload: func() map[string]any {
				payload := validCreatePayload()
				payload["guests"] = []any{
					map[string]any{"guestId": "guest-1", "isPrimary": false},
					map[string]any{"guestId": "guest-2", "isPrimary": false},
				}

				return payload
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "two primary guests",
			payload: func() map[string]any {
				payload := validCreatePayload()
				payload["guests"] = []any{
					map[string]any{"guestId": "guest-1", "isPrimary": true},
					map[string]any{"guestId": "guest-2", "isPrimary": true},
				}

				return payload
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:    "room does not exist",
			payload: validCreatePayload(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:    "overlapping stay window",
			payload: validCreatePayload(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeExclusionViolation)})
			},
			wantErr:     true,
			wantCode:    http.StatusBadRequest,
			wantMessage: "Room is already occupied or reserved for this time period",
		},
		{
			name:    "guest insert failure triggers compensating delete",
			payload: validCreatePayload(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockGuestRepo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name:    "room removed between existence check and insert",
			payload: validCreatePayload(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)})
			},
			wantErr:     true,
			wantCode:    http.StatusBadRequest,
			wantMessage: "room does not exist",
		},
		{
			name:    "unknown guest id compensates and maps to bad request",
			payload: validCreatePayload(),
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockGuestRepo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeFkViolation)})

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:     true,
			wantCode:    http.StatusBadRequest,
			wantMessage: "One or more guests do not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Create(ctx, tt.payload)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, err.Error())
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.ID)
				assert.Equal(t, "reserved", result.Status)
				assert.Len(t, result.Guests, 2)
				assert.True(t, result.Guests[0].IsPrimary)
			}
		})
	}
}

func TestOccupationService_Create_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newService(ctrl)

	tests := []struct {
		name      string
		mutate    func(map[string]any)
		wantField string
	}{
		{
			name:      "missing room id",
			mutate:    func(p map[string]any) { delete(p, "roomId") },
			wantField: "roomId",
		},
		{
			name:      "malformed room id",
			mutate:    func(p map[string]any) { p["roomId"] = "not-a-uuid" },
			wantField: "roomId",
		},
		{
			name:      "check out before check in",
			mutate:    func(p map[string]any) { p["checkOutDatetime"] = "2026-03-01T10:00:00Z" },
			wantField: "checkOutDatetime",
		},
		{
			name:      "unknown stay type",
			mutate:    func(p map[string]any) { p["stayType"] = "weekly" },
			wantField: "stayType",
		},
		{
			name:      "zero guests count",
			mutate:    func(p map[string]any) { p["numberOfGuests"] = float64(0) },
			wantField: "numberOfGuests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validCreatePayload()
			tt.mutate(payload)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			_, err := svc.Create(ctx, payload)

			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

			fields := []string{}
			for _, fieldErr := range failure.GetFieldErrors(err) {
				fields = append(fields, fieldErr.Field)
			}

			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestOccupationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockGuestRepo, _, mockCache := newService(ctrl)

	tests := []struct {
		name       string
		params     gDto.QueryParams
		setupMock  func()
		wantErr    bool
		wantResult int
		wantGuests int
	}{
		{
			name: "successful get all",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				occupations := []model.Occupation{
					{
						ID:               "test-id",
						RoomID:           "room-id",
						CheckInDatetime:  timezone.Now(),
						CheckOutDatetime: timezone.Now().Add(24 * time.Hour),
						StayType:         model.StayTypeNightly,
						NumberOfGuests:   2,
						TotalPrice:       150,
						Status:           model.StatusReserved,
					},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(occupations, nil)

				mockGuestRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.OccupationGuest{
						{ID: "link-id", OccupationID: "test-id", GuestID: "guest-1", IsPrimary: true, CreatedAt: timezone.Now()},
						{ID: "link-id-2", OccupationID: "test-id", GuestID: "guest-2", IsPrimary: false, CreatedAt: timezone.Now()},
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantResult: 1,
			wantGuests: 2,
		},
		{
			name: "count error",
			params: gDto.QueryParams{
				Limit: 10,
				Page:  1,
			},
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), tt.params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult, result.TotalData)
				assert.Len(t, result.Occupations, tt.wantResult)

				if tt.wantGuests > 0 {
					assert.Len(t, result.Occupations[0].Guests, tt.wantGuests)
					assert.True(t, result.Occupations[0].Guests[0].IsPrimary)
				}
			}
		})
	}
}

func TestOccupationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockGuestRepo, _, mockCache := newService(ctrl)

	occupation := model.Occupation{
		ID:               "test-id",
		RoomID:           "room-id",
		CheckInDatetime:  timezone.Now(),
		CheckOutDatetime: timezone.Now().Add(24 * time.Hour),
		StayType:         model.StayTypeNightly,
		NumberOfGuests:   1,
		TotalPrice:       90,
		Status:           model.StatusReserved,
	}

	tests := []struct {
		name       string
		id         string
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantGuests int
	}{
		{
			name: "cache hit",
			id:   "test-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, fetched with guests",
			id:   "test-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupation, nil)

				mockGuestRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.OccupationGuest{
						{ID: "link-id", OccupationID: "test-id", GuestID: "guest-1", IsPrimary: true, CreatedAt: timezone.Now()},
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantGuests: 1,
		},
		{
			name: "occupation not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Occupation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				if tt.wantGuests > 0 {
					assert.Len(t, result.Guests, tt.wantGuests)
				}
			}
		})
	}
}

func TestOccupationService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, mockCache := newService(ctrl)

	tests := []struct {
		name        string
		payload     map[string]any
		id          string
		setupMock   func()
		wantErr     bool
		wantCode    int
		wantMessage string
	}{
		{
			name:    "successful sparse update",
			payload: map[string]any{"status": model.StatusCheckedIn, "notes": "late arrival"},
			id:      "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:        "empty payload",
			payload:     map[string]any{},
			id:          "test-id",
			setupMock:   func() {},
			wantErr:     true,
			wantCode:    http.StatusBadRequest,
			wantMessage: "At least one field must be provided for update",
		},
		{
			name:      "unknown fields only",
			payload:   map[string]any{"isAdmin": true},
			id:        "test-id",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "invalid field value",
			payload:   map[string]any{"status": "vanished"},
			id:        "test-id",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:    "occupation not found",
			payload: map[string]any{"status": model.StatusCancelled},
			id:      "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:     true,
			wantCode:    http.StatusNotFound,
			wantMessage: "Occupation not found",
		},
		{
			name:    "window shift hits another reservation",
			payload: map[string]any{"checkOutDatetime": "2026-03-05T12:00:00Z"},
			id:      "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeExclusionViolation)})
			},
			wantErr:     true,
			wantCode:    http.StatusBadRequest,
			wantMessage: "Room is already occupied or reserved for this time period",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.payload, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, err.Error())
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOccupationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, mockCache := newService(ctrl)

	deletedAt := timezone.Now()

	tests := []struct {
		name        string
		id          string
		setupMock   func()
		wantErr     bool
		wantCode    int
		wantMessage string
	}{
		{
			name: "successful soft delete",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Occupation{ID: "test-id", RoomID: "room-id", Status: model.StatusReserved}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "occupation not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Occupation{}, nil)
			},
			wantErr:     true,
			wantCode:    http.StatusNotFound,
			wantMessage: "Occupation not found",
		},
		{
			name: "already deleted",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Occupation{
						ID:         "test-id",
						SoftDelete: gModel.SoftDelete{DeletedAt: &deletedAt},
					}, nil)
			},
			wantErr:     true,
			wantCode:    http.StatusBadRequest,
			wantMessage: "Occupation is already deleted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Delete(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, err.Error())
				}
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.DeletedAt)
			}
		})
	}
}

type recordingScope struct {
	traced []error
}

func (s *recordingScope) End()                         {}
func (s *recordingScope) AddEvent(string)              {}
func (s *recordingScope) SetAttribute(string, any)     {}
func (s *recordingScope) SetAttributes(map[string]any) {}
func (s *recordingScope) TraceError(err error)         { s.traced = append(s.traced, err) }

func (s *recordingScope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

type recordingOtel struct {
	scope *recordingScope
}

func (o *recordingOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, o.scope
}

func TestOccupationService_RecordsFailuresOnSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := occupationMocks.NewMockOccupation(ctrl)
	mockGuestRepo := occupationMocks.NewMockOccupationGuest(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	recorder := &recordingScope{}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockGuestRepo, mockRoomRepo, cfg, mockCache, &recordingOtel{scope: recorder}, mockEvents)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Occupation{}, errors.New("connection reset"))

	_, err := svc.Get(context.Background(), "test-id")

	assert.Error(t, err)
	assert.NotEmpty(t, recorder.traced)
}
