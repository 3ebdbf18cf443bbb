package room

import (
	"net/http"
	"posada/infras/otel"
	"posada/internal/domains/room/model"
	"posada/internal/domains/room/model/dto"
	"posada/internal/domains/room/service"
	"posada/shared/constant"
	gDto "posada/shared/dto"
	"posada/transport/http/middleware"
	"posada/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

// Handler exposes the read-only room inventory.
type Handler struct {
	service service.Room
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Room, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Auth)

		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// GetRooms retrieves all rooms.
// @Summary Get all rooms
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param roomType query string false "Filter by room type (single, double, familiar)"
// @Param status query string false "Filter by status"
// @Param floor query string false "Filter by floor"
// @Success 200 {object} response.Envelope "List of rooms"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(r, true); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid pagination parameters")

		response.WithError(w, err)

		return
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	addEq := func(param, field string) {
		if value := r.URL.Query().Get(param); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	addEq("roomType", model.FieldRoomType)
	addEq("status", model.FieldStatus)
	addEq("floor", model.FieldFloor)

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithDataMessage(w, http.StatusOK, rooms, "Rooms fetched successfully")
}

// GetRoomByID retrieves a room by its ID, or by its public number when the
// roomNumber query parameter is set instead.
// @Summary Get a room by ID
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Envelope "Room details"
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var (
		room dto.RoomResponse
		err  error
	)

	if number := r.URL.Query().Get("roomNumber"); number != "" {
		room, err = handler.service.GetByNumber(ctx, number)
	} else {
		room, err = handler.service.Get(ctx, id)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithDataMessage(w, http.StatusOK, room, "Room fetched successfully")
}
