package occupation

import (
	"net/http"
	"posada/infras/otel"
	"posada/internal/domains/occupation/model"
	"posada/internal/domains/occupation/service"
	"posada/shared/constant"
	gDto "posada/shared/dto"
	"posada/shared/validator"
	"posada/transport/http/middleware"
	"posada/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Occupation
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Occupation, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/occupations", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Auth)

		routerGroup.Post("/", handler.CreateOccupation)
		routerGroup.Get("/", handler.GetOccupations)
		routerGroup.Get("/{id}", handler.GetOccupationByID)
		routerGroup.Patch("/{id}", handler.UpdateOccupation)
		routerGroup.With(handler.auth.RequireRoles(constant.RoleAdmin)).Delete("/{id}", handler.DeleteOccupation)
	})
}

// CreateOccupation handles the creation of a new reservation.
// @Summary Create a new reservation
// @Description Create a reservation for a room with its guest assignments.
// @Tags Occupation
// @Accept json
// @Produce json
// @Param request body dto.CreateOccupationRequest true "Create Reservation Request"
// @Success 201 {object} response.Envelope "Occupation created successfully"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/occupations [post]
// @Security BearerAuth
func (handler *Handler) CreateOccupation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOccupation")
	defer scope.End()

	payload, err := validator.DecodePayload(request.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	occupation, err := handler.service.Create(ctx, payload)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create occupation")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Occupation created successfully by user " + user)

	response.WithDataMessage(writer, http.StatusCreated, occupation, "Occupation created successfully")
}

// GetOccupations retrieves all occupations based on query parameters.
// @Summary Get all occupations
// @Description Retrieve occupations with optional filtering and pagination.
// @Tags Occupation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query []string false "Filter by status (repeatable)"
// @Param roomId query string false "Filter by room ID"
// @Param stayType query string false "Filter by stay type (hourly, nightly)"
// @Param checkInFrom query string false "Check-in range start"
// @Param checkInTo query string false "Check-in range end"
// @Param checkOutFrom query string false "Check-out range start"
// @Param checkOutTo query string false "Check-out range end"
// @Param minPrice query number false "Minimum total price"
// @Param maxPrice query number false "Maximum total price"
// @Success 200 {object} response.Envelope "List of occupations"
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/occupations [get]
// @Security BearerAuth
func (handler *Handler) GetOccupations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(r, true); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid pagination parameters")

		response.WithError(w, err)

		return
	}

	filterGroup := buildOccupationFilter(r)

	occupations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupations retrieved successfully")

	response.WithPaginated(w, http.StatusOK, occupations.Occupations, response.Pagination{
		Page:       queryParams.Page,
		Limit:      queryParams.Limit,
		Total:      occupations.TotalData,
		TotalPages: occupations.TotalPage,
	})
}

// GetOccupationByID retrieves an occupation with its room and guests.
// @Summary Get an occupation by ID
// @Tags Occupation
// @Accept json
// @Produce json
// @Param id path string true "Occupation ID"
// @Success 200 {object} response.Envelope "Occupation details"
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/occupations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOccupationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	occupation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupation retrieved successfully")

	response.WithJSON(w, http.StatusOK, occupation)
}

// UpdateOccupation applies a partial update to an occupation.
// @Summary Update an occupation by ID
// @Description Update a subset of occupation fields.
// @Tags Occupation
// @Accept json
// @Produce json
// @Param id path string true "Occupation ID"
// @Param request body object true "Sparse Update Payload"
// @Success 200 {object} response.Envelope "Occupation updated successfully"
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/occupations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateOccupation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOccupation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	payload, err := validator.DecodePayload(r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, payload, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update occupation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Occupation updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Occupation updated successfully")
}

// DeleteOccupation soft-deletes an occupation. Admin only.
// @Summary Delete an occupation by ID
// @Description Soft-delete an occupation and return its final state.
// @Tags Occupation
// @Accept json
// @Produce json
// @Param id path string true "Occupation ID"
// @Success 200 {object} response.Envelope "Occupation deleted successfully"
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /v1/occupations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOccupation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOccupation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	occupation, err := handler.service.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete occupation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Occupation deleted successfully by user " + user)

	response.WithDataMessage(w, http.StatusOK, occupation, "Occupation deleted successfully")
}

// buildOccupationFilter translates the list query parameters into a filter
// group. Absent parameters add no clauses.
func buildOccupationFilter(r *http.Request) gDto.FilterGroup {
	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	addEq := func(param, field string) {
		if value := query.Get(param); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	addRange := func(param, field, operator, argName string) {
		if value := query.Get(param); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				ArgName:  argName,
				Field:    field,
				Operator: operator,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if statuses := query["status"]; len(statuses) > 0 {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorIn,
			Value:    statuses,
			Table:    model.TableName,
		})
	}

	addEq("roomId", model.FieldRoomID)
	addEq("stayType", model.FieldStayType)

	addRange("checkInFrom", model.FieldCheckInDatetime, gDto.FilterOperatorGreaterEq, "check_in_from")
	addRange("checkInTo", model.FieldCheckInDatetime, gDto.FilterOperatorLessEq, "check_in_to")
	addRange("checkOutFrom", model.FieldCheckOutDatetime, gDto.FilterOperatorGreaterEq, "check_out_from")
	addRange("checkOutTo", model.FieldCheckOutDatetime, gDto.FilterOperatorLessEq, "check_out_to")
	addRange("minPrice", model.FieldTotalPrice, gDto.FilterOperatorGreaterEq, "min_price")
	addRange("maxPrice", model.FieldTotalPrice, gDto.FilterOperatorLessEq, "max_price")

	return filterGroup
}
