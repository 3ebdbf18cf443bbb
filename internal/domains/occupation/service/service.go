package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"posada/config"
	"posada/infras/kafka"
	"posada/infras/otel"
	"posada/infras/postgres"
	"posada/internal/domains/occupation/model"
	"posada/internal/domains/occupation/model/dto"
	"posada/internal/domains/occupation/repository"
	occValidator "posada/internal/domains/occupation/validator"
	roomModel "posada/internal/domains/room/model"
	roomRepo "posada/internal/domains/room/repository"
	"posada/shared"
	"posada/shared/cache"
	"posada/shared/constant"
	gDto "posada/shared/dto"
	"posada/shared/failure"
	"posada/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetOccupation    = "occupation:get"
	cacheGetAllOccupation = "occupation:gets"
	cacheCountOccupation  = "occupation:count"
)

const (
	msgRoomConflict      = "Room is already occupied or reserved for this time period"
	msgOccupationMissing = "Occupation not found"
	msgRoomMissing       = "room does not exist"
	msgGuestsMissing     = "One or more guests do not exist"
)

const (
	eventReservationCreated = "reservation.created"
	eventReservationUpdated = "reservation.updated"
	eventReservationDeleted = "reservation.deleted"
)

// reservationEvent is the payload published to the booking event topic.
type reservationEvent struct {
	Type         string `json:"type"`
	OccupationID string `json:"occupationId"`
	RoomID       string `json:"roomId,omitempty"`
	Status       string `json:"status,omitempty"`
	Actor        string `json:"actor,omitempty"`
	OccurredAt   string `json:"occurredAt"`
}

type Occupation interface {
	Create(ctx context.Context, payload map[string]any) (dto.OccupationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOccupationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.OccupationResponse, error)
	Update(ctx context.Context, payload map[string]any, id string) error
	Delete(ctx context.Context, id string) (dto.OccupationResponse, error)
}

type serviceImpl struct {
	repo      repository.Occupation
	guestRepo repository.OccupationGuest
	roomRepo  roomRepo.Room
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	events    kafka.Client
}

func New(repo repository.Occupation, guestRepo repository.OccupationGuest, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, events kafka.Client) Occupation {
	return &serviceImpl{
		repo:      repo,
		guestRepo: guestRepo,
		roomRepo:  roomRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		events:    events,
	}
}

// Create runs the reservation workflow: validate and extract the payload,
// insert the occupation, then link its guests. A failed guest insert triggers
// a best-effort compensating delete of the occupation so no half-built
// reservation survives.
func (s *serviceImpl) Create(ctx context.Context, payload map[string]any) (res dto.OccupationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	extracted, err := occValidator.ExtractCreate(payload)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	req := dto.CreateRequestFromPayload(extracted)

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.BadRequestFromString(msgRoomMissing) //nolint:wrapcheck
	}

	occupation, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse occupation request")

		return res, failure.BadRequest(fmt.Errorf("invalid datetime format: %w", err)) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, occupation); err != nil {
		if postgres.IsConflict(err) {
			return res, failure.BadRequestFromString(msgRoomConflict) //nolint:wrapcheck
		}

		// The room existence check races with hard deletes, the FK is the
		// authority.
		if postgres.IsForeignKeyViolation(err) {
			return res, failure.BadRequestFromString(msgRoomMissing) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create occupation")

		return res, fmt.Errorf("failed to create occupation: %w", err)
	}

	links := req.GuestLinks(occupation.ID)

	if err = s.guestRepo.InsertBulk(ctx, links); err != nil {
		log.Error().Err(err).Str("occupationID", occupation.ID).Msg("failed to add guests to occupation, compensating")

		// The occupation row must not survive without its guests. The
		// compensating delete is best effort, a failure here leaves a
		// gap that is logged and accepted.
		if delErr := s.repo.Delete(ctx, shared.FilterByID(occupation.ID, model.FieldID, model.TableName)); delErr != nil {
			log.Error().Err(delErr).Str("occupationID", occupation.ID).Msg("compensating delete failed, orphaned occupation row")
		}

		if postgres.IsForeignKeyViolation(err) {
			return res, failure.BadRequestFromString(msgGuestsMissing) //nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to add guests to occupation: %w", err)
	}

	s.afterWrite(ctx, occupation.ID, reservationEvent{
		Type:         eventReservationCreated,
		OccupationID: occupation.ID,
		RoomID:       occupation.RoomID,
		Status:       occupation.Status,
		Actor:        user,
	})

	res.FromModel(occupation)
	res.WithGuests(links)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOccupationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter = withNotDeleted(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOccupation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for occupations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count occupations")

		return res, fmt.Errorf("failed to count occupations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupations")

		return res, fmt.Errorf("failed to get occupations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	if len(models) > 0 {
		ids := make([]string, len(models))
		for i, occupation := range models {
			ids[i] = occupation.ID
		}

		links, err := s.guestRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{gDto.Filter{
				Field:    model.FieldOccupationID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    model.GuestLinkTableName,
			}},
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to get occupation guests")

			return res, fmt.Errorf("failed to get occupation guests: %w", err)
		}

		linksByOccupation := make(map[string][]model.OccupationGuest, len(models))
		for _, link := range links {
			linksByOccupation[link.OccupationID] = append(linksByOccupation[link.OccupationID], link)
		}

		for i := range res.Occupations {
			res.Occupations[i].WithGuests(linksByOccupation[res.Occupations[i].ID])
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save occupations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter = withNotDeleted(filter)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountOccupation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for occupation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count occupations")

		return res, fmt.Errorf("failed to count occupations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save occupation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.OccupationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetOccupation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for occupation")

		return res, nil
	}

	occupation, err := s.repo.Get(ctx, withNotDeleted(shared.FilterByID(id, model.FieldID, model.TableName)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupation")

		return res, fmt.Errorf("failed to get occupation: %w", err)
	}

	if occupation.ID == constant.Empty {
		return res, failure.NotFound(msgOccupationMissing) //nolint:wrapcheck
	}

	res.FromModel(occupation)

	links, err := s.guestRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(id, model.FieldOccupationID, model.GuestLinkTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupation guests")

		return dto.OccupationResponse{}, fmt.Errorf("failed to get occupation guests: %w", err)
	}

	res.WithGuests(links)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save occupation to cache")
		}
	}()

	return res, nil
}

// Update applies a sparse update. Only fields that are present and valid make
// it into the statement, and an update that provides nothing is rejected.
func (s *serviceImpl) Update(ctx context.Context, payload map[string]any, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	extracted, err := occValidator.ExtractUpdate(payload)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if len(extracted) == 0 {
		return failure.BadRequestFromString("At least one field must be provided for update") //nolint:wrapcheck
	}

	filter := withNotDeleted(shared.FilterByID(id, model.FieldID, model.TableName))

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if occupation exists")

		return fmt.Errorf("failed to check if occupation exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgOccupationMissing) //nolint:wrapcheck
	}

	record := dto.Fields.ToRecord(extracted)
	record[constant.FieldUpdatedAt] = timezone.Now()
	record[constant.FieldUpdatedBy] = user

	if err = s.repo.Update(ctx, record, filter); err != nil {
		if postgres.IsConflict(err) {
			return failure.BadRequestFromString(msgRoomConflict) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update occupation")

		return fmt.Errorf("failed to update occupation: %w", err)
	}

	s.afterWrite(ctx, id, reservationEvent{
		Type:         eventReservationUpdated,
		OccupationID: id,
		Actor:        user,
	})

	return nil
}

// Delete soft-deletes an occupation and returns its final state. Deleting
// twice is an error the caller can distinguish from a missing row.
func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.OccupationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	occupation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupation")

		return res, fmt.Errorf("failed to get occupation: %w", err)
	}

	if occupation.ID == constant.Empty {
		return res, failure.NotFound(msgOccupationMissing) //nolint:wrapcheck
	}

	if occupation.DeletedAt != nil {
		return res, failure.BadRequestFromString("Occupation is already deleted") //nolint:wrapcheck
	}

	now := timezone.Now()
	record := map[string]any{
		constant.FieldDeletedAt: now,
		constant.FieldUpdatedAt: now,
		constant.FieldUpdatedBy: user,
	}

	if err = s.repo.Update(ctx, record, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete occupation")

		return res, fmt.Errorf("failed to delete occupation: %w", err)
	}

	occupation.DeletedAt = &now
	occupation.UpdatedAt = now
	occupation.UpdatedBy = user

	s.afterWrite(ctx, id, reservationEvent{
		Type:         eventReservationDeleted,
		OccupationID: id,
		RoomID:       occupation.RoomID,
		Actor:        user,
	})

	res.FromModel(occupation)

	return res, nil
}

// afterWrite invalidates the read caches and publishes the lifecycle event.
// Both run off the request path.
func (s *serviceImpl) afterWrite(ctx context.Context, id string, event reservationEvent) {
	event.OccurredAt = timezone.Now().Format(constant.DateFormat)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOccupation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete occupation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllOccupation)
		shared.InvalidateCaches(c, s.cache, cacheCountOccupation)

		if s.cfg.Event.Kafka.Enable {
			err := s.events.SendMessages(c, s.cfg.Event.Kafka.Topic, kafka.Message{
				Key:   event.OccupationID,
				Value: event,
			})
			if err != nil {
				log.Error().Err(err).Str("event", event.Type).Msg("failed to publish reservation event")
			}
		}
	}()
}

// withNotDeleted narrows a filter to live rows.
func withNotDeleted(filter gDto.FilterGroup) gDto.FilterGroup {
	if filter.Operator == constant.Empty {
		filter.Operator = gDto.FilterGroupOperatorAnd
	}

	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    constant.FieldDeletedAt,
		Operator: gDto.FilterIsNull,
		Table:    model.TableName,
	})

	return filter
}
