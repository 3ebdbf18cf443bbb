package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"posada/config"
	"posada/infras/otel"
	"posada/infras/postgres"
	"posada/internal/domains/user/model"
	"posada/internal/domains/user/model/dto"
	"posada/internal/domains/user/repository"
	userValidator "posada/internal/domains/user/validator"
	"posada/shared"
	"posada/shared/constant"
	gDto "posada/shared/dto"
	"posada/shared/failure"
	"posada/shared/password"

	"github.com/rs/zerolog/log"
)

type User interface {
	Create(ctx context.Context, payload map[string]any) (dto.UserResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo repository.User
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.User, cfg *config.Config, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Create provisions a staff account. The password never leaves this function
// in clear, only its bcrypt hash is persisted.
func (s *serviceImpl) Create(ctx context.Context, payload map[string]any) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	extracted, err := userValidator.ExtractCreate(payload)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	rawPassword, _ := extracted["password"].(string)

	passwordHash, err := password.Hash(rawPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := dto.NewUserModel(extracted, passwordHash)

	if err = s.repo.Insert(ctx, user); err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString("User with this email already exists") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("User not found") //nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}
