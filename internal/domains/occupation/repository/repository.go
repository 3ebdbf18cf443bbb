package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"posada/infras/otel"
	"posada/infras/postgres"
	"posada/internal/domains/occupation/model"
	gDto "posada/shared/dto"
	gRepo "posada/shared/repository"
)

type Occupation interface {
	Insert(ctx context.Context, model model.Occupation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Occupation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Occupation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

// OccupationGuest persists the guest links of an occupation.
type OccupationGuest interface {
	InsertBulk(ctx context.Context, models []model.OccupationGuest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.OccupationGuest, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Occupation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Occupation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Occupation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type guestLinkRepositoryImpl struct {
	gRepo.Repository[model.OccupationGuest]
	db   *postgres.Connection
	otel otel.Otel
}

func NewGuestLink(db *postgres.Connection, otel otel.Otel) OccupationGuest {
	return &guestLinkRepositoryImpl{
		Repository: gRepo.NewRepository[model.OccupationGuest](model.GuestLinkEntityName, model.GuestLinkTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
