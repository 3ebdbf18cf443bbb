package repository

import (
	"testing"

	"posada/infras/otel/mocks"
	"posada/shared/dto"

	"github.com/stretchr/testify/assert"
)

type stayRecord struct {
	ID         string  `db:"id"`
	Status     string  `db:"status"`
	RoomNumber *string `db:"room_number" table:"rooms"`
}

func TestNewRepositoryColumns(t *testing.T) {
	repo := NewRepository[stayRecord]("StayRecord", "stays", "id", nil, mocks.NewOtel())

	assert.Equal(t, []string{"id", "status"}, repo.InsertColumns)
}

func TestRepositoryOrderClause(t *testing.T) {
	repo := NewRepository[stayRecord]("StayRecord", "stays", "id", nil, mocks.NewOtel())

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{
			name:   "known column",
			params: dto.QueryParams{SortBy: "status", SortDir: dto.SortDirDesc},
			want:   "ORDER BY stays.status DESC",
		},
		{
			name:   "joined column",
			params: dto.QueryParams{SortBy: "room_number", SortDir: dto.SortDirAsc},
			want:   "ORDER BY rooms.room_number ASC",
		},
		{
			name:   "unknown column",
			params: dto.QueryParams{SortBy: "status; DROP TABLE stays", SortDir: dto.SortDirAsc},
			want:   "",
		},
		{
			name:   "unknown direction",
			params: dto.QueryParams{SortBy: "status", SortDir: "SIDEWAYS"},
			want:   "",
		},
		{
			name:   "no sort requested",
			params: dto.QueryParams{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.orderClause(tt.params))
		})
	}
}
