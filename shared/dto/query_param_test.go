package dto_test

import (
	"net/http/httptest"
	"testing"

	"posada/shared/constant"
	"posada/shared/dto"
	"posada/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryParamsFromRequest(t *testing.T) {
	t.Run("defaults applied when absent", func(t *testing.T) {
		params := dto.QueryParams{}
		err := params.FromRequest(httptest.NewRequest("GET", "/stays", nil), true)

		require.NoError(t, err)
		assert.Equal(t, constant.DefaultValuePage, params.Page)
		assert.Equal(t, constant.DefaultValueLimit, params.Limit)
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		params := dto.QueryParams{}
		err := params.FromRequest(httptest.NewRequest("GET", "/stays?page=3&limit=25", nil), true)

		require.NoError(t, err)
		assert.Equal(t, 3, params.Page)
		assert.Equal(t, 25, params.Limit)
	})

	t.Run("non numeric page rejected", func(t *testing.T) {
		params := dto.QueryParams{}
		err := params.FromRequest(httptest.NewRequest("GET", "/stays?page=abc", nil), true)

		assert.ErrorIs(t, err, failure.InvalidPageParam)
	})

	t.Run("zero page rejected", func(t *testing.T) {
		params := dto.QueryParams{}
		err := params.FromRequest(httptest.NewRequest("GET", "/stays?page=0", nil), true)

		assert.ErrorIs(t, err, failure.InvalidPageParam)
	})

	t.Run("negative limit rejected", func(t *testing.T) {
		params := dto.QueryParams{}
		err := params.FromRequest(httptest.NewRequest("GET", "/stays?limit=-1", nil), true)

		assert.ErrorIs(t, err, failure.InvalidLimitParam)
	})

	t.Run("sort direction normalized", func(t *testing.T) {
		params := dto.QueryParams{}
		err := params.FromRequest(httptest.NewRequest("GET", "/stays?sort_by=status&sort_dir=desc", nil), false)

		require.NoError(t, err)
		assert.Equal(t, "status", params.SortBy)
		assert.Equal(t, dto.SortDirDesc, params.SortDir)
	})

	t.Run("unknown sort direction dropped", func(t *testing.T) {
		params := dto.QueryParams{}
		err := params.FromRequest(httptest.NewRequest("GET", "/stays?sort_by=status&sort_dir=sideways", nil), false)

		require.NoError(t, err)
		assert.Empty(t, params.SortDir)
	})
}
