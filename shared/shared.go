package shared

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"posada/shared/cache"
	"posada/shared/constant"
	"posada/shared/dto"
	"posada/shared/timezone"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero fields of a struct into a map of
// updated columns, keyed by the `db` tag, and stamps the audit columns.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldUpdatedAt] = timezone.Now()
	updatedFields[constant.FieldUpdatedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a prefix and its discriminating parts into a single
// colon-separated cache key.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a cache key from the pagination parameters
// and the where clause. The filter arguments are folded into a short hash so
// equivalent listings share a key without the key growing unbounded.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	clause, args := filter.GetWhereClause()

	hasher := fnv.New64a()
	fmt.Fprint(hasher, clause)

	argNames := make([]string, 0, len(args))
	for key := range args {
		argNames = append(argNames, key)
	}

	sort.Strings(argNames)

	for _, key := range argNames {
		fmt.Fprintf(hasher, "|%s=%v", key, args[key])
	}

	return fmt.Sprintf("%s:%d:%d:%s:%s:%x",
		prefix,
		params.Page,
		params.Limit,
		params.SortBy,
		params.SortDir,
		hasher.Sum64(),
	)
}

// InvalidateCaches drops every cache entry under the given prefix. Failures
// are logged and swallowed since the cache is best effort.
func InvalidateCaches(c context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(c, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
