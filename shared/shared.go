package shared

import (
	"clockwise/shared/constant"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins the non-empty parts with the cache key separator.
func BuildCacheKey(parts ...string) string {
	filtered := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == constant.Empty {
			continue
		}

		filtered = append(filtered, part)
	}

	return strings.Join(filtered, constant.CacheKeySeparator)
}

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

// ClampLimit keeps a requested page size within [1, maxLimit].
func ClampLimit(limit, def, maxLimit int) int {
	if limit <= 0 {
		limit = def
	}

	if maxLimit > 0 && limit > maxLimit {
		return maxLimit
	}

	return limit
}
