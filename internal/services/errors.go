package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"travelcms/pkg/utils"
)

// repoErr maps repository failures onto service sentinels. Backend details
// stay in the wrapped message for the request log.
func repoErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrRecordNotFound
	}
	return fmt.Errorf("%w: %s: %v", utils.ErrDatabaseError, op, err)
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, utils.NewValidationError(field, "must be a valid UUID")
	}
	return id, nil
}

func setIf[T any](patch map[string]interface{}, column string, v *T) {
	if v != nil {
		patch[column] = *v
	}
}

func orderIndexOrDefault(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func activeOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
