package usecase

import (
	"time"

	"github.com/google/uuid"

	"hotel-booking/pkg/apperror"
)

var (
	nowFunc = time.Now
	newID   = uuid.New
)

func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid "+what+" id", map[string]string{"id": "Must be a valid UUID"})
	}
	return id, nil
}
