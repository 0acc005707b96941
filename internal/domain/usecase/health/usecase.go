package health

import "travel-api/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
