package health

import (
	"travel-api/internal/domain/model"
)

type healthUseCase struct {
	applicationName string
}

func NewHealthUseCase(applicationName string) UseCase {
	return &healthUseCase{
		applicationName: applicationName,
	}
}

// CheckHealth reports liveness. The service keeps no state of its own, so a
// responding process is a healthy one; upstream reachability is judged per
// request, not here.
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	return model.HealthResponse{
		Status:  model.StatusUp,
		Details: map[string]string{"application": useCase.applicationName},
	}
}
