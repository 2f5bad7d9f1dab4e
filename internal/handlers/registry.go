package handlers

import (
	"database/sql"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	AuthHandler   *AuthHandler
	JobHandler    *JobHandler
	HealthHandler *HealthHandler
}

// NewAppHandlers wires the handlers onto the service container. sqlDB backs
// the health endpoint's store ping and may be nil in tests.
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator, sqlDB *sql.DB) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:   NewAuthHandler(base, sc.AuthService),
		JobHandler:    NewJobHandler(base, sc.JobService),
		HealthHandler: NewHealthHandler(base, sqlDB),
	}
}
