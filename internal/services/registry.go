package services

import "jobboard_backend/internal/repositories"

// ServiceContainer holds every service instance built at startup.
type ServiceContainer struct {
	AuthService AuthService
	JobService  JobService
}

// NewServiceContainer wires repositories into services.
func NewServiceContainer() *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()

	return &ServiceContainer{
		AuthService: NewAuthService(userRepo),
		JobService:  NewJobService(jobRepo),
	}
}
