package services

import (
	portsrepo "github.com/hostalqori/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hostalqori/hotel_management_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.TransactionManager, importCfg ImportConfig) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Import: NewImportService(repos, importCfg),
	}
}
