package services

// ServiceContainer holds instances of the application services handed to the
// handlers at wiring time.
type ServiceContainer struct {
	Import ImportSvcFacade
}
