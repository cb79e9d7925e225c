package services

// ServiceContainer carries the service facades handed to the route
// registration layer.
type ServiceContainer struct {
	User  UserSvcFacade
	Token TokenSvcFacade
	Media MediaUploader
}
