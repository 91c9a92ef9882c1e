package services

// ServiceContainer bundles all services for DI into handlers.
type ServiceContainer struct {
	AuthService     AuthService
	UserService     UserService
	EmployerService EmployerService
	WorkerService   WorkerService
	UploadService   UploadService
}
