package handlers

// AppHandlers bundles all HTTP handlers for route registration.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	EmployerHandler *EmployerHandler
	WorkerHandler   *WorkerHandler
	UploadHandler   *UploadHandler
	FileHandler     *FileHandler
}
