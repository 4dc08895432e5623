package response

// 错误码前三位即 HTTP 状态码
var (
	ErrInvalidRequest     = newError(40001, "invalid request")
	ErrFileType           = newError(40002, "unsupported file type")
	ErrTokenInvalid       = newError(40101, "invalid or expired token")
	ErrUnauthorized       = newError(40102, "unauthorized")
	ErrInvalidCredentials = newError(40103, "invalid credentials")
	ErrForbidden          = newError(40301, "forbidden")
	ErrNotFound           = newError(40401, "not found")
	ErrAlreadyExists      = newError(40901, "already exists")
	ErrDatabase           = newError(50001, "database error")
	ErrServerInternal     = newError(50002, "internal server error")
	ErrUpload             = newError(50003, "file upload failed")
)
