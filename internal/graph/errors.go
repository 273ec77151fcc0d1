package graph

const (
	CodeNotFound             = "NOT_FOUND"
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeConflict             = "CONFLICT"
	CodeInternal             = "INTERNAL"
)

// Error is a resolver error carrying a machine-readable code. The GraphQL
// execution layer exposes the code through the error's extensions.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func errNotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func errAuthenticationFailed() *Error {
	return &Error{Code: CodeAuthenticationFailed, Message: "Authentication failed"}
}

func errInvalidCredentials() *Error {
	return &Error{Code: CodeInvalidCredentials, Message: "Invalid credentials"}
}

func errConflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg}
}

func errInternal() *Error {
	return &Error{Code: CodeInternal, Message: "internal error"}
}
