package usecase

// Error codes surfaced by the auth and lead services. Handlers map
// them to HTTP statuses; services never pick status codes themselves.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeNotRegistered      = "NOT_REGISTERED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeAdminExists        = "ADMIN_EXISTS"
	CodeIncorrectPassword  = "INCORRECT_PASSWORD"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeLeadNotFound       = "LEAD_NOT_FOUND"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidAssignee    = "INVALID_ASSIGNEE"
)

// DomainError is a business-rule failure the caller can act on.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// DomainCode returns the code of a DomainError, or "" for any other
// error.
func DomainCode(err error) string {
	if de, ok := err.(*DomainError); ok {
		return de.Code
	}
	return ""
}

// TechnicalError is an infrastructure failure (datastore, transaction
// abort). Handlers surface it as a 500.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
