package apperr

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

func NewUnauthorized(msg string) *UnauthorizedError {
	return &UnauthorizedError{Message: msg}
}

type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func NewForbidden(msg string) *ForbiddenError {
	return &ForbiddenError{Message: msg}
}

type NotFoundError struct {
	Message string
	Err     error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

func NewNotFoundWrap(msg string, err error) *NotFoundError {
	return &NotFoundError{Message: msg, Err: err}
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(msg string) *ConflictError {
	return &ConflictError{Message: msg}
}

// QuotaError means the completion provider reported insufficient quota.
type QuotaError struct {
	Message string
}

func (e *QuotaError) Error() string {
	return e.Message
}

func NewQuota(msg string) *QuotaError {
	return &QuotaError{Message: msg}
}

const ProviderCodeInvalidAPIKey = "invalid_api_key"

// ProviderError carries a classified failure from the completion provider.
// Code is the provider's machine-readable error code (e.g. "invalid_api_key").
type ProviderError struct {
	Message string
	Code    string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProvider(msg, code string) *ProviderError {
	return &ProviderError{Message: msg, Code: code}
}

// EmptyGenerationError means the provider answered successfully but
// returned no usable text.
type EmptyGenerationError struct {
	Message string
}

func (e *EmptyGenerationError) Error() string {
	return e.Message
}

func NewEmptyGeneration(msg string) *EmptyGenerationError {
	return &EmptyGenerationError{Message: msg}
}

// MalformedResponseError means a provider response could not be parsed
// into the expected structure.
type MalformedResponseError struct {
	Message string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func NewMalformedResponse(msg string) *MalformedResponseError {
	return &MalformedResponseError{Message: msg}
}

func NewMalformedResponseWrap(msg string, err error) *MalformedResponseError {
	return &MalformedResponseError{Message: msg, Err: err}
}
