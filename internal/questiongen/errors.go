package questiongen

// genericMessage is the only failure text surfaced to callers. Provider
// detail stays in the error chain for logging and errors.As.
const genericMessage = "Failed to generate practice questions. Please try again."

// MalformedOutputError indicates the service returned non-JSON, an empty
// array, or a record that failed validation.
type MalformedOutputError struct {
	Err error
}

func (e *MalformedOutputError) Error() string { return genericMessage }

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// ServiceError indicates the service call itself failed (auth, rate limit,
// transport, schema rejection).
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string { return genericMessage }

func (e *ServiceError) Unwrap() error { return e.Err }
