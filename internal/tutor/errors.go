package tutor

// genericMessage is the only failure text surfaced to callers. The cause
// stays in the chain for logging.
const genericMessage = "Failed to get a response from the AI tutor. Please try again."

// ServiceError indicates the tutor request failed for any reason (auth,
// rate limit, transport).
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string { return genericMessage }

func (e *ServiceError) Unwrap() error { return e.Err }
