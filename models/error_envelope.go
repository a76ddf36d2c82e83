package models

// ErrorEnvelope is the body of every response produced by the error
// normalizer:
//
//	{"error": {"message": ..., "statusCode": ..., "timestamp": ..., "path": ...}}
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody is the payload wrapped by [ErrorEnvelope].
type ErrorBody struct {
	// Message is the human-readable summary of the failure.
	Message string `json:"message"`

	// StatusCode always equals the HTTP status of the response.
	StatusCode int `json:"statusCode"`

	// Timestamp is the ISO-8601 instant the envelope was built.
	Timestamp string `json:"timestamp"`

	// Path is the original request URI, query string included.
	Path string `json:"path"`

	// Stack is the stack trace of the failure. Never set in production.
	Stack string `json:"stack,omitempty"`

	// Details lists field-level validation issues. Never set in production.
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail describes one failed field constraint.
type ErrorDetail struct {
	// Path is the dotted path of the offending field, e.g. "address.zip".
	Path string `json:"path"`

	// Message explains the failed constraint.
	Message string `json:"message"`

	// Received is the value that failed validation.
	Received any `json:"received"`
}

// NotFoundResponse is returned for every request that matches no route.
type NotFoundResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}
