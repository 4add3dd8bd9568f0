package slack

// APIError Representation of an error response from the webhook endpoint
type APIError struct {
	// a message that can be printed out for the user
	Message string `json:"message"`
	Code    int
}

func (e *APIError) Error() string {
	return e.Message
}
