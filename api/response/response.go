package response

// ErrorResponse is the JSON envelope for every error status.
type ErrorResponse struct {
	Message string `json:"message"`
}
