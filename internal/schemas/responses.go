package schemas

// SuccessResponse is the envelope for every successful operation. Results is
// omitted entirely for pure deletes.
type SuccessResponse struct {
	Code    string `json:"code"`
	Results any    `json:"results,omitempty"`
}

// ErrorResponse is the envelope for every failed operation.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewSuccessResponse wraps results in the "ok" envelope.
func NewSuccessResponse(results any) SuccessResponse {
	return SuccessResponse{Code: "ok", Results: results}
}

// NewErrorResponse wraps a message in the "error" envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Code: "error", Message: message}
}
