package response

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Deleted(message string) DeleteResponse {
	return DeleteResponse{
		Success: true,
		Message: message,
	}
}

// ErrorResponse is the only failure shape the API emits. Code is the
// stable machine-readable identifier; Error stays human-readable and
// never carries store-level detail.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

func Error(code, message string) ErrorResponse {
	return ErrorResponse{
		Status: "error",
		Error:  message,
		Code:   code,
	}
}

func ErrorWithDetails(code, message, details string) ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Error:   message,
		Code:    code,
		Details: details,
	}
}
