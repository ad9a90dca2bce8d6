package response

// Stable error codes, part of the wire contract.
const (
	CodeNotFound       = "NOT_FOUND"
	CodeBadRequest     = "BAD_REQUEST"
	CodeConflict       = "CONFLICT"
	CodeUnauthorized   = "UNAUTHORIZED" // reserved, no resource uses it yet
	CodeFileTooLarge   = "FILE_TOO_LARGE"
	CodeInvalidType    = "INVALID_FILE_TYPE"
	CodeDatabaseError  = "DATABASE_ERROR"
	CodeInternalError  = "INTERNAL_SERVER_ERROR"
)

var (
	ErrDatabase = ErrorResponse{
		Status: "error",
		Error:  "Internal database error",
		Code:   CodeDatabaseError,
	}

	ErrInternal = ErrorResponse{
		Status: "error",
		Error:  "Internal server error",
		Code:   CodeInternalError,
	}

	ErrInvalidID = ErrorResponse{
		Status: "error",
		Error:  "Invalid id",
		Code:   CodeBadRequest,
	}

	ErrInvalidRequestFormat = ErrorResponse{
		Status: "error",
		Error:  "Invalid request format",
		Code:   CodeBadRequest,
	}
)
