package models

// ApiResponse is the shared envelope for every endpoint. The dashboard keys
// off the success flag; message carries human-readable errors and errors
// carries per-field validation detail.
type ApiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// FieldError is one entry of the errors array on validation failures.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Pagination struct {
	Current int   `json:"current" example:"1"`
	Pages   int   `json:"pages" example:"5"`
	Total   int64 `json:"total" example:"42"`
}

// ReportPage is the GET /reports payload: trimmed report rows plus paging.
type ReportPage struct {
	Reports    []ReportListRow `json:"reports"`
	Pagination Pagination      `json:"pagination"`
}

func SuccessResponse(data any) ApiResponse {
	return ApiResponse{Success: true, Data: data}
}

func MessageResponse(message string, data any) ApiResponse {
	return ApiResponse{Success: true, Message: message, Data: data}
}

func ErrorResponse(message string) ApiResponse {
	return ApiResponse{Success: false, Message: message}
}

func ValidationErrorResponse(message string, errs []FieldError) ApiResponse {
	return ApiResponse{Success: false, Message: message, Errors: errs}
}
