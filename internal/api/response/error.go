package response

// Error is the envelope for failed requests.
type Error struct {
	Success bool         `json:"success"`
	Code    int          `json:"code"`
	Extras  ErrorDetails `json:"extras"`
}

// ErrorDetails carries the human readable message.
type ErrorDetails struct {
	Message string `json:"message"`
}

func NewError(code int, message string) Error {
	return Error{
		Success: false,
		Code:    code,
		Extras:  ErrorDetails{Message: message},
	}
}
