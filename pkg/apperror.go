package pkg

// AppError is the application-level error carried from usecases to the HTTP
// layer. Code is a stable machine-readable identifier; Message is the
// human-readable detail surfaced to clients.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPErrorBody is the JSON error envelope returned by every endpoint.
type HTTPErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) ToHTTPError() HTTPErrorBody {
	return HTTPErrorBody{Code: e.Code, Message: e.Message}
}
