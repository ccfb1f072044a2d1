package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

const (
	CodeMemberExists    = "MEMBER_EXISTS"
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidName     = "INVALID_NAME"
	CodeInvalidMemo     = "INVALID_MEMO"
	CodeBadRequest      = "BAD_REQUEST"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeUnsupportedFile = "UNSUPPORTED_FILE"
)

var (
	// ErrMemberExists - участник с таким именем уже есть в составе
	ErrMemberExists = &DomainError{
		Code:    CodeMemberExists,
		Message: "member already exists",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrInvalidName - имя не прошло проверку
	ErrInvalidName = &DomainError{
		Code:    CodeInvalidName,
		Message: "invalid member name",
	}

	// ErrInvalidMemo - заметка слишком длинная
	ErrInvalidMemo = &DomainError{
		Code:    CodeInvalidMemo,
		Message: "memo cannot exceed 1000 characters",
	}

	// ErrBadRequest - некорректный запрос
	ErrBadRequest = &DomainError{
		Code:    CodeBadRequest,
		Message: "bad request",
	}

	// ErrInvalidFormat - загруженный файл имеет неверную структуру
	ErrInvalidFormat = &DomainError{
		Code:    CodeInvalidFormat,
		Message: "invalid file format",
	}

	// ErrUnsupportedFile - неподдерживаемое расширение файла
	ErrUnsupportedFile = &DomainError{
		Code:    CodeUnsupportedFile,
		Message: "unsupported file type",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewBadRequestError создает ошибку BAD_REQUEST с текстом для пользователя
func NewBadRequestError(message string) *DomainError {
	return &DomainError{Code: CodeBadRequest, Message: message}
}

// NewInvalidFormatError описывает, что именно не так с загруженным файлом
func NewInvalidFormatError(format string, args ...any) *DomainError {
	return &DomainError{Code: CodeInvalidFormat, Message: fmt.Sprintf(format, args...)}
}

func newValidationError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}
