package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/bagdasarian/position-helper/internal/logger"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	logger.Error("request failed", "err", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeMemberExists:
		return http.StatusConflict
	case domain.CodeInvalidName, domain.CodeInvalidMemo, domain.CodeBadRequest, domain.CodeInvalidFormat:
		return http.StatusBadRequest
	case domain.CodeUnsupportedFile:
		return http.StatusUnsupportedMediaType
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON кодирует тело до отправки заголовка, чтобы ошибка кодирования
// превратилась в 500, а не в пустой ответ 200
func writeJSON(w http.ResponseWriter, status int, body any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		logger.Error("failed to encode response", "err", err)
		buf.Reset()
		status = http.StatusInternalServerError
		buf.WriteString(`{"error":{"code":"INTERNAL_ERROR","message":"internal server error"}}` + "\n")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Warn("failed to write response", "err", err)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewBadRequestError("invalid request body: " + err.Error())
	}
	return nil
}
