package model

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorResponse - 에러 응답 공통 형식
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// WriteError - 에러 코드를 포함한 JSON 에러 응답 작성
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: err.Error(),
		Code:  CodeForError(err),
	})
}

// StatusForError - 에러 종류별 HTTP 상태 코드 매핑
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrEmptyScenario), errors.Is(err, ErrInvalidDuration), errors.Is(err, ErrUnknownBrand):
		return http.StatusBadRequest
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrCollaboratorUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrMalformedOutput):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
