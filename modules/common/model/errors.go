package model

import "errors"

// 파이프라인 전역 에러 - 각 모듈은 이 에러들을 errors.Is로 판별
var (
	// ErrEmptyScenario - 시나리오 텍스트가 비어있음 (입력 검증)
	ErrEmptyScenario = errors.New("scenario text is empty")

	// ErrInvalidDuration - 영상 길이 또는 장면 개수가 유효하지 않음 (입력 검증)
	ErrInvalidDuration = errors.New("invalid video duration or scene count")

	// ErrUnknownBrand - 템플릿 매핑에 없는 브랜드 (쿼리 없이 요청된 경우)
	ErrUnknownBrand = errors.New("unknown brand")

	// ErrMalformedOutput - 모델 출력에서 유효한 JSON을 복구하지 못함
	ErrMalformedOutput = errors.New("no recoverable JSON object in model output")

	// ErrCollaboratorUnavailable - 텍스트 생성 서비스 자체가 응답 불가
	ErrCollaboratorUnavailable = errors.New("text generation service unavailable")

	// ErrSessionNotFound - 세션 또는 장면이 저장소에 없음
	ErrSessionNotFound = errors.New("session or scene not found")
)

// Wire-level error codes
const (
	ErrCodeInvalidRequest          = "INVALID_REQUEST"
	ErrCodeUnknownBrand            = "UNKNOWN_BRAND"
	ErrCodeMalformedOutput         = "MALFORMED_OUTPUT"
	ErrCodeCollaboratorUnavailable = "COLLABORATOR_UNAVAILABLE"
	ErrCodeSessionNotFound         = "SESSION_NOT_FOUND"
	ErrCodeInternalError           = "INTERNAL_ERROR"
)

// CodeForError - 에러를 wire 에러 코드로 변환
func CodeForError(err error) string {
	switch {
	case errors.Is(err, ErrEmptyScenario),
		errors.Is(err, ErrInvalidDuration):
		return ErrCodeInvalidRequest
	case errors.Is(err, ErrUnknownBrand):
		return ErrCodeUnknownBrand
	case errors.Is(err, ErrMalformedOutput):
		return ErrCodeMalformedOutput
	case errors.Is(err, ErrCollaboratorUnavailable):
		return ErrCodeCollaboratorUnavailable
	case errors.Is(err, ErrSessionNotFound):
		return ErrCodeSessionNotFound
	default:
		return ErrCodeInternalError
	}
}
