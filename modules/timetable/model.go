package timetable

import "gigi-scenario-server/modules/sceneprompt"

// 스트림 이벤트 타입
const (
	EventScene    = "scene"
	EventComplete = "complete"
	EventError    = "error"
)

// Event - 스트림으로 내보내는 이벤트 한 건
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Scene - 타임테이블의 장면 하나 (스트림과 세션 저장소 공용)
type Scene struct {
	Index                  int                         `json:"index"`
	TimeStart              float64                     `json:"time_start"`
	TimeEnd                float64                     `json:"time_end"`
	SceneDescription       string                      `json:"scene_description"`
	Dialogue               string                      `json:"dialogue"`
	BackgroundSoundsPrompt string                      `json:"background_sounds_prompt"`
	T2IPrompt              sceneprompt.T2IPrompt       `json:"t2i_prompt"`
	ImageEditPrompt        sceneprompt.ImageEditPrompt `json:"image_edit_prompt"`
}

// CompleteData - 정상 종료 이벤트 payload
type CompleteData struct {
	Status      string `json:"status"`
	TotalScenes int    `json:"total_scenes"`
}

// ErrorData - 스트림을 끝내는 에러 이벤트 payload
type ErrorData struct {
	SceneIndex int    `json:"scene_index"`
	Message    string `json:"message"`
	Code       string `json:"code"`
}

// StreamRequest - POST /generate-timetable-stream 요청
type StreamRequest struct {
	Scenario      string  `json:"scenario"`
	VideoDuration float64 `json:"video_duration"`
	Brand         string  `json:"brand"`
	SessionID     string  `json:"session_id,omitempty"`
}

// SceneUpdate - PATCH /edit-scene 요청 (nil 필드는 변경 없음)
type SceneUpdate struct {
	SessionID              string                       `json:"session_id"`
	SceneIndex             int                          `json:"scene_index"`
	Dialogue               *string                      `json:"dialogue,omitempty"`
	BackgroundSoundsPrompt *string                      `json:"background_sounds_prompt,omitempty"`
	T2IPrompt              *sceneprompt.T2IPrompt       `json:"t2i_prompt,omitempty"`
	ImageEditPrompt        *sceneprompt.ImageEditPrompt `json:"image_edit_prompt,omitempty"`
}
