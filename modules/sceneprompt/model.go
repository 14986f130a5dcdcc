package sceneprompt

// T2IPrompt - 이미지 생성용 영문 프롬프트 묶음
type T2IPrompt struct {
	Background           string `json:"background"`
	CharacterPoseAndGaze string `json:"character_pose_and_gaze"`
	Product              string `json:"product"`
	CameraAngle          string `json:"camera_angle"`
}

// ImageEditPrompt - 기준 이미지에서 변경할 요소들의 영문 지시문
type ImageEditPrompt struct {
	PoseChange      string `json:"pose_change"`
	GazeChange      string `json:"gaze_change"`
	Expression      string `json:"expression"`
	AdditionalEdits string `json:"additional_edits"`
}

// ScenePayload - 장면 하나에 대한 생성 결과 전체
// Dialogue는 한국어, 나머지는 전부 영어
type ScenePayload struct {
	Dialogue               string          `json:"dialogue"`
	BackgroundSoundsPrompt string          `json:"background_sounds_prompt"`
	T2IPrompt              T2IPrompt       `json:"t2i_prompt"`
	ImageEditPrompt        ImageEditPrompt `json:"image_edit_prompt"`
}
