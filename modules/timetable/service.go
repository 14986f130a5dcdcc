package timetable

import (
	"context"
	"log"

	"gigi-scenario-server/modules/common/config"
	"gigi-scenario-server/modules/common/model"
	"gigi-scenario-server/modules/scenario"
	"gigi-scenario-server/modules/sceneprompt"
)

// ScenePromptGenerator - 장면 하나를 발화 + 프롬프트 페이로드로 변환
type ScenePromptGenerator interface {
	GenerateScenePrompts(ctx context.Context, sceneDescription, brandName string, previousDialogues []string) (*sceneprompt.ScenePayload, error)
}

// Orchestrator - 타임테이블 스트리밍 생성기
// 장면을 인덱스 순서로 하나씩 생성하며, 장면 i+1은 장면 i의 발화가 확정된 뒤에만 요청
type Orchestrator struct {
	prompts     ScenePromptGenerator
	sessions    *SessionStore
	maxAttempts int
}

func NewOrchestrator(prompts ScenePromptGenerator, sessions *SessionStore) *Orchestrator {
	cfg := config.GetConfig()
	return &Orchestrator{
		prompts:     prompts,
		sessions:    sessions,
		maxAttempts: cfg.MaxValidationAttempts,
	}
}

// GenerateTimetableStream - 시나리오를 파싱/시간 배분한 뒤 장면 이벤트 채널을 반환
// 입력 검증 실패는 스트림 시작 전에 에러로 반환
// 반환된 채널은 scene 이벤트들 뒤에 complete 또는 error 이벤트 하나로 끝나고 닫힘
// ctx가 취소되면 이후 장면은 생성하지 않고 채널을 닫음
func (o *Orchestrator) GenerateTimetableStream(ctx context.Context, req StreamRequest) (<-chan Event, error) {
	descriptions, err := scenario.Parse(req.Scenario)
	if err != nil {
		return nil, err
	}

	slots, err := scenario.Allocate(len(descriptions), req.VideoDuration)
	if err != nil {
		return nil, err
	}

	events := make(chan Event)
	go o.run(ctx, req, descriptions, slots, events)
	return events, nil
}

func (o *Orchestrator) run(ctx context.Context, req StreamRequest, descriptions []string, slots []scenario.TimeSlot, events chan<- Event) {
	defer close(events)

	emit := func(ev Event) bool {
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	previousDialogues := make([]string, 0, len(descriptions))

	for i, desc := range descriptions {
		if ctx.Err() != nil {
			log.Printf("🔌 타임테이블 스트림 중단 (장면 %d/%d)", i+1, len(descriptions))
			return
		}

		log.Printf("🎬 장면 %d/%d 생성 중: %s", i+1, len(descriptions), truncate(desc, 40))

		payload, err := o.generateScene(ctx, desc, req.Brand, previousDialogues)
		if err != nil {
			log.Printf("❌ 장면 %d 생성 실패: %v", i, err)
			emit(Event{Type: EventError, Data: ErrorData{
				SceneIndex: i,
				Message:    err.Error(),
				Code:       model.CodeForError(err),
			}})
			return
		}

		scene := Scene{
			Index:                  i,
			TimeStart:              slots[i].Start,
			TimeEnd:                slots[i].End,
			SceneDescription:       desc,
			Dialogue:               payload.Dialogue,
			BackgroundSoundsPrompt: payload.BackgroundSoundsPrompt,
			T2IPrompt:              payload.T2IPrompt,
			ImageEditPrompt:        payload.ImageEditPrompt,
		}

		// 세션이 지정되면 장면 편집용으로 저장 (실패해도 스트림은 계속)
		if o.sessions != nil && req.SessionID != "" {
			if err := o.sessions.SaveScene(ctx, req.SessionID, scene); err != nil {
				log.Printf("⚠️ 장면 %d 세션 저장 실패: %v", i, err)
			}
		}

		if !emit(Event{Type: EventScene, Data: scene}) {
			return
		}

		// 다음 장면의 반복 방지 컨텍스트로 확정된 발화를 누적
		previousDialogues = append(previousDialogues, payload.Dialogue)
	}

	emit(Event{Type: EventComplete, Data: CompleteData{
		Status:      "completed",
		TotalScenes: len(descriptions),
	}})
}

// generateScene - 장면 payload 생성, 발화가 직전 발화와 완전히 같으면 재생성
// 재시도 소진 시 마지막 payload의 발화를 비워서 반환 (반복 발화를 그대로 내보내지 않음)
func (o *Orchestrator) generateScene(ctx context.Context, desc, brandName string, previousDialogues []string) (*sceneprompt.ScenePayload, error) {
	var payload *sceneprompt.ScenePayload

	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		p, err := o.prompts.GenerateScenePrompts(ctx, desc, brandName, previousDialogues)
		if err != nil {
			return nil, err
		}
		payload = p

		if !sceneprompt.IsRepeated(p.Dialogue, previousDialogues) {
			return p, nil
		}

		log.Printf("⚠️ 발화 반복 감지 (%d/%d회) - 재생성: %s", attempt, o.maxAttempts, truncate(p.Dialogue, 30))
	}

	log.Printf("⚠️ 발화 반복 해소 실패 - 빈 발화로 대체")
	payload.Dialogue = ""
	return payload, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
