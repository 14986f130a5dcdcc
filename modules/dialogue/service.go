package dialogue

import (
	"context"
	"fmt"
	"strings"

	"gigi-scenario-server/modules/common/textgen"
	"gigi-scenario-server/modules/sceneprompt"
)

// 발화 재생성 온도 - 재생성 버튼을 누를 때마다 다른 결과가 나오도록 높게 유지
const dialogueTemperature = 0.7

type Service struct {
	gen textgen.Generator
}

func NewService(gen textgen.Generator) *Service {
	return &Service{gen: gen}
}

// GenerateDialogueOnly - 장면 하나의 발화만 새로 생성
// 매 호출이 독립적인 시도이며 내부 재시도 없음 (재생성 버튼 의미론)
func (s *Service) GenerateDialogueOnly(ctx context.Context, sceneDescription string, previousDialogues []string) (string, error) {
	prompt := sceneprompt.BuildDialoguePrompt(sceneDescription, previousDialogues)

	raw, err := s.gen.Generate(ctx, prompt, dialogueTemperature)
	if err != nil {
		return "", fmt.Errorf("발화 생성 실패: %w", err)
	}

	text := textgen.StripQuotes(strings.TrimSpace(raw))

	// 지시를 어기고 JSON으로 감싸서 답하는 경우 처리
	if strings.HasPrefix(text, "{") {
		var wrapped struct {
			Dialogue string `json:"dialogue"`
		}
		if err := textgen.ExtractJSON(text, &wrapped); err == nil {
			text = strings.TrimSpace(wrapped.Dialogue)
		}
	}

	return text, nil
}
