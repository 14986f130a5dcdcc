package sceneprompt

import (
	"context"
	"fmt"
	"strings"

	"gigi-scenario-server/modules/common/textgen"
)

// 장면 프롬프트 생성 온도 - 구조화된 JSON 출력의 일관성 우선
const sceneTemperature = 0.5

type Service struct {
	gen textgen.Generator
}

func NewService(gen textgen.Generator) *Service {
	return &Service{gen: gen}
}

// GenerateScenePrompts - 한국어 장면 설명을 발화 + 영문 프롬프트 페이로드로 변환
// 직전 발화들(최대 3개)을 컨텍스트로 넣어 단어 반복을 억제
// 출력에서 JSON을 복구하지 못하면 ErrMalformedOutput으로 실패
func (s *Service) GenerateScenePrompts(ctx context.Context, sceneDescription, brandName string, previousDialogues []string) (*ScenePayload, error) {
	prompt := BuildScenePrompt(sceneDescription, brandName, previousDialogues)

	raw, err := s.gen.Generate(ctx, prompt, sceneTemperature)
	if err != nil {
		return nil, fmt.Errorf("장면 프롬프트 생성 실패: %w", err)
	}

	var payload ScenePayload
	if err := textgen.ExtractJSON(raw, &payload); err != nil {
		return nil, fmt.Errorf("장면 프롬프트 응답 파싱 실패: %w", err)
	}

	payload.Dialogue = textgen.StripQuotes(strings.TrimSpace(payload.Dialogue))
	return &payload, nil
}

// IsRepeated - 직전 발화들과 완전히 같은 발화인지 확인 (빈 발화는 반복으로 안 봄)
func IsRepeated(dialogue string, previousDialogues []string) bool {
	d := strings.TrimSpace(dialogue)
	if d == "" {
		return false
	}
	for _, prev := range previousDialogues {
		if strings.TrimSpace(prev) == d {
			return true
		}
	}
	return false
}
