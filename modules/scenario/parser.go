package scenario

import (
	"strings"
	"unicode/utf8"

	"gigi-scenario-server/modules/common/model"
)

// 장면 전환 구분자 - 시나리오 생성 프롬프트가 유도하는 전환 표현들
var sceneSeparators = []string{
	"화면 전환이 되고",
	"화면 전환되고",
	"화면이 전환되고",
	"장면 전환",
	"그 다음",
	"다음으로",
	"이후",
	"그리고",
	"->",
	"→",
}

const sceneBreak = "\x00SCENE_BREAK\x00"

// 너무 짧은 조각은 장면으로 취급하지 않음 (조사/접속어 잔여물 제거)
const minSceneRunes = 6

// Parse - 시나리오 텍스트를 순서 있는 장면 설명 리스트로 분할
// 1) 전환 구분자 기준 분할 → 2) 마침표 기준 문장 분할 → 3) 전체를 한 장면으로
// 부수효과 없음
func Parse(scenarioText string) ([]string, error) {
	text := strings.TrimSpace(scenarioText)
	if text == "" {
		return nil, model.ErrEmptyScenario
	}

	marked := text
	for _, sep := range sceneSeparators {
		marked = strings.ReplaceAll(marked, sep, sceneBreak)
	}

	var raw []string
	if strings.Contains(marked, sceneBreak) {
		raw = strings.Split(marked, sceneBreak)
	} else {
		// 구분자가 없으면 마침표 기준으로 분할 (쉼표는 너무 세밀함)
		raw = strings.Split(text, ".")
	}

	scenes := make([]string, 0, len(raw))
	for _, part := range raw {
		cleaned := strings.TrimSpace(strings.Trim(strings.TrimSpace(part), ",."))
		if cleaned == "" {
			continue
		}
		if utf8.RuneCountInString(cleaned) < minSceneRunes {
			continue
		}
		scenes = append(scenes, cleaned)
	}

	// 구분자도 문장 경계도 못 찾으면 전체를 한 장면으로
	if len(scenes) == 0 {
		scenes = []string{text}
	}

	return scenes, nil
}
