package textgen

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"gigi-scenario-server/modules/common/model"
)

// 모델이 JSON을 코드 블록으로 감싸는 경우가 많음
var jsonFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// ExtractJSON - 모델 출력 자유 텍스트에서 첫 번째 완결된 JSON 오브젝트를 찾아 v로 파싱
// 복구 불가 시 ErrMalformedOutput
func ExtractJSON(text string, v any) error {
	candidate := ""

	if m := jsonFenceRe.FindStringSubmatch(text); m != nil {
		candidate = m[1]
	} else {
		candidate = firstBalancedObject(text)
	}

	if candidate == "" {
		return fmt.Errorf("%w: no '{' ... '}' pair found", model.ErrMalformedOutput)
	}

	if err := json.Unmarshal([]byte(candidate), v); err != nil {
		// 코드 블록 안의 JSON이 깨졌으면 본문 전체에서 한 번 더 시도
		if fallback := firstBalancedObject(text); fallback != "" && fallback != candidate {
			if err2 := json.Unmarshal([]byte(fallback), v); err2 == nil {
				return nil
			}
		}
		return fmt.Errorf("%w: %v", model.ErrMalformedOutput, err)
	}
	return nil
}

// firstBalancedObject - 문자열 리터럴과 이스케이프를 고려해
// 첫 번째로 괄호가 균형을 이루는 {...} 부분 문자열 반환
func firstBalancedObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// StripQuotes - 모델이 발화를 따옴표로 감싸 반환하는 경우 정리
func StripQuotes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"'“”‘’")
	return strings.TrimSpace(s)
}
