package grammar

import (
	"context"
	"log"

	"gigi-scenario-server/modules/common/textgen"
)

// 검증 응답 파싱 실패 시 기본 점수 (통과 처리)
const fallbackScore = 7.0

// 검증 LLM 호출 온도 - 일관된 평가를 위해 낮게 유지
const scoringTemperature = 0.3

// GenerateFunc - 검증 대상 후보 텍스트를 한 건 생성
type GenerateFunc func(ctx context.Context) (string, error)

// Result - 검증 루프의 최종 결과
type Result struct {
	Text           string  // 채택된 텍스트 (통과하거나 최고 점수 후보)
	Score          float64 // 채택된 텍스트의 점수
	Attempts       int     // 실제 생성 시도 횟수
	BelowThreshold bool    // 전 시도 탈락 후 최고 점수 후보로 대체했는지
}

type Validator struct {
	gen textgen.Generator
}

func NewValidator(gen textgen.Generator) *Validator {
	return &Validator{gen: gen}
}

type scoreResponse struct {
	Score         float64  `json:"score"`
	Pass          bool     `json:"pass"`
	SpacingIssues []string `json:"spacing_issues"`
	GrammarIssues []string `json:"grammar_issues"`
	Reason        string   `json:"reason"`
}

// ValidateWithRetry - 생성과 검증을 묶은 재시도 루프
// 점수가 threshold 이상이면 즉시 반환, 아니면 재생성 (최대 maxAttempts회 생성)
// 전부 탈락해도 에러가 아니라 최고 점수 후보를 BelowThreshold 플래그와 함께 반환
// 생성/검증 중 협력자 호출 실패만 에러로 전파
func (v *Validator) ValidateWithRetry(ctx context.Context, generate GenerateFunc, maxAttempts int, threshold float64) (*Result, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var best Result

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate, err := generate(ctx)
		if err != nil {
			return nil, err
		}

		score, err := v.score(ctx, candidate)
		if err != nil {
			return nil, err
		}

		log.Printf("📝 문법 검증 %d/%d회: %.1f점 (기준 %.1f점)", attempt, maxAttempts, score, threshold)

		if score >= threshold {
			return &Result{Text: candidate, Score: score, Attempts: attempt}, nil
		}

		if best.Text == "" || score > best.Score {
			best = Result{Text: candidate, Score: score}
		}
	}

	log.Printf("⚠️ 문법 검증 기준 미달 - 최고 점수 후보 사용 (%.1f점)", best.Score)
	best.Attempts = maxAttempts
	best.BelowThreshold = true
	return &best, nil
}

// score - LLM에 문법/띄어쓰기 평가를 요청하고 점수를 파싱
// 평가 응답에서 JSON을 못 찾으면 기본 점수로 통과 처리
func (v *Validator) score(ctx context.Context, text string) (float64, error) {
	raw, err := v.gen.Generate(ctx, BuildValidationPrompt(text), scoringTemperature)
	if err != nil {
		return 0, err
	}

	var resp scoreResponse
	if err := textgen.ExtractJSON(raw, &resp); err != nil {
		log.Printf("⚠️ 검증 응답 파싱 실패 - 기본 점수 %.1f점으로 통과 처리", fallbackScore)
		return fallbackScore, nil
	}

	if resp.Reason != "" {
		log.Printf("📝 검증 사유: %s", resp.Reason)
	}

	return resp.Score, nil
}
