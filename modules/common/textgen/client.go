package textgen

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"gigi-scenario-server/modules/common/config"
	"gigi-scenario-server/modules/common/model"
)

// Generator - 텍스트 생성 콜라보레이터 인터페이스
// 프롬프트 하나를 받아 completion 텍스트를 반환
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)
}

// Client - Gemini 기반 Generator 구현
// 세션 간 공유되는 유일한 무상태 컴포넌트이므로 내부 가변 상태 없음 (limiter 제외)
type Client struct {
	apiKeys []string
	model   string
	limiter *rate.Limiter
}

func NewClient(cfg *config.Config) *Client {
	rps := cfg.TextGenRPS
	if rps <= 0 {
		rps = 2.0
	}
	return &Client{
		apiKeys: cfg.GeminiAPIKeys,
		model:   cfg.GeminiModel,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

const maxRetriesPerKey = 3

// Generate - 429 에러 시 여러 API 키로 재시도
// 각 키당 최대 3번 재시도, 모든 키 소진 시 ErrCollaboratorUnavailable
func (c *Client) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	if len(c.apiKeys) == 0 {
		return "", fmt.Errorf("%w: no API keys provided", model.ErrCollaboratorUnavailable)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrCollaboratorUnavailable, err)
	}

	contents := []*genai.Content{
		{Parts: []*genai.Part{genai.NewPartFromText(prompt)}},
	}
	genConfig := &genai.GenerateContentConfig{
		Temperature: floatPtr(temperature),
	}

	var lastErr error

	for keyIndex, apiKey := range c.apiKeys {
		for attempt := 1; attempt <= maxRetriesPerKey; attempt++ {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				lastErr = err
				continue
			}

			result, err := client.Models.GenerateContent(ctx, c.model, contents, genConfig)
			if err == nil {
				text := extractText(result)
				if text == "" {
					lastErr = fmt.Errorf("empty completion")
					continue
				}
				return text, nil
			}

			lastErr = err
			if ctx.Err() != nil {
				return "", fmt.Errorf("%w: %v", model.ErrCollaboratorUnavailable, ctx.Err())
			}

			// 429가 아닌 다른 에러면 키 전환 없이 바로 실패
			if !is429Error(err) {
				log.Printf("❌ [TextGen] Key #%d failed with non-429 error: %v", keyIndex+1, err)
				return "", fmt.Errorf("%w: %v", model.ErrCollaboratorUnavailable, err)
			}

			log.Printf("⚠️  [TextGen] Key #%d hit rate limit (429) on attempt %d/%d",
				keyIndex+1, attempt, maxRetriesPerKey)
			if attempt < maxRetriesPerKey {
				time.Sleep(2 * time.Second)
			}
		}
		log.Printf("⚠️  [TextGen] Key #%d exhausted all %d attempts, trying next key...",
			keyIndex+1, maxRetriesPerKey)
	}

	return "", fmt.Errorf("%w: all %d API keys exhausted, last error: %v",
		model.ErrCollaboratorUnavailable, len(c.apiKeys), lastErr)
}

// extractText - 응답 후보에서 첫 텍스트 파트 추출
func extractText(result *genai.GenerateContentResponse) string {
	if result == nil {
		return ""
	}
	var sb strings.Builder
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		if sb.Len() > 0 {
			break
		}
	}
	return strings.TrimSpace(sb.String())
}

// is429Error - 429 Rate Limit 에러인지 확인
func is429Error(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "quota")
}

func floatPtr(f float64) *float32 {
	f32 := float32(f)
	return &f32
}
