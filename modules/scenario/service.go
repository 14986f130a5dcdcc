package scenario

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"gigi-scenario-server/modules/brand"
	"gigi-scenario-server/modules/common/config"
	"gigi-scenario-server/modules/common/model"
	"gigi-scenario-server/modules/common/textgen"
	"gigi-scenario-server/modules/grammar"
)

// 시나리오 생성 온도 - 브랜드 템플릿에서 크게 벗어나지 않도록 낮게 유지
const generationTemperature = 0.2

// 동일 요청 시나리오 캐시 유지 시간
const scenarioCacheTTL = 10 * time.Minute

type Service struct {
	gen         textgen.Generator
	brands      *brand.Store
	validator   *grammar.Validator
	cache       *cache.Cache
	group       singleflight.Group
	maxAttempts int
	threshold   float64
}

func NewService(gen textgen.Generator, brands *brand.Store) *Service {
	cfg := config.GetConfig()
	return &Service{
		gen:         gen,
		brands:      brands,
		validator:   grammar.NewValidator(gen),
		cache:       cache.New(scenarioCacheTTL, scenarioCacheTTL*2),
		maxAttempts: cfg.MaxValidationAttempts,
		threshold:   cfg.GrammarPassThreshold,
	}
}

// GenerateScenario - 브랜드/유저 쿼리로 광고 시나리오를 생성
// 유저 쿼리가 비어 있으면 브랜드 기본 템플릿을 요청사항으로 사용
// 생성 결과는 문법/띄어쓰기 검증을 통과한 (또는 최고 점수) 후보
func (s *Service) GenerateScenario(ctx context.Context, brandName, userQuery string) (*Scenario, error) {
	userRequest := strings.TrimSpace(userQuery)
	source := SourceUserProvided

	if userRequest == "" {
		template, ok := s.brands.Template(brandName)
		if !ok {
			return nil, fmt.Errorf("브랜드 '%s': %w", brandName, model.ErrUnknownBrand)
		}
		userRequest = template
		source = SourceDefaultTemplate
		log.Printf("✅ 브랜드 '%s'의 디폴트 시나리오 요청 사용", brandName)
	}

	cacheKey := brandName + "|" + userRequest
	if cached, found := s.cache.Get(cacheKey); found {
		log.Printf("✅ 시나리오 캐시 히트: %s", brandName)
		result := *(cached.(*Scenario))
		return &result, nil
	}

	// 동일 요청이 동시에 들어오면 한 번만 생성
	value, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		return s.generateValidated(ctx, brandName, userRequest, source)
	})
	if err != nil {
		return nil, err
	}

	result := *(value.(*Scenario))
	return &result, nil
}

func (s *Service) generateValidated(ctx context.Context, brandName, userRequest, source string) (*Scenario, error) {
	prompt := BuildScenarioPrompt(brandName, userRequest)

	generateFn := func(ctx context.Context) (string, error) {
		text, err := s.gen.Generate(ctx, prompt, generationTemperature)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(text), nil
	}

	result, err := s.validator.ValidateWithRetry(ctx, generateFn, s.maxAttempts, s.threshold)
	if err != nil {
		return nil, fmt.Errorf("시나리오 생성 실패: %w", err)
	}

	log.Printf("✅ 시나리오 생성 완료 (%d번 시도, %.1f점)", result.Attempts, result.Score)

	scn := &Scenario{
		Brand:        brandName,
		Text:         result.Text,
		Source:       source,
		MetThreshold: !result.BelowThreshold,
		Attempts:     result.Attempts,
	}

	s.cache.Set(brandName+"|"+userRequest, scn, cache.DefaultExpiration)
	return scn, nil
}
