package scenario

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"

	"gigi-scenario-server/modules/brand"
	"gigi-scenario-server/modules/common/model"
	"gigi-scenario-server/modules/grammar"
)

// 생성 프롬프트와 검증 프롬프트를 구분해서 응답하는 가짜 콜라보레이터
type fakeCollaborator struct {
	scenarioText  string
	score         float64
	genCalls      int
	scoreCalls    int
	lastGenPrompt string
}

func (f *fakeCollaborator) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	if strings.Contains(prompt, "grammar and spacing validator") {
		f.scoreCalls++
		return fmt.Sprintf(`{"score": %g, "pass": %v}`, f.score, f.score >= 7.0), nil
	}
	f.genCalls++
	f.lastGenPrompt = prompt
	return f.scenarioText, nil
}

func newTestService(gen *fakeCollaborator) *Service {
	return &Service{
		gen:         gen,
		brands:      brand.NewStore(),
		validator:   grammar.NewValidator(gen),
		cache:       cache.New(time.Minute, time.Minute),
		maxAttempts: 3,
		threshold:   7.0,
	}
}

func TestGenerateScenarioWithDefaultTemplate(t *testing.T) {
	gen := &fakeCollaborator{scenarioText: "지지가 이니스프리 에센스를 바르는 감성적인 장면.", score: 9}
	svc := newTestService(gen)

	result, err := svc.GenerateScenario(context.Background(), "이니스프리", "")
	if err != nil {
		t.Fatalf("GenerateScenario failed: %v", err)
	}

	if result.Text != gen.scenarioText {
		t.Errorf("text = %q", result.Text)
	}
	if result.Source != SourceDefaultTemplate {
		t.Errorf("source = %q, want %q", result.Source, SourceDefaultTemplate)
	}
	if !result.MetThreshold {
		t.Error("MetThreshold = false for a passing score")
	}
	// 브랜드 기본 템플릿이 요청사항으로 프롬프트에 포함되어야 함
	if !strings.Contains(gen.lastGenPrompt, "그린티 밀크 보습 에센스") {
		t.Error("generation prompt does not contain the brand default template")
	}
}

func TestGenerateScenarioWithUserQuery(t *testing.T) {
	gen := &fakeCollaborator{scenarioText: "지지가 야외에서 제품을 사용하는 장면.", score: 8}
	svc := newTestService(gen)

	result, err := svc.GenerateScenario(context.Background(), "이니스프리", "공원에서 제품을 사용하는 장면으로")
	if err != nil {
		t.Fatalf("GenerateScenario failed: %v", err)
	}

	if result.Source != SourceUserProvided {
		t.Errorf("source = %q, want %q", result.Source, SourceUserProvided)
	}
	if !strings.Contains(gen.lastGenPrompt, "공원에서 제품을 사용하는 장면으로") {
		t.Error("generation prompt does not contain the user query")
	}
}

func TestGenerateScenarioUnknownBrand(t *testing.T) {
	gen := &fakeCollaborator{scenarioText: "장면", score: 9}
	svc := newTestService(gen)

	_, err := svc.GenerateScenario(context.Background(), "없는브랜드", "")
	if !errors.Is(err, model.ErrUnknownBrand) {
		t.Fatalf("error = %v, want ErrUnknownBrand", err)
	}
	if gen.genCalls != 0 {
		t.Errorf("collaborator called %d times for an unknown brand", gen.genCalls)
	}
}

func TestGenerateScenarioUnknownBrandWithQueryPassesThrough(t *testing.T) {
	// 쿼리가 있으면 템플릿 매핑에 없는 브랜드도 허용
	gen := &fakeCollaborator{scenarioText: "지지가 새 브랜드 제품을 소개하는 장면.", score: 8}
	svc := newTestService(gen)

	result, err := svc.GenerateScenario(context.Background(), "신규브랜드", "신규 브랜드 립밤 광고")
	if err != nil {
		t.Fatalf("GenerateScenario failed: %v", err)
	}
	if result.Brand != "신규브랜드" {
		t.Errorf("brand = %q", result.Brand)
	}
}

func TestGenerateScenarioBelowThresholdFlagged(t *testing.T) {
	gen := &fakeCollaborator{scenarioText: "지지가침대에앉아제품을바름", score: 4}
	svc := newTestService(gen)

	result, err := svc.GenerateScenario(context.Background(), "라네즈", "")
	if err != nil {
		t.Fatalf("GenerateScenario failed: %v", err)
	}

	if result.MetThreshold {
		t.Error("MetThreshold = true for all-failing scores")
	}
	if result.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", result.Attempts)
	}
	if gen.genCalls != 3 {
		t.Errorf("generate calls = %d, want 3", gen.genCalls)
	}
}

func TestGenerateScenarioUsesCache(t *testing.T) {
	gen := &fakeCollaborator{scenarioText: "지지가 헤라 제품으로 준비하는 장면.", score: 9}
	svc := newTestService(gen)

	first, err := svc.GenerateScenario(context.Background(), "헤라", "")
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := svc.GenerateScenario(context.Background(), "헤라", "")
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	if gen.genCalls != 1 {
		t.Errorf("generate calls = %d, want 1 (second call should hit cache)", gen.genCalls)
	}
	if first.Text != second.Text {
		t.Errorf("cached result differs: %q vs %q", first.Text, second.Text)
	}
}
