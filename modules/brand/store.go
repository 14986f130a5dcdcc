package brand

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/supabase-community/supabase-go"
)

// 브랜드별 디폴트 시나리오 요청 (사용자가 쿼리를 입력하지 않았을 때 사용)
// 프로세스 시작 시 한 번 로드된 뒤 읽기 전용
var defaultTemplates = map[string]string{
	"이니스프리": "관엽식물이 있는 화이트 + 그린 + 우드 컬러의 실내 집 배경, 지지가 침대에 앉아 침대 앞에 있는 협탁에 손을 뻗어 이니스프리의 '그린티 밀크 보습 에센스'를 손에 쥠, 화면 전환이 되고 세안 밴드를 낀 지지가 민낯 상태로 해당 제품을 바름.",
	"에뛰드":   "지지가 전신거울 앞에서 오늘 입은 옷을 체크하는 것으로 시작, 거울 앞에 다가가 에뛰드의 '포근 픽싱 틴트'를 바름, 이후 만족한 듯 웃으며 가방을 걸치고 방을 나가는 장면, 핸드백 안에 틴트를 넣음.",
	"라네즈":   "지지가 하얀 배경의 집에서 핸드폰으로 민낯 셀카를 찍는 장면, 화면 전환이 되고 지지가 하늘색 파자마를 입고 라네즈 워터 슬리핑 마스크를 팩브러시로 바르는 모습을 정면에서 비춤.",
	"설화수":   "설화수의 프리미엄 한방 화장품을 사용하는 지지의 저녁 스킨케어 루틴. 고급스럽고 차분한 분위기로 제품의 영양감과 피부 개선 효과를 강조.",
	"헤라":    "헤라의 메이크업 제품으로 준비하는 지지의 외출 전 루틴. 세련되고 트렌디한 분위기로 제품의 발색과 지속력을 강조.",
}

var defaultOrder = []string{"이니스프리", "에뛰드", "라네즈", "설화수", "헤라"}

// Store - 브랜드 → 디폴트 시나리오 템플릿 매핑 (초기화 후 읽기 전용)
type Store struct {
	templates map[string]string
	order     []string
}

// NewStore - 내장 기본 템플릿으로 스토어 생성
func NewStore() *Store {
	templates := make(map[string]string, len(defaultTemplates))
	for k, v := range defaultTemplates {
		templates[k] = v
	}
	return &Store{
		templates: templates,
		order:     append([]string(nil), defaultOrder...),
	}
}

// templateRow - 템플릿 테이블 레코드
type templateRow struct {
	BrandKey string `json:"brand_key"`
	Template string `json:"template"`
}

// LoadFromSupabase - 템플릿 테이블에서 브랜드 매핑 로드
// 실패하거나 테이블이 비어있으면 내장 기본값 유지
func LoadFromSupabase(ctx context.Context, client *supabase.Client, table string) *Store {
	store := NewStore()

	data, _, err := client.From(table).
		Select("brand_key, template", "", false).
		Execute()
	if err != nil {
		log.Printf("⚠️  [Brand] Failed to load templates from %s, using defaults: %v", table, err)
		return store
	}

	var rows []templateRow
	if err := json.Unmarshal(data, &rows); err != nil {
		log.Printf("⚠️  [Brand] Failed to parse template rows, using defaults: %v", err)
		return store
	}
	if len(rows) == 0 {
		log.Printf("⚠️  [Brand] Template table %s is empty, using defaults", table)
		return store
	}

	templates := make(map[string]string, len(rows))
	order := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.BrandKey == "" || row.Template == "" {
			continue
		}
		if _, exists := templates[row.BrandKey]; !exists {
			order = append(order, row.BrandKey)
		}
		templates[row.BrandKey] = row.Template
	}
	if len(templates) == 0 {
		return store
	}

	log.Printf("✅ [Brand] Loaded %d brand templates from %s", len(templates), table)
	return &Store{templates: templates, order: order}
}

// NewSupabaseClient - Supabase 클라이언트 생성
func NewSupabaseClient(url, serviceKey string) (*supabase.Client, error) {
	client, err := supabase.NewClient(url, serviceKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return client, nil
}

// Template - 브랜드의 디폴트 템플릿 조회
func (s *Store) Template(brand string) (string, bool) {
	tpl, ok := s.templates[brand]
	return tpl, ok
}

// Brands - 등록된 브랜드 키 목록 (등록 순서 유지)
func (s *Store) Brands() []string {
	return append([]string(nil), s.order...)
}

// NewStoreWith - 테스트용: 임의 매핑으로 스토어 생성
func NewStoreWith(templates map[string]string) *Store {
	copied := make(map[string]string, len(templates))
	order := make([]string, 0, len(templates))
	for k, v := range templates {
		copied[k] = v
		order = append(order, k)
	}
	return &Store{templates: copied, order: order}
}
