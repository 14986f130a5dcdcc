package brand

import (
	"strings"
	"testing"
)

func TestDefaultStoreHasAllBrands(t *testing.T) {
	store := NewStore()

	want := []string{"이니스프리", "에뛰드", "라네즈", "설화수", "헤라"}
	got := store.Brands()

	if len(got) != len(want) {
		t.Fatalf("brand count = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("brands[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTemplateLookup(t *testing.T) {
	store := NewStore()

	template, ok := store.Template("이니스프리")
	if !ok {
		t.Fatal("이니스프리 template not found")
	}
	if !strings.Contains(template, "그린티 밀크 보습 에센스") {
		t.Errorf("이니스프리 template missing product name: %q", template)
	}

	if _, ok := store.Template("없는브랜드"); ok {
		t.Error("unknown brand lookup returned ok")
	}
}

func TestStoreWithCustomTemplates(t *testing.T) {
	store := NewStoreWith(map[string]string{
		"테스트브랜드": "테스트 템플릿 내용",
	})

	template, ok := store.Template("테스트브랜드")
	if !ok || template != "테스트 템플릿 내용" {
		t.Errorf("Template = %q, ok = %v", template, ok)
	}

	brands := store.Brands()
	if len(brands) != 1 || brands[0] != "테스트브랜드" {
		t.Errorf("Brands = %v", brands)
	}
}
