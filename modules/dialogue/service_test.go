package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gigi-scenario-server/modules/common/model"
)

type fixedGen struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (f *fixedGen) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.response, f.err
}

func TestGenerateDialogueOnlyStripsQuotes(t *testing.T) {
	gen := &fixedGen{response: `"아침 햇살 진짜 좋네요."`}
	svc := NewService(gen)

	got, err := svc.GenerateDialogueOnly(context.Background(), "지지가 창문을 열고 햇살을 맞음", nil)
	if err != nil {
		t.Fatalf("GenerateDialogueOnly failed: %v", err)
	}
	if got != "아침 햇살 진짜 좋네요." {
		t.Errorf("dialogue = %q", got)
	}
}

func TestGenerateDialogueOnlyUnwrapsJSON(t *testing.T) {
	gen := &fixedGen{response: `{"dialogue": "이거 완전 제 스타일이에요."}`}
	svc := NewService(gen)

	got, err := svc.GenerateDialogueOnly(context.Background(), "지지가 에센스 병을 집음", nil)
	if err != nil {
		t.Fatalf("GenerateDialogueOnly failed: %v", err)
	}
	if got != "이거 완전 제 스타일이에요." {
		t.Errorf("dialogue = %q", got)
	}
}

func TestGenerateDialogueOnlyIncludesRecentContext(t *testing.T) {
	gen := &fixedGen{response: "괜찮은데요."}
	svc := NewService(gen)

	previous := []string{"첫 번째 발화", "두 번째 발화", "세 번째 발화", "네 번째 발화"}
	if _, err := svc.GenerateDialogueOnly(context.Background(), "지지가 제품을 바름", previous); err != nil {
		t.Fatalf("GenerateDialogueOnly failed: %v", err)
	}

	// 최근 3개만 컨텍스트에 포함
	if strings.Contains(gen.lastPrompt, "첫 번째 발화") {
		t.Error("prompt contains dialogue older than the last 3")
	}
	for _, d := range previous[1:] {
		if !strings.Contains(gen.lastPrompt, d) {
			t.Errorf("prompt missing recent dialogue %q", d)
		}
	}
	if !strings.Contains(gen.lastPrompt, "지지가 제품을 바름") {
		t.Error("prompt missing the scene description")
	}
}

func TestGenerateDialogueOnlyEachCallIsIndependent(t *testing.T) {
	gen := &fixedGen{response: "물 차가워요."}
	svc := NewService(gen)

	for i := 0; i < 3; i++ {
		if _, err := svc.GenerateDialogueOnly(context.Background(), "지지가 세안을 함", nil); err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
	}
	// 내부 재시도 없이 호출 1번당 생성 1번
	if gen.calls != 3 {
		t.Errorf("generator calls = %d, want 3", gen.calls)
	}
}

func TestGenerateDialogueOnlyPropagatesCollaboratorError(t *testing.T) {
	gen := &fixedGen{err: fmt.Errorf("%w: quota exceeded", model.ErrCollaboratorUnavailable)}
	svc := NewService(gen)

	_, err := svc.GenerateDialogueOnly(context.Background(), "지지가 세안을 함", nil)
	if !errors.Is(err, model.ErrCollaboratorUnavailable) {
		t.Fatalf("error = %v, want ErrCollaboratorUnavailable", err)
	}
}
