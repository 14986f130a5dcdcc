package timetable

import (
	"context"
	"errors"
	"testing"

	"gigi-scenario-server/modules/common/model"
	"gigi-scenario-server/modules/sceneprompt"
)

func testScene(index int, dialogue string) Scene {
	return Scene{
		Index:                  index,
		TimeStart:              float64(index) * 5,
		TimeEnd:                float64(index+1) * 5,
		SceneDescription:       "지지가 에센스를 얼굴에 바름",
		Dialogue:               dialogue,
		BackgroundSoundsPrompt: "pump clicking sound",
		T2IPrompt:              sceneprompt.T2IPrompt{Background: "vanity table"},
		ImageEditPrompt:        sceneprompt.ImageEditPrompt{Expression: "smile"},
	}
}

func TestSessionStoreSaveAndGet(t *testing.T) {
	store := NewSessionStore(nil)
	ctx := context.Background()

	scene := testScene(0, "이거 완전 제 스타일이에요.")
	if err := store.SaveScene(ctx, "session-a", scene); err != nil {
		t.Fatalf("SaveScene failed: %v", err)
	}

	got, err := store.GetScene(ctx, "session-a", 0)
	if err != nil {
		t.Fatalf("GetScene failed: %v", err)
	}
	if got.Dialogue != scene.Dialogue || got.TimeEnd != scene.TimeEnd {
		t.Errorf("got %+v, want %+v", got, scene)
	}
}

func TestSessionStoreIsolatesSessions(t *testing.T) {
	store := NewSessionStore(nil)
	ctx := context.Background()

	store.SaveScene(ctx, "session-a", testScene(0, "세션 A 발화"))

	if _, err := store.GetScene(ctx, "session-b", 0); !errors.Is(err, model.ErrSessionNotFound) {
		t.Errorf("GetScene from other session error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionStoreMissingScene(t *testing.T) {
	store := NewSessionStore(nil)

	_, err := store.GetScene(context.Background(), "no-such-session", 3)
	if !errors.Is(err, model.ErrSessionNotFound) {
		t.Fatalf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestUpdateScenePartialFields(t *testing.T) {
	store := NewSessionStore(nil)
	ctx := context.Background()
	store.SaveScene(ctx, "session-a", testScene(1, "원래 발화"))

	newDialogue := "수정된 발화"
	updated, err := store.UpdateScene(ctx, SceneUpdate{
		SessionID:  "session-a",
		SceneIndex: 1,
		Dialogue:   &newDialogue,
	})
	if err != nil {
		t.Fatalf("UpdateScene failed: %v", err)
	}

	if updated.Dialogue != newDialogue {
		t.Errorf("dialogue = %q, want %q", updated.Dialogue, newDialogue)
	}
	// 지정하지 않은 필드는 유지
	if updated.BackgroundSoundsPrompt != "pump clicking sound" {
		t.Errorf("background sounds changed: %q", updated.BackgroundSoundsPrompt)
	}
	if updated.T2IPrompt.Background != "vanity table" {
		t.Errorf("t2i prompt changed: %+v", updated.T2IPrompt)
	}

	// 저장소에도 반영되어야 함
	got, err := store.GetScene(ctx, "session-a", 1)
	if err != nil {
		t.Fatalf("GetScene after update failed: %v", err)
	}
	if got.Dialogue != newDialogue {
		t.Errorf("stored dialogue = %q, want %q", got.Dialogue, newDialogue)
	}
}

func TestUpdateSceneLastWriteWins(t *testing.T) {
	store := NewSessionStore(nil)
	ctx := context.Background()
	store.SaveScene(ctx, "session-a", testScene(0, "원래 발화"))

	first := "첫 번째 수정"
	second := "두 번째 수정"

	if _, err := store.UpdateScene(ctx, SceneUpdate{SessionID: "session-a", SceneIndex: 0, Dialogue: &first}); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	if _, err := store.UpdateScene(ctx, SceneUpdate{SessionID: "session-a", SceneIndex: 0, Dialogue: &second}); err != nil {
		t.Fatalf("second update failed: %v", err)
	}

	got, err := store.GetScene(ctx, "session-a", 0)
	if err != nil {
		t.Fatalf("GetScene failed: %v", err)
	}
	if got.Dialogue != second {
		t.Errorf("dialogue = %q, want last write %q", got.Dialogue, second)
	}
}

func TestUpdateSceneUnknownIndex(t *testing.T) {
	store := NewSessionStore(nil)
	ctx := context.Background()
	store.SaveScene(ctx, "session-a", testScene(0, "발화"))

	d := "수정"
	_, err := store.UpdateScene(ctx, SceneUpdate{SessionID: "session-a", SceneIndex: 9, Dialogue: &d})
	if !errors.Is(err, model.ErrSessionNotFound) {
		t.Fatalf("error = %v, want ErrSessionNotFound", err)
	}
}
