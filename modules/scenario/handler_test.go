package scenario

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gigi-scenario-server/modules/common/model"
)

func TestHandleGenerateSuccess(t *testing.T) {
	gen := &fakeCollaborator{scenarioText: "지지가 에뛰드 틴트를 바르는 장면.", score: 9}
	h := NewScenarioHandler(newTestService(gen))

	body := `{"brand": "에뛰드", "user_query": ""}`
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response parse failed: %v", err)
	}
	if resp.Scenario != gen.scenarioText {
		t.Errorf("scenario = %q", resp.Scenario)
	}
	if resp.Brand != "에뛰드" {
		t.Errorf("brand = %q", resp.Brand)
	}
	if resp.Query != "디폴트 쿼리 사용" {
		t.Errorf("query = %q, want default marker", resp.Query)
	}
}

func TestHandleGenerateUnknownBrand(t *testing.T) {
	gen := &fakeCollaborator{scenarioText: "장면", score: 9}
	h := NewScenarioHandler(newTestService(gen))

	body := `{"brand": "없는브랜드", "user_query": ""}`
	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var errResp model.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("error body parse failed: %v", err)
	}
	if errResp.Code != model.ErrCodeUnknownBrand {
		t.Errorf("error code = %q, want %q", errResp.Code, model.ErrCodeUnknownBrand)
	}
}

func TestHandleGenerateBadBody(t *testing.T) {
	gen := &fakeCollaborator{scenarioText: "장면", score: 9}
	h := NewScenarioHandler(newTestService(gen))

	req := httptest.NewRequest(http.MethodPost, "/generate", strings.NewReader("{잘못된 JSON"))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleGenerateMethodNotAllowed(t *testing.T) {
	gen := &fakeCollaborator{scenarioText: "장면", score: 9}
	h := NewScenarioHandler(newTestService(gen))

	req := httptest.NewRequest(http.MethodGet, "/generate", nil)
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
