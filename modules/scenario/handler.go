package scenario

import (
	"encoding/json"
	"net/http"
	"strings"

	"gigi-scenario-server/modules/common/model"
)

type ScenarioHandler struct {
	service *Service
}

func NewScenarioHandler(service *Service) *ScenarioHandler {
	return &ScenarioHandler{service: service}
}

// HandleGenerate - POST /generate
// 브랜드와 유저 쿼리로 문법 검증을 거친 광고 시나리오를 반환
func (h *ScenarioHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.GenerateScenario(r.Context(), req.Brand, req.UserQuery)
	if err != nil {
		model.WriteError(w, model.StatusForError(err), err)
		return
	}

	query := strings.TrimSpace(req.UserQuery)
	if query == "" {
		query = "디폴트 쿼리 사용"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GenerateResponse{
		Scenario: result.Text,
		Brand:    result.Brand,
		Query:    query,
	})
}
