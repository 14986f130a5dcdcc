package dialogue

import (
	"encoding/json"
	"net/http"
	"strings"

	"gigi-scenario-server/modules/common/model"
)

type DialogueHandler struct {
	service *Service
}

func NewDialogueHandler(service *Service) *DialogueHandler {
	return &DialogueHandler{service: service}
}

type regenerateRequest struct {
	SceneDescription  string   `json:"scene_description"`
	PreviousDialogues []string `json:"previous_dialogues"`
}

type regenerateResponse struct {
	Status   string `json:"status"`
	Dialogue string `json:"dialogue"`
}

// HandleRegenerate - POST /regenerate-dialogue
// 특정 장면의 발화만 새로 생성해서 반환
func (h *DialogueHandler) HandleRegenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req regenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.SceneDescription) == "" {
		http.Error(w, "scene_description is required", http.StatusBadRequest)
		return
	}

	dialogue, err := h.service.GenerateDialogueOnly(r.Context(), req.SceneDescription, req.PreviousDialogues)
	if err != nil {
		model.WriteError(w, model.StatusForError(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(regenerateResponse{
		Status:   "success",
		Dialogue: dialogue,
	})
}
