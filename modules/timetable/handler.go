package timetable

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"gigi-scenario-server/modules/common/model"
)

type TimetableHandler struct {
	orchestrator *Orchestrator
	sessions     *SessionStore
}

func NewTimetableHandler(orchestrator *Orchestrator, sessions *SessionStore) *TimetableHandler {
	return &TimetableHandler{orchestrator: orchestrator, sessions: sessions}
}

// HandleStream - POST /generate-timetable-stream
// 장면이 하나 완성될 때마다 SSE 이벤트로 내보냄
// 세션 ID는 요청에 없으면 새로 발급하고 X-Session-ID 헤더로 알려줌
func (h *TimetableHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req StreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	// 파싱/시간 배분 실패는 스트림을 열기 전에 즉시 반환
	events, err := h.orchestrator.GenerateTimetableStream(r.Context(), req)
	if err != nil {
		model.WriteError(w, model.StatusForError(err), err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.Header().Set("X-Session-ID", req.SessionID)

	for ev := range events {
		data, err := json.Marshal(ev)
		if err != nil {
			log.Printf("❌ 이벤트 직렬화 실패: %v", err)
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
	}
}

type editResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Scene   *Scene `json:"scene"`
}

// HandleEditScene - PATCH /edit-scene
// 세션에 저장된 장면의 발화/효과음/프롬프트를 부분 수정
func (h *TimetableHandler) HandleEditScene(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var update SceneUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if update.SessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}
	if update.SceneIndex < 0 {
		http.Error(w, "scene_index must be non-negative", http.StatusBadRequest)
		return
	}

	scene, err := h.sessions.UpdateScene(r.Context(), update)
	if err != nil {
		model.WriteError(w, model.StatusForError(err), err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(editResponse{
		Status:  "success",
		Message: fmt.Sprintf("Scene %d updated successfully", update.SceneIndex),
		Scene:   scene,
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket - GET /ws/timetable
// SSE와 같은 이벤트 시퀀스를 WebSocket으로 전달
// 첫 메시지로 StreamRequest JSON을 받고, 연결이 끊어지면 생성을 중단
func (h *TimetableHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ WebSocket 업그레이드 실패: %v", err)
		return
	}
	defer conn.Close()

	var req StreamRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(Event{Type: EventError, Data: ErrorData{
			Message: "invalid stream request",
			Code:    model.ErrCodeInvalidRequest,
		}})
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// 클라이언트가 끊어지면 생성 루프도 중단
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	events, err := h.orchestrator.GenerateTimetableStream(ctx, req)
	if err != nil {
		conn.WriteJSON(Event{Type: EventError, Data: ErrorData{
			Message: err.Error(),
			Code:    model.CodeForError(err),
		}})
		return
	}

	for ev := range events {
		if err := conn.WriteJSON(ev); err != nil {
			cancel()
			return
		}
	}
}
