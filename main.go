package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"gigi-scenario-server/modules/brand"
	"gigi-scenario-server/modules/common/config"
	redisutil "gigi-scenario-server/modules/common/redis"
	"gigi-scenario-server/modules/common/textgen"
	"gigi-scenario-server/modules/dialogue"
	"gigi-scenario-server/modules/scenario"
	"gigi-scenario-server/modules/sceneprompt"
	"gigi-scenario-server/modules/timetable"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Session-ID")
		w.Header().Set("Access-Control-Expose-Headers", "X-Session-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "gigi-scenario-server",
	})
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Redis 연결 (없으면 세션 저장은 인메모리로 동작)
	redisClient := redisutil.Connect(cfg)

	// 브랜드 템플릿 로드 - Supabase가 설정되어 있으면 테이블에서, 아니면 내장 기본값
	brandStore := brand.NewStore()
	if cfg.HasSupabase() {
		supabaseClient, err := brand.NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseServiceKey)
		if err != nil {
			log.Printf("❌ Failed to create Supabase client: %v", err)
		} else {
			brandStore = brand.LoadFromSupabase(context.Background(), supabaseClient, cfg.BrandTemplateTable)
		}
	}

	// 텍스트 생성 콜라보레이터
	generator := textgen.NewClient(cfg)

	// 서비스 조립
	scenarioService := scenario.NewService(generator, brandStore)
	scenePromptService := sceneprompt.NewService(generator)
	dialogueService := dialogue.NewService(generator)
	sessionStore := timetable.NewSessionStore(redisClient)
	orchestrator := timetable.NewOrchestrator(scenePromptService, sessionStore)

	// 핸들러
	scenarioHandler := scenario.NewScenarioHandler(scenarioService)
	brandHandler := brand.NewHandler(brandStore)
	dialogueHandler := dialogue.NewDialogueHandler(dialogueService)
	timetableHandler := timetable.NewTimetableHandler(orchestrator, sessionStore)

	// 라우터 설정
	r := mux.NewRouter()

	// CORS 미들웨어 적용
	r.Use(enableCORS)

	// 라우트 설정
	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/brands", brandHandler.HandleList).Methods("GET")
	r.HandleFunc("/generate", scenarioHandler.HandleGenerate).Methods("POST")
	r.HandleFunc("/generate-timetable-stream", timetableHandler.HandleStream).Methods("POST")
	r.HandleFunc("/regenerate-dialogue", dialogueHandler.HandleRegenerate).Methods("POST")
	r.HandleFunc("/edit-scene", timetableHandler.HandleEditScene).Methods("PATCH")
	r.HandleFunc("/ws/timetable", timetableHandler.HandleWebSocket)

	log.Printf("🚀 Gigi Scenario Server starting on port %s", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("🎬 Timetable stream: http://localhost:%s/generate-timetable-stream", cfg.Port)
	log.Printf("📡 WebSocket endpoint: ws://localhost:%s/ws/timetable", cfg.Port)

	// 서버 시작
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
