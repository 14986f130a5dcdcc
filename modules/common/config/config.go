package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config 구조체 - 모든 환경변수를 담음
type Config struct {
	// Redis (세션 타임테이블 저장용, 없으면 인메모리로 동작)
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	RedisUseTLS   bool

	// Supabase (브랜드 템플릿 테이블, 없으면 내장 기본값 사용)
	SupabaseURL        string
	SupabaseServiceKey string
	BrandTemplateTable string

	// Gemini API (텍스트 생성 콜라보레이터)
	GeminiAPIKeys []string
	GeminiModel   string

	// Server
	Port string

	// 생성 파이프라인 설정
	MaxValidationAttempts int     // 문법/발화 검증 최대 시도 횟수
	GrammarPassThreshold  float64 // 문법 점수 합격 기준 (0-10)
	TextGenRPS            float64 // 콜라보레이터 호출 rate limit (req/sec)
}

var globalConfig *Config

// LoadConfig - 환경변수 로드
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (있으면)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	// Redis UseTLS 파싱
	useTLS := false
	if tlsStr := os.Getenv("REDIS_USE_TLS"); tlsStr != "" {
		if parsed, err := strconv.ParseBool(tlsStr); err == nil {
			useTLS = parsed
		}
	}

	// API 키는 콤마로 여러 개 지정 가능 (429 발생 시 순차 시도)
	var apiKeys []string
	for _, key := range strings.Split(os.Getenv("GEMINI_API_KEYS"), ",") {
		if k := strings.TrimSpace(key); k != "" {
			apiKeys = append(apiKeys, k)
		}
	}
	if len(apiKeys) == 0 {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			apiKeys = []string{key}
		}
	}

	globalConfig = &Config{
		// Redis
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisUsername: getEnv("REDIS_USERNAME", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisUseTLS:   useTLS,

		// Supabase
		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
		BrandTemplateTable: getEnv("BRAND_TEMPLATE_TABLE", "ad_brand_template"),

		// Gemini API
		GeminiAPIKeys: apiKeys,
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		// Server
		Port: getEnv("PORT", "8080"),

		// Pipeline
		MaxValidationAttempts: getEnvInt("MAX_VALIDATION_ATTEMPTS", 3),
		GrammarPassThreshold:  getEnvFloat("GRAMMAR_PASS_THRESHOLD", 7.0),
		TextGenRPS:            getEnvFloat("TEXTGEN_RPS", 2.0),
	}

	// 필수 환경변수 검증
	if err := globalConfig.validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Redis: %s:%s (TLS: %v)", globalConfig.RedisHost, globalConfig.RedisPort, globalConfig.RedisUseTLS)
	log.Printf("   Gemini: %s (%d key(s))", globalConfig.GeminiModel, len(globalConfig.GeminiAPIKeys))
	log.Printf("   Validation: max %d attempts, threshold %.1f",
		globalConfig.MaxValidationAttempts, globalConfig.GrammarPassThreshold)

	return globalConfig, nil
}

// GetConfig - 로드된 설정 가져오기
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// validate - 필수 환경변수 검증
func (c *Config) validate() error {
	if len(c.GeminiAPIKeys) == 0 {
		return fmt.Errorf("GEMINI_API_KEY (or GEMINI_API_KEYS) is required")
	}
	if c.MaxValidationAttempts < 1 {
		return fmt.Errorf("MAX_VALIDATION_ATTEMPTS must be >= 1")
	}
	if c.GrammarPassThreshold < 0 || c.GrammarPassThreshold > 10 {
		return fmt.Errorf("GRAMMAR_PASS_THRESHOLD must be in [0, 10]")
	}
	return nil
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetRedisAddr - Redis 연결 문자열 생성
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// HasSupabase - Supabase 설정 여부
func (c *Config) HasSupabase() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}
