package scenario

// 시나리오 출처 구분
const (
	SourceUserProvided    = "user-provided"
	SourceDefaultTemplate = "default-template"
)

// Scenario - 생성 완료된 광고 시나리오 (생성 후 불변)
type Scenario struct {
	Brand        string `json:"brand"`
	Text         string `json:"scenario"`
	Source       string `json:"source"`
	MetThreshold bool   `json:"met_threshold"`
	Attempts     int    `json:"attempts"`
}

type GenerateRequest struct {
	Brand     string `json:"brand"`
	UserQuery string `json:"user_query"`
}

type GenerateResponse struct {
	Scenario string `json:"scenario"`
	Brand    string `json:"brand"`
	Query    string `json:"query"`
}
