package domain

import "time"

// AdminInsight é um retrato consolidado da loja usado no painel administrativo
type AdminInsight struct {
	ID         int64     `json:"id"`
	TotalApps  int       `json:"total_apps"`
	TotalScans int       `json:"total_scans"`
	ScanPass   int       `json:"scan_pass"`
	ScanFail   int       `json:"scan_fail"`
	CreatedAt  time.Time `json:"created_at"`
}

type RecordInsightRequest struct {
	TotalApps  *int `json:"total_apps"`
	TotalScans *int `json:"total_scans"`
	ScanPass   *int `json:"scan_pass"`
	ScanFail   *int `json:"scan_fail"`
}

type AdminStats struct {
	Users int `json:"users"`
	Apps  int `json:"apps"`
}

// ScanTotals agrega as verificações de antivírus por veredito
type ScanTotals struct {
	Total     int
	Clean     int
	Malicious int
}

type AIMetadataRequest struct {
	AppName     string   `json:"app_name"`
	Category    string   `json:"category"`
	Permissions []string `json:"permissions"`
}

type AIMetadataResponse struct {
	Status      ListingStatus `json:"status"`
	AIGenerated bool          `json:"ai_generated"`
	Content     string        `json:"content"`
}

type ChatbotRequest struct {
	ErrorMessage string `json:"error_message"`
}

type ChatbotResponse struct {
	Reply string `json:"reply"`
}
