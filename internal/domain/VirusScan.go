package domain

import "time"

type ScanStatus string

const (
	ScanStatusQueued    ScanStatus = "queued"
	ScanStatusCompleted ScanStatus = "completed"
	ScanStatusFailed    ScanStatus = "failed"
)

type ScanVerdict string

const (
	ScanVerdictUnknown   ScanVerdict = "unknown"
	ScanVerdictClean     ScanVerdict = "clean"
	ScanVerdictMalicious ScanVerdict = "malicious"
)

type VirusScan struct {
	ID          string      `json:"id"`
	ListingID   *string     `json:"listing_id,omitempty"`
	FileURL     string      `json:"file_url"`
	AnalysisID  string      `json:"analysis_id"`
	Status      ScanStatus  `json:"status"`
	Verdict     ScanVerdict `json:"verdict"`
	Malicious   int         `json:"malicious"`
	Suspicious  int         `json:"suspicious"`
	Harmless    int         `json:"harmless"`
	RequestedBy int         `json:"requested_by"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ScanAnalysis é o resultado de uma análise devolvido pelo provedor de antivírus
type ScanAnalysis struct {
	Status     string
	Malicious  int
	Suspicious int
	Harmless   int
	Undetected int
}

func (a ScanAnalysis) Completed() bool {
	return a.Status == "completed"
}

func (a ScanAnalysis) Verdict() ScanVerdict {
	if a.Malicious > 0 {
		return ScanVerdictMalicious
	}
	return ScanVerdictClean
}

type VirusScanRequest struct {
	FileURL   string  `json:"file_url"`
	ListingID *string `json:"listing_id"`
}

type VirusScanResponse struct {
	Scanned    bool   `json:"scanned"`
	AnalysisID string `json:"analysis_id"`
	ScanID     string `json:"scan_id"`
}

type SecurityEvent struct {
	ID            int64     `json:"id"`
	VirusDetected bool      `json:"virus_detected"`
	ScanID        *string   `json:"scan_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type SecurityEventRequest struct {
	VirusDetected bool `json:"virus_detected"`
}
