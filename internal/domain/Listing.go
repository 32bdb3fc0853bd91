package domain

import (
	"io"
	"time"
)

type ListingStatus string

const (
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusApproved ListingStatus = "approved"
	ListingStatusRejected ListingStatus = "rejected"
)

func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingStatusPending, ListingStatusApproved, ListingStatusRejected:
		return true
	}
	return false
}

// Listing é o registro de um app publicado na loja
type Listing struct {
	ID                 string        `json:"id"`
	OwnerID            int           `json:"developer_id"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	Category           string        `json:"category"`
	PackageID          string        `json:"package_id"`
	Version            string        `json:"version"`
	FileKey            string        `json:"-"`
	FileURL            string        `json:"file_url"`
	Status             ListingStatus `json:"status"`
	RejectionReason    *string       `json:"rejection_reason,omitempty"`
	Published          bool          `json:"published"`
	Promoted           bool          `json:"promoted"`
	PromotionExpiresAt *time.Time    `json:"promotion_expires_at,omitempty"`
	PromotionRank      *int          `json:"promotion_rank,omitempty"`
	AIGenerated        bool          `json:"ai_generated"`
	Downloads          int64         `json:"downloads"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// IsActivelyPromoted indica se a promoção está vigente no instante informado.
// A expiração é avaliada na leitura, nunca persistida.
func (l Listing) IsActivelyPromoted(now time.Time) bool {
	return l.Promoted && l.PromotionExpiresAt != nil && l.PromotionExpiresAt.After(now)
}

// ListingSummary é a representação pública de um app na vitrine
type ListingSummary struct {
	ID                 string     `json:"id"`
	OwnerID            int        `json:"developer_id"`
	Name               string     `json:"name"`
	Category           string     `json:"category"`
	FileURL            string     `json:"file_url"`
	Published          bool       `json:"published"`
	Promoted           bool       `json:"promoted"`
	PromotionExpiresAt *time.Time `json:"promotion_expires_at,omitempty"`
	PromotionRank      *int       `json:"promotion_rank,omitempty"`
	Downloads          int64      `json:"downloads"`
	CreatedAt          time.Time  `json:"created_at"`
}

func (l Listing) Summary(now time.Time) ListingSummary {
	summary := ListingSummary{
		ID:        l.ID,
		OwnerID:   l.OwnerID,
		Name:      l.Name,
		Category:  l.Category,
		FileURL:   l.FileURL,
		Published: l.Published,
		Promoted:  l.IsActivelyPromoted(now),
		Downloads: l.Downloads,
		CreatedAt: l.CreatedAt,
	}

	if summary.Promoted {
		summary.PromotionExpiresAt = l.PromotionExpiresAt
		summary.PromotionRank = l.PromotionRank
	}

	return summary
}

type ListingFilter struct {
	Status  *ListingStatus
	OwnerID *int
}

// SubmitListingRequest carrega os metadados e o binário (APK/AAB) enviados pelo desenvolvedor
type SubmitListingRequest struct {
	OwnerID     int
	Name        string
	Description string
	Category    string
	PackageID   string
	Version     string
	FileName    string
	ContentType string
	Size        int64
	File        io.Reader
}

type UpdateListingRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Version     *string `json:"version"`
}

type PromoteListingRequest struct {
	Days int `json:"days"`
	Rank int `json:"rank"`
}

type RejectListingRequest struct {
	Reason string `json:"reason"`
}

// Actor identifica quem executa uma operação sobre um app
type Actor struct {
	UserID  int
	IsAdmin bool
}

type CloneCheckRequest struct {
	PackageID string `json:"package_id"`
	Name      string `json:"name"`
}

type CloneCheckResult struct {
	Clone  bool   `json:"clone"`
	Reason string `json:"reason"`
}

// AsOf devolve uma cópia com a promoção avaliada no instante informado,
// limpando expiração e rank quando a promoção não está vigente
func (l Listing) AsOf(now time.Time) Listing {
	if !l.IsActivelyPromoted(now) {
		l.Promoted = false
		l.PromotionExpiresAt = nil
		l.PromotionRank = nil
	}
	return l
}
