package domain

import "time"

type CampaignType string

const (
	CampaignTypeApp     CampaignType = "app"
	CampaignTypeCompany CampaignType = "company"
)

type Placement string

const (
	PlacementHome    Placement = "home"
	PlacementSearch  Placement = "search"
	PlacementAppPage Placement = "app_page"
)

func (p Placement) IsValid() bool {
	switch p {
	case PlacementHome, PlacementSearch, PlacementAppPage:
		return true
	}
	return false
}

// PromotionCampaign é um espaço promocional exibido na vitrine, independente do ranking de apps
type PromotionCampaign struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Type        CampaignType `json:"type"`
	AppID       *string      `json:"app_id,omitempty"`
	MediaURL    *string      `json:"media_url,omitempty"`
	ShowHome    bool         `json:"show_home"`
	ShowSearch  bool         `json:"show_search"`
	ShowAppPage bool         `json:"show_app_page"`
	IsActive    bool         `json:"is_active"`
	CreatedAt   time.Time    `json:"created_at"`
}

type CreateCampaignRequest struct {
	Title       string       `json:"title"`
	Type        CampaignType `json:"type"`
	AppID       *string      `json:"app_id"`
	MediaURL    *string      `json:"media_url"`
	ShowHome    bool         `json:"show_home"`
	ShowSearch  bool         `json:"show_search"`
	ShowAppPage bool         `json:"show_app_page"`
	IsActive    *bool        `json:"is_active"`
}

type ToggleCampaignRequest struct {
	IsActive *bool `json:"is_active"`
}
