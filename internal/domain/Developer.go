package domain

import (
	"io"
	"time"
)

type DeveloperStatus string

const (
	DeveloperStatusPending  DeveloperStatus = "pending"
	DeveloperStatusApproved DeveloperStatus = "approved"
	DeveloperStatusRejected DeveloperStatus = "rejected"
)

type Developer struct {
	ID            string          `json:"id"`
	UserID        int             `json:"user_id"`
	DeveloperName string          `json:"developer_name"`
	Bio           string          `json:"bio"`
	Website       string          `json:"website"`
	IDDocumentKey string          `json:"-"`
	IDDocumentURL string          `json:"id_document_url"`
	Status        DeveloperStatus `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type DeveloperApplication struct {
	UserID        int
	DeveloperName string
	Bio           string
	Website       string
	FileName      string
	ContentType   string
	Size          int64
	File          io.Reader
}

type UpdateDeveloperStatusRequest struct {
	Status DeveloperStatus `json:"status"`
}
