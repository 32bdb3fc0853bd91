package insighting

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/app-store-api/internal/domain"
)

// StatsProvider define a interface para os contadores do painel administrativo
type StatsProvider interface {
	// Stats retorna o total de usuários e de apps não removidos
	Stats(ctx context.Context) (*domain.AdminStats, error)

	// Dashboard retorna os apps enviados mais recentemente
	Dashboard(ctx context.Context) ([]domain.ListingSummary, error)
}

// SnapshotRecorder define a interface para os retratos consolidados da loja
type SnapshotRecorder interface {
	// Latest retorna o retrato mais recente ou nil quando ainda não existe nenhum
	Latest(ctx context.Context) (*domain.AdminInsight, error)

	// Record grava um retrato informado manualmente, campos ausentes valem zero
	Record(ctx context.Context, req domain.RecordInsightRequest) (*domain.AdminInsight, error)

	// Snapshot calcula um retrato a partir das tabelas de apps e verificações e o grava
	Snapshot(ctx context.Context) (*domain.AdminInsight, error)
}

// AdminInsighter é a interface completa usada pelos handlers administrativos
type AdminInsighter interface {
	StatsProvider
	SnapshotRecorder
}
