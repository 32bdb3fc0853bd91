package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-store-api/infrastructure/database/postgres"
	"github.com/vfg2006/app-store-api/infrastructure/migration"
	"github.com/vfg2006/app-store-api/infrastructure/repository"
	"github.com/vfg2006/app-store-api/internal/config"
	"github.com/vfg2006/app-store-api/internal/domain"
	"github.com/vfg2006/app-store-api/internal/usecases/authenticating"
)

// Aplica as migrações e, quando ADMIN_EMAIL e ADMIN_PASSWORD estão definidos,
// garante que exista um administrador com esse email.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := migration.Apply(ctx, conn.DB); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}
	logrus.Infof("Migrações concluídas em %v", time.Since(startTime))

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logrus.Info("ADMIN_EMAIL/ADMIN_PASSWORD não definidos, nenhum administrador criado")
		return
	}

	userRepo := repository.NewUserRepository(conn)
	if err := seedAdmin(ctx, userRepo, authenticating.NewService(userRepo, cfg.Auth), email, password); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar administrador")
	}
}

func seedAdmin(
	ctx context.Context,
	userRepo repository.UserRepository,
	authenticator authenticating.Authenticator,
	email, password string,
) error {
	user, err := userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user == nil {
		user, err = authenticator.Signup(ctx, domain.SignupRequest{
			Name:     "Administrador",
			Email:    email,
			Password: password,
		})
		if err != nil {
			return err
		}
		logrus.WithField("user_id", user.ID).Info("Usuário administrador criado")
	}

	if user.Role == domain.RoleAdmin {
		logrus.WithField("user_id", user.ID).Info("Usuário já é administrador")
		return nil
	}

	if err := userRepo.UpdateRole(ctx, user.ID, domain.RoleAdmin); err != nil {
		return err
	}

	logrus.WithField("user_id", user.ID).Info("Perfil de administrador concedido")
	return nil
}
