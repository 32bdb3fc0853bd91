package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger é qualquer dependência que sabe responder se está acessível
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthcheckTimeout = 2 * time.Second

func HealthcheckHandler(dependencies map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		status := http.StatusOK
		checks := make(map[string]string, len(dependencies))
		for name, dependency := range dependencies {
			if err := dependency.Ping(ctx); err != nil {
				logrus.WithError(err).Warnf("healthcheck: %s indisponível", name)
				checks[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "up"
		}

		writeJSON(w, status, map[string]any{
			"time":         time.Now().Format(time.RFC3339),
			"dependencies": checks,
		})
	})
}
