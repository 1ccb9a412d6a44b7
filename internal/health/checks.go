package health

import (
	"context"
	"errors"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/pkg/stripe"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const (
	componentName    = "storefront"
	componentVersion = "1.0.0"
)

type Endpoints struct {
	StripeClient stripe.Client
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {
	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    componentName,
			Version: componentVersion,
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				}),
			},
			health.Config{
				Name:    "stripe",
				Timeout: 5 * time.Second,
				// Checkout can still be retried later, so a Stripe outage only degrades the service.
				SkipOnErr: true,
				Check:     StripeCheck(endpoints.StripeClient),
			},
		),
	)
	if err != nil {
		return nil, err
	}

	return h, nil
}

func StripeCheck(client stripe.Client) health.CheckFunc {
	return func(ctx context.Context) error {
		if client == nil {
			return errors.New("stripe client is not initialized")
		}

		return client.Ping(ctx)
	}
}
