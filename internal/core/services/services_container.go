package services

import (
	"github.com/duasfl8r/vestat/internal/core/ports"
	portsrepo "github.com/duasfl8r/vestat/internal/core/ports/repositories"
	portssvc "github.com/duasfl8r/vestat/internal/core/ports/services"
	"github.com/duasfl8r/vestat/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// ledgerID is the application-wide ledger the tip accrual rule writes to.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	publisher ports.EventPublisher,
	ledgerID string,
	options ...ServiceOption,
) *portssvc.ServiceContainer {
	options = append([]ServiceOption{WithEventPublisher(publisher)}, options...)

	return &portssvc.ServiceContainer{
		Ledger: NewLedgerService(repos, options...),
		Tip:    NewTipService(repos, cfg, ledgerID, options...),
		Auth: NewAuthService(AuthConfig{
			AdminUsername:     cfg.AdminUsername,
			AdminPasswordHash: cfg.AdminPasswordHash,
			JWTSecret:         cfg.JWTSecret,
			JWTIssuer:         cfg.JWTIssuer,
			JWTExpiry:         cfg.JWTExpiryDuration,
		}, options...),
	}
}
