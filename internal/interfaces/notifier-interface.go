package interfaces

import "github.com/likeclem30/taxipassbackend/internal/domain"

// Notifier enqueues the outbound email/SMS pair for a lifecycle event.
// Implementations are fire-and-forget: they never block the caller and never
// report delivery failures back.
type Notifier interface {
	Welcome(p *domain.Passenger, bearer string)
	Suspension(p *domain.Passenger, bearer string)
}
