package usecase

import (
	"context"

	"github.com/mycorp/alta-soporte/internal/entity"
	"github.com/mycorp/alta-soporte/internal/infra/integration/bravo"
	"github.com/mycorp/alta-soporte/internal/infra/integration/polizas"
	"github.com/mycorp/alta-soporte/internal/infra/integration/zendesk"
	"github.com/mycorp/alta-soporte/internal/infra/mail"
	"github.com/mycorp/alta-soporte/internal/infra/queue"
)

type CardGateway interface {
	GetClienteID(ctx context.Context, numTarjeta string) (string, error)
}

type PolicyGateway interface {
	RecuperarDetalle(ctx context.Context, consulta polizas.ConsultaPoliza) (*polizas.DetallePoliza, error)
}

type ProfileGateway interface {
	GetDatosCliente(ctx context.Context, idCliente string) (*bravo.DatosCliente, error)
}

type DocumentTypeSource interface {
	List(ctx context.Context) ([]entity.ValueCode, error)
}

// TicketAPI is a scoped connection to the ticketing service. Close must be
// called on every exit path once the connection was opened.
type TicketAPI interface {
	CreateTicket(ctx context.Context, ticket zendesk.Ticket) error
	Close()
}

// TicketAPIFactory opens a fresh TicketAPI per submission, so no connection
// outlives a single pipeline invocation.
type TicketAPIFactory func() (TicketAPI, error)

type Mailer interface {
	Send(n mail.Notification) error
}

type EventProducer interface {
	PublishTicketOutcome(ctx context.Context, ev queue.TicketOutcomeEvent) error
}
