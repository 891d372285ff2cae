package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/mycorp/alta-soporte/internal/entity"
	"github.com/mycorp/alta-soporte/internal/infra/http/handlers"
	"github.com/mycorp/alta-soporte/internal/infra/integration/bravo"
	"github.com/mycorp/alta-soporte/internal/infra/integration/polizas"
	"github.com/mycorp/alta-soporte/internal/infra/integration/zendesk"
	"github.com/mycorp/alta-soporte/internal/infra/mail"
	"github.com/mycorp/alta-soporte/internal/render"
	"github.com/mycorp/alta-soporte/internal/usecase"
)

type stubCards struct{}

func (stubCards) GetClienteID(context.Context, string) (string, error) { return "CLI-0042", nil }

type stubPolicies struct{}

func (stubPolicies) RecuperarDetalle(context.Context, polizas.ConsultaPoliza) (*polizas.DetallePoliza, error) {
	return nil, errors.New("no usado")
}

type stubProfiles struct{}

func (stubProfiles) GetDatosCliente(context.Context, string) (*bravo.DatosCliente, error) {
	return nil, errors.New("perfil indefinido")
}

type stubDocTypes struct{}

func (stubDocTypes) List(context.Context) ([]entity.ValueCode, error) { return nil, nil }

type stubTicketAPI struct{}

func (stubTicketAPI) CreateTicket(context.Context, zendesk.Ticket) error { return nil }
func (stubTicketAPI) Close()                                             {}

type stubMailer struct{}

func (stubMailer) Send(mail.Notification) error { return nil }

func newHandler() *handlers.AltaHandler {
	uc := usecase.NewCreateTicketUseCase(
		stubCards{}, stubPolicies{}, stubProfiles{}, stubDocTypes{},
		render.NewPlainRenderer(),
		func() (usecase.TicketAPI, error) { return stubTicketAPI{}, nil },
		stubMailer{}, nil,
		`{"requester": {"name": "%s", "email": "%s"}, "subject": "Alta", "comment": {"body": "%s"}}`,
		347, "soporte@mycorp.es",
		zap.NewNop(),
	)
	return handlers.NewAltaHandler(uc)
}

func TestHandleAltaOK(t *testing.T) {
	h := newHandler()

	body := `{"card_number": "770012345678", "email": "cliente@example.com"}`
	req := httptest.NewRequest("POST", "/alta", strings.NewReader(body))
	req.Header.Set("User-Agent", "Mozilla/5.0")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, 200, rec.Code)

	var output usecase.AltaOutput
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&output))
	assert.NotEmpty(t, output.AltaID)
	assert.Contains(t, output.Resumen, "Email: cliente@example.com")
	assert.Contains(t, output.Resumen, "User Agent: Mozilla/5.0")
}

func TestHandleAltaInvalidJSON(t *testing.T) {
	h := newHandler()

	req := httptest.NewRequest("POST", "/alta", strings.NewReader("{no-json"))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestHandleAltaMissingEmail(t *testing.T) {
	h := newHandler()

	req := httptest.NewRequest("POST", "/alta", strings.NewReader(`{"card_number": "770012345678"}`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Body.String(), "email")
}
