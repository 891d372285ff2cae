package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mycorp/alta-soporte/internal/entity"
	"github.com/mycorp/alta-soporte/internal/infra/http/middleware"
	"github.com/mycorp/alta-soporte/internal/infra/integration/bravo"
	"github.com/mycorp/alta-soporte/internal/infra/integration/polizas"
	"github.com/mycorp/alta-soporte/internal/infra/integration/zendesk"
	"github.com/mycorp/alta-soporte/internal/infra/mail"
	"github.com/mycorp/alta-soporte/internal/infra/queue"
	"github.com/mycorp/alta-soporte/internal/render"
)

// servicePayloadCaption heads the raw lookup dump appended to the ticket
// body. The policy path reuses the card wording; kept as observed.
const servicePayloadCaption = "Datos recuperados del servicio de tarjeta:"

const errorMailLocale = "es"

// CreateTicketUseCase runs the registration pipeline: resolve the customer
// identity from the card or policy service, enrich from BRAVO, compose the
// ticket body and submit it to Zendesk with an email fallback. Every
// collaborator failure degrades the result instead of aborting; Execute
// never fails from the caller's point of view.
type CreateTicketUseCase struct {
	Cards    CardGateway
	Policies PolicyGateway
	Profiles ProfileGateway
	DocTypes DocumentTypeSource
	Renderer render.Renderer
	Tickets  TicketAPIFactory
	Mailer   Mailer
	Events   EventProducer // optional

	TicketTemplate      string
	ErrorMailTemplateID int64
	ErrorMailTo         string

	Log *zap.Logger
}

func NewCreateTicketUseCase(
	cards CardGateway,
	policies PolicyGateway,
	profiles ProfileGateway,
	docTypes DocumentTypeSource,
	renderer render.Renderer,
	tickets TicketAPIFactory,
	mailer Mailer,
	events EventProducer,
	ticketTemplate string,
	errorMailTemplateID int64,
	errorMailTo string,
	log *zap.Logger,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		Cards:               cards,
		Policies:            policies,
		Profiles:            profiles,
		DocTypes:            docTypes,
		Renderer:            renderer,
		Tickets:             tickets,
		Mailer:              mailer,
		Events:              events,
		TicketTemplate:      ticketTemplate,
		ErrorMailTemplateID: errorMailTemplateID,
		ErrorMailTo:         errorMailTo,
		Log:                 log,
	}
}

// Execute runs the whole pipeline for one registration. It always returns a
// textual summary of what was collected, even when every delivery path
// downstream failed.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, input AltaInput) AltaOutput {
	altaID := uuid.New().String()
	log := uc.Log.With(zap.String("alta_id", altaID))

	req := input.ToEntity()

	identity := uc.resolveIdentity(ctx, req, log)
	profile := uc.enrichProfile(ctx, identity.CustomerID, log)

	userSection := uc.Renderer.UserSection(render.UserData{
		HasPolicy:        req.HasPolicy(),
		PolicyNumber:     req.PolicyNumber,
		CardNumber:       req.CardNumber,
		IDDocumentType:   req.IDDocumentType,
		IDDocumentNumber: req.IDDocumentNumber,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		UserAgent:        req.UserAgent,
	})
	profileSection := uc.Renderer.ProfileSection(profile)

	resumen := uc.submit(ctx, req, identity, userSection, profileSection, altaID, log)

	return AltaOutput{AltaID: altaID, Resumen: resumen}
}

// resolveIdentity picks the lookup path from whichever identifier the form
// carried. Failures are logged and produce an unresolved identity; a ticket
// with partial data is still more useful than no ticket.
func (uc *CreateTicketUseCase) resolveIdentity(ctx context.Context, req entity.RegistrationRequest, log *zap.Logger) entity.ResolvedIdentity {
	switch {
	case req.HasCard():
		idCliente, err := uc.Cards.GetClienteID(ctx, req.CardNumber)
		if err != nil {
			log.Error("error al obtener los datos de la tarjeta", zap.Error(err))
			middleware.RecordIntegrationError("tarjetas")
			return entity.ResolvedIdentity{}
		}
		payload, _ := json.Marshal(idCliente)
		return entity.ResolvedIdentity{
			CustomerID:    idCliente,
			DisplayName:   idCliente,
			SourcePayload: servicePayloadCaption + render.EscapedLineSeparator + string(payload),
		}

	case req.HasPolicy():
		detalle, err := uc.lookupPolicy(ctx, req)
		if err != nil {
			log.Error("error al obtener los datos de la póliza", zap.Error(err))
			middleware.RecordIntegrationError("polizas")
			return entity.ResolvedIdentity{}
		}
		tomador := detalle.Tomador
		payload, _ := json.Marshal(detalle)
		return entity.ResolvedIdentity{
			CustomerID:    tomador.Identificador,
			DisplayName:   tomador.Nombre + " " + tomador.Apellido1 + " " + tomador.Apellido2,
			SourcePayload: servicePayloadCaption + render.EscapedLineSeparator + string(payload),
		}

	default:
		// Nothing to resolve and nothing to call.
		return entity.ResolvedIdentity{}
	}
}

func (uc *CreateTicketUseCase) lookupPolicy(ctx context.Context, req entity.RegistrationRequest) (*polizas.DetallePoliza, error) {
	numPoliza, err := strconv.Atoi(req.PolicyNumber)
	if err != nil {
		return nil, fmt.Errorf("número de póliza no numérico: %w", err)
	}
	numColectivo, err := strconv.Atoi(req.CollectiveNumber)
	if err != nil {
		return nil, fmt.Errorf("número de colectivo no numérico: %w", err)
	}

	return uc.Policies.RecuperarDetalle(ctx, polizas.ConsultaPoliza{
		NumPoliza:    numPoliza,
		NumColectivo: numColectivo,
		Compania:     polizas.Compania,
	})
}

// enrichProfile queries BRAVO with the resolved id (possibly empty, the
// service rejects that itself) and translates the coded fields to labels.
// Any failure in the stage, date parsing included, yields no profile.
func (uc *CreateTicketUseCase) enrichProfile(ctx context.Context, idCliente string, log *zap.Logger) *render.ProfileData {
	cliente, err := uc.Profiles.GetDatosCliente(ctx, idCliente)
	if err != nil {
		log.Error("error al obtener los datos en BRAVO del cliente", zap.Error(err))
		middleware.RecordIntegrationError("bravo")
		return nil
	}

	fechaNacimiento, err := time.Parse(bravo.FechaNacimientoLayout, cliente.FechaNacimiento)
	if err != nil {
		log.Error("fecha de nacimiento no válida en BRAVO", zap.Error(err),
			zap.String("fecha", cliente.FechaNacimiento))
		return nil
	}

	tipos, err := uc.DocTypes.List(ctx)
	if err != nil {
		log.Error("error al recuperar los tipos de documento", zap.Error(err))
		return nil
	}

	profile := entity.CustomerProfile{
		PhoneGroup:        cliente.GenTGrupoTmk,
		BirthDate:         fechaNacimiento,
		DocumentTypeCode:  cliente.GenCTipoDocumento,
		DocumentNumber:    cliente.NumeroDocAcred,
		CustomerTypeCode:  cliente.GenTTipoCliente,
		StatusID:          cliente.GenTStatus,
		AdmissionReasonID: cliente.IDMotivoAlta,
		RegisteredOnline:  cliente.FInactivoWeb == nil,
	}

	// Every matching code accumulates a label, duplicates included. The
	// rendering iterates the whole collection, so this stays as observed.
	code := strconv.Itoa(profile.DocumentTypeCode)
	var labels []string
	for _, vc := range tipos {
		if vc.Code == code {
			labels = append(labels, vc.Value)
		}
	}

	registrado := "SÍ"
	if !profile.RegisteredOnline {
		registrado = "No"
	}

	return &render.ProfileData{
		PhoneGroup:       profile.PhoneGroup,
		BirthDate:        profile.BirthDate.Format(bravo.FechaNacimientoLayout),
		DocumentTypes:    labels,
		DocumentNumber:   profile.DocumentNumber,
		CustomerType:     customerTypeLabel(profile.CustomerTypeCode),
		Status:           strconv.Itoa(profile.StatusID),
		AdmissionReason:  strconv.Itoa(profile.AdmissionReasonID),
		RegisteredOnline: registrado,
	}
}

func customerTypeLabel(code int) string {
	switch code {
	case 1:
		return "POTENCIAL"
	case 2:
		return "REAL"
	case 3:
		return "PROSPECTO"
	default:
		return ""
	}
}

// submit composes the final ticket and attempts creation; on any failure it
// falls back to the notification mail. Whatever happens downstream, the
// composed sections are returned to the caller.
func (uc *CreateTicketUseCase) submit(ctx context.Context, req entity.RegistrationRequest, identity entity.ResolvedIdentity, userSection, profileSection, altaID string, log *zap.Logger) string {
	body := userSection + profileSection + sanitizeServicePayload(identity.SourcePayload)
	ticketStr := fmt.Sprintf(uc.TicketTemplate, identity.DisplayName, req.Email, body)
	ticketStr = flattenSeparators(ticketStr)

	if err := uc.createTicket(ctx, ticketStr); err != nil {
		log.Error("error al crear el ticket en zendesk", zap.Error(err))
		middleware.RecordIntegrationError("zendesk")
		uc.sendFallbackMail(ctx, userSection, profileSection, altaID, req.Email, log)
	} else {
		middleware.RecordTicketCreated()
		uc.publishOutcome(ctx, altaID, req.Email, queue.OutcomeCreated, log)
	}

	return userSection + profileSection
}

func (uc *CreateTicketUseCase) createTicket(ctx context.Context, ticketStr string) error {
	var ticket zendesk.Ticket
	if err := json.Unmarshal([]byte(ticketStr), &ticket); err != nil {
		return fmt.Errorf("ticket mal formado: %w", err)
	}

	api, err := uc.Tickets()
	if err != nil {
		return err
	}
	defer api.Close()

	return api.CreateTicket(ctx, ticket)
}

// sendFallbackMail is attempted exactly once per failed submission. Its own
// failure is logged and swallowed; ticket creation stays best effort for the
// caller either way.
func (uc *CreateTicketUseCase) sendFallbackMail(ctx context.Context, userSection, profileSection, altaID, requesterEmail string, log *zap.Logger) {
	n := mail.Notification{
		TemplateID: uc.ErrorMailTemplateID,
		Locale:     errorMailLocale,
		To:         uc.ErrorMailTo,
		Params: []string{
			strings.ReplaceAll(userSection, render.EscapedLineSeparator, render.HTMLBreak),
			strings.ReplaceAll(profileSection, render.EscapedLineSeparator, render.HTMLBreak),
		},
	}

	if err := uc.Mailer.Send(n); err != nil {
		log.Error("error al enviar el mail de aviso", zap.Error(err))
		middleware.RecordFallbackEmail("error")
		uc.publishOutcome(ctx, altaID, requesterEmail, queue.OutcomeLost, log)
		return
	}

	middleware.RecordFallbackEmail("sent")
	uc.publishOutcome(ctx, altaID, requesterEmail, queue.OutcomeFallbackEmail, log)
}

func (uc *CreateTicketUseCase) publishOutcome(ctx context.Context, altaID, requesterEmail, outcome string, log *zap.Logger) {
	if uc.Events == nil {
		return
	}

	ev := queue.TicketOutcomeEvent{
		AltaID:         altaID,
		Outcome:        outcome,
		RequesterEmail: requesterEmail,
		OccurredAt:     time.Now(),
	}
	if err := uc.Events.PublishTicketOutcome(ctx, ev); err != nil {
		log.Error("error al publicar el evento de resultado", zap.Error(err))
	}
}

var (
	structuralChars = regexp.MustCompile(`[\[\]{}"\r]`)
	separatorToken  = regexp.MustCompile(`\\\\n|\\n`)
)

// sanitizeServicePayload strips the JSON structural characters from the raw
// lookup dump and re-escapes the embedded separators so they survive the
// final flattening.
func sanitizeServicePayload(payload string) string {
	s := structuralChars.ReplaceAllString(payload, "")
	return strings.ReplaceAll(s, render.EscapedLineSeparator, `\`+render.EscapedLineSeparator)
}

// flattenSeparators turns every bare separator token into a plain space; the
// ticket subject and description are single-line at the template layer.
// Re-escaped separators from the payload dump are kept, they decode to
// literal text in the ticket body.
func flattenSeparators(s string) string {
	return separatorToken.ReplaceAllStringFunc(s, func(m string) string {
		if m == `\\n` {
			return m
		}
		return " "
	})
}
