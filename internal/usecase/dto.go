package usecase

import "github.com/mycorp/alta-soporte/internal/entity"

type AltaInput struct {
	CardNumber       string `json:"card_number"`
	PolicyNumber     string `json:"policy_number"`
	CollectiveNumber string `json:"collective_number"`
	IDDocumentType   string `json:"id_document_type"`
	IDDocumentNumber string `json:"id_document_number"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number"`

	// Filled in by the HTTP layer from the request header.
	UserAgent string `json:"-"`
}

type AltaOutput struct {
	AltaID  string `json:"alta_id"`
	Resumen string `json:"resumen"`
}

func (i AltaInput) ToEntity() entity.RegistrationRequest {
	return entity.RegistrationRequest{
		CardNumber:       i.CardNumber,
		PolicyNumber:     i.PolicyNumber,
		CollectiveNumber: i.CollectiveNumber,
		IDDocumentType:   i.IDDocumentType,
		IDDocumentNumber: i.IDDocumentNumber,
		Email:            i.Email,
		PhoneNumber:      i.PhoneNumber,
		UserAgent:        i.UserAgent,
	}
}
