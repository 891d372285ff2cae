package entity

import "strings"

// RegistrationRequest carries the fields of the customer web sign-up form.
// Exactly one of CardNumber or PolicyNumber is expected to be filled in;
// a request with neither is still valid and simply resolves no identity.
type RegistrationRequest struct {
	CardNumber       string `json:"card_number"`
	PolicyNumber     string `json:"policy_number"`
	CollectiveNumber string `json:"collective_number"`
	IDDocumentType   string `json:"id_document_type"`
	IDDocumentNumber string `json:"id_document_number"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number"`

	// UserAgent comes from the HTTP header, not the form body.
	UserAgent string `json:"-"`
}

func (r RegistrationRequest) HasPolicy() bool {
	return strings.TrimSpace(r.PolicyNumber) != ""
}

func (r RegistrationRequest) HasCard() bool {
	return strings.TrimSpace(r.CardNumber) != ""
}
