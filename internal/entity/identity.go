package entity

// ResolvedIdentity is the outcome of looking the customer up in the card or
// policy service. Empty fields mean "unresolved", never an error: a lookup
// failure degrades the identity instead of aborting the registration flow.
type ResolvedIdentity struct {
	CustomerID  string
	DisplayName string

	// SourcePayload keeps the raw service response (JSON behind a caption
	// line) so the ticket body carries it for audit.
	SourcePayload string
}

func (i ResolvedIdentity) Resolved() bool {
	return i.CustomerID != ""
}
