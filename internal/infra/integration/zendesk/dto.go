package zendesk

// Ticket is the structure the ticketing API accepts. The pipeline builds it
// by substituting the composed body into a configured JSON template and
// unmarshalling the result, so the template owns subject wording and any
// extra fields.
type Ticket struct {
	Requester Requester `json:"requester"`
	Subject   string    `json:"subject"`
	Comment   Comment   `json:"comment"`
}

type Requester struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Comment struct {
	Body string `json:"body"`
}

type createTicketRequest struct {
	Ticket Ticket `json:"ticket"`
}
