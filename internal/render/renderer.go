package render

// The ticket body is built with an escaped line separator: the two literal
// characters backslash + n, not a real newline. Zendesk receives it
// flattened to spaces, the fallback mail converts it to <br/>.
const (
	EscapedLineSeparator = `\n`
	HTMLBreak            = "<br/>"
)

// UserData is the slice of the registration form that goes into the first
// block of the ticket body.
type UserData struct {
	HasPolicy        bool
	PolicyNumber     string
	CardNumber       string
	IDDocumentType   string
	IDDocumentNumber string
	Email            string
	PhoneNumber      string
	UserAgent        string
}

// ProfileData is the already-translated BRAVO block: codes are resolved to
// labels before rendering, so both renderer implementations stay dumb.
type ProfileData struct {
	PhoneGroup       string
	BirthDate        string
	DocumentTypes    []string
	DocumentNumber   string
	CustomerType     string
	Status           string
	AdmissionReason  string
	RegisteredOnline string
}

// Renderer produces the two independent text blocks of the ticket body.
// Both blocks use EscapedLineSeparator after every field so they can be
// concatenated, flattened for Zendesk or converted to HTML for the
// fallback mail without re-rendering.
type Renderer interface {
	UserSection(d UserData) string
	ProfileSection(d *ProfileData) string
}

// New selects the renderer implementation by configuration. Both
// implementations produce byte-identical output for the same input.
func New(mode string) Renderer {
	if mode == "plain" {
		return NewPlainRenderer()
	}
	return NewTemplateRenderer()
}
