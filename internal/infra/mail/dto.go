package mail

// Notification is a templated message for the operations mailbox. TemplateID
// and Locale select the body template; Params are substituted into it in
// order.
type Notification struct {
	TemplateID int64
	Locale     string
	To         string
	Params     []string
}

type Sender struct {
	Host        string
	Port        int
	User        string
	Password    string
	From        string
	TemplateDir string
}
