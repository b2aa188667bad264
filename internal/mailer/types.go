package mailer

// ContactMessage carries one contact-form submission to the delivery
// template.
type ContactMessage struct {
	FromName  string
	FromEmail string
	Message   string
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	ReplyTo   string `json:"reply_to"`
	Message   string `json:"message"`
	Title     string `json:"title"`
}
