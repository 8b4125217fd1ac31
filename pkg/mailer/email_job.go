package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for the
// email worker. Either Template+Data or Subject with Text/HTML must be
// set; ReplyTo is optional.
type EmailJob struct {
	To       string         `json:"to"`
	ReplyTo  string         `json:"reply_to,omitempty"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "contact"
	Data     map[string]any `json:"data,omitempty"`
}
