package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for newsletter
// issue delivery. HTML is optional; Text is recommended as fallback.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}
