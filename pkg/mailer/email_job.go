package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for the email
// worker. Today the only job kind is the OTP verification email.
type EmailJob struct {
	To   string `json:"to"`
	Code string `json:"code"`
}
