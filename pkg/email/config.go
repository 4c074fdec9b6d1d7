package email

// Config holds email service configuration.
// PostmarkServerToken and PostmarkAccountToken are optional to support
// development environments where email sending is captured to disk instead.
// SenderEmail and AdminEmail are required: the sender establishes the "from"
// identity of every outbound email, and the admin address receives contact
// form notifications. They are deliberately distinct configuration values.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	AdminEmail           string `env:"ADMIN_EMAIL,required"`
}
