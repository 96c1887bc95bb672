package ports

// Mailer delivers email on behalf of the catalog.
type Mailer interface {
	SendEmail(subject, body string, recipients []string) error
}
