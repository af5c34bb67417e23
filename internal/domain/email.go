package domain

// Mailer sends an email with both HTML and plain-text bodies. Either body
// may be empty. Used to deliver the retention sweep report to the operator.
type Mailer interface {
	Send(to, subject, html, text string) error
}
