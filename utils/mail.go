package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// SMTPServer carries the coordinates of the mail server resolved for a send.
// Handlers build one from the active EmailConfig row.
type SMTPServer struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
	ReplyTo  string
}

func (s SMTPServer) addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type EmailData struct {
	Name            string
	Message         string
	VerificationURL string
	LogoURL         string
}

type OrderItemEmailRow struct {
	Title    string
	Quantity int
	Price    string
}

type OrderEmailData struct {
	Name               string
	OrderCode          string
	OrderDate          string
	CurrentTotal       string
	DiscountTotal      string
	DiscountPercentage string
	PaymentStatus      string
	Items              []OrderItemEmailRow
	Year               int
}

// SendEmail renders the HTML template and sends it through the given SMTP
// server.
func SendEmail(server SMTPServer, emailTo string, emailSubject string, data any, templatePath string) error {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	headers := fmt.Sprintf(
		"From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n",
		server.FromName, server.From, emailTo, emailSubject,
	)
	if server.ReplyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", server.ReplyTo)
	}
	message := headers +
		"MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n" +
		body.String()

	auth := smtp.PlainAuth("", server.User, server.Password, server.Host)
	if err := smtp.SendMail(server.addr(), auth, server.From, []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
