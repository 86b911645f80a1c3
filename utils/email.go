package utils

import (
	"fmt"
	"io"
	"restaurant_manager/config"

	"gopkg.in/gomail.v2"
)

// ReportMail is a plain notification with one optional attachment.
type ReportMail struct {
	To             string
	Subject        string
	HTMLBody       string
	AttachmentName string
	Attachment     []byte
}

// SendReportMail delivers the mail through the configured SMTP relay.
func SendReportMail(mail ReportMail) error {
	host := config.Config("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("SMTP_HOST is not configured")
	}
	port := config.Int("SMTP_PORT", 587)
	username := config.Config("SMTP_USERNAME")
	password := config.Config("SMTP_PASSWORD")
	from := config.String("SMTP_FROM", username)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", mail.To)
	m.SetHeader("Subject", mail.Subject)
	m.SetBody("text/html", mail.HTMLBody)

	if len(mail.Attachment) > 0 {
		data := mail.Attachment
		m.Attach(mail.AttachmentName,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{
				"Content-Type": {XLSXContentType},
			}),
		)
	}

	d := gomail.NewDialer(host, port, username, password)
	return d.DialAndSend(m)
}
