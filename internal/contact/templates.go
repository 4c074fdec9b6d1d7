package contact

import (
	"fmt"
	"html/template"
	"strings"
)

// User-supplied fields are rendered through html/template so markup in a
// submission cannot inject content into the notification email.
var adminNotificationTmpl = template.Must(template.New("admin_notification").Parse(`
<h1>New Contact Form Submission</h1>
<p><strong>From:</strong> {{.Name}} ({{.Email}})</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Division:</strong> {{.Division}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<h1>Thank you for contacting Blaide</h1>
<p>Dear {{.Name}},</p>
<p>Thanks for contacting Blaide. We will get back to you shortly.</p>
<p>Best regards,<br>The Blaide Team</p>
`))

type notificationData struct {
	Name     string
	Email    string
	Phone    string
	Division string
	Subject  string
	Message  string
}

func renderAdminNotification(in SubmitInput) (string, error) {
	phone := in.Phone
	if phone == "" {
		phone = "Not provided"
	}
	division := in.Division
	if division == "" {
		division = DefaultDivision
	}

	var b strings.Builder
	err := adminNotificationTmpl.Execute(&b, notificationData{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    phone,
		Division: division,
		Subject:  in.Subject,
		Message:  in.Message,
	})
	if err != nil {
		return "", fmt.Errorf("render admin notification: %w", err)
	}
	return b.String(), nil
}

func renderConfirmation(name string) (string, error) {
	var b strings.Builder
	if err := confirmationTmpl.Execute(&b, struct{ Name string }{Name: name}); err != nil {
		return "", fmt.Errorf("render confirmation: %w", err)
	}
	return b.String(), nil
}
