// Package email provides a provider-agnostic interface for sending
// transactional emails with built-in support for Postmark and a local
// development sender.
//
// The package is built around the EmailSender interface, allowing the email
// provider to be swapped without changing application code:
//   - postmarkClient for production delivery with open/click tracking
//   - DevSender for local development (saves emails to disk)
//
// All implementations validate email parameters before sending and return
// the provider-assigned message identifier on success.
//
//	cfg := email.Config{
//	    PostmarkServerToken:  "server-token",
//	    PostmarkAccountToken: "account-token",
//	    SenderEmail:          "noreply@blaidelabs.com",
//	    AdminEmail:           "contact@blaidelabs.com",
//	}
//
//	sender, err := email.NewPostmarkClient(cfg)
//	if err != nil {
//	    // a required credential or address is missing
//	}
//
//	id, err := sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "someone@example.com",
//	    Subject:  "Hello",
//	    BodyHTML: html,
//	    Tag:      "contact-form",
//	})
package email
