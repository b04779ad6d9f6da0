// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// noMessagePlaceholder is rendered when a contact submission arrives
// without a message body.
const noMessagePlaceholder = "(no message provided)"

// ContactEmailData holds data for the contact notification email.
// Fields are expected to be sanitized before they get here.
type ContactEmailData struct {
	SiteName string
	Name     string
	Phone    string
	Email    string // optional; the row is omitted when empty
	Message  string // optional; a placeholder is shown when empty
}

// BuildContactEmail renders the notification sent to the studio when a
// visitor submits the contact form. The recipient is set by the caller.
func BuildContactEmail(data ContactEmailData) Email {
	if data.Message == "" {
		data.Message = noMessagePlaceholder
	}
	return Email{
		// The name reaches the Subject header; line breaks must not.
		Subject:  fmt.Sprintf("New contact request from %s", headerSafe(data.Name)),
		TextBody: buildContactText(data),
		HTMLBody: buildContactHTML(data),
	}
}

func buildContactText(data ContactEmailData) string {
	var buf bytes.Buffer
	buf.WriteString("A new contact request arrived through the website.\n\n")
	buf.WriteString("Name: " + data.Name + "\n")
	buf.WriteString("Phone: " + data.Phone + "\n")
	if data.Email != "" {
		buf.WriteString("Email: " + data.Email + "\n")
	}
	buf.WriteString("Message: " + data.Message + "\n")
	return buf.String()
}

func buildContactHTML(data ContactEmailData) string {
	tmpl := template.Must(template.New("contact").Parse(contactHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const contactHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>New Contact Request</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #0d9488;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 24px; font-size: 16px; color: #374151; line-height: 1.5;">
                A new contact request arrived through the website:
              </p>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="font-size: 15px; color: #1f2937;">
                <tr>
                  <td style="padding: 8px 0; color: #6b7280; width: 90px;">Name</td>
                  <td style="padding: 8px 0;">{{.Name}}</td>
                </tr>
                <tr>
                  <td style="padding: 8px 0; color: #6b7280;">Phone</td>
                  <td style="padding: 8px 0;">{{.Phone}}</td>
                </tr>
                {{if .Email}}<tr>
                  <td style="padding: 8px 0; color: #6b7280;">Email</td>
                  <td style="padding: 8px 0;">{{.Email}}</td>
                </tr>
                {{end}}<tr>
                  <td style="padding: 8px 0; color: #6b7280; vertical-align: top;">Message</td>
                  <td style="padding: 8px 0;">{{.Message}}</td>
                </tr>
              </table>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`

// ResetEmailData holds data for the password-reset email sent to a newly
// added (or re-invited) admin.
type ResetEmailData struct {
	SiteName  string
	ResetLink string
	ExpiresIn string // e.g. "24 hours"
}

// BuildPasswordResetEmail creates the password-reset message. The
// recipient is set by the caller.
func BuildPasswordResetEmail(data ResetEmailData) Email {
	return Email{
		Subject:  fmt.Sprintf("Set your %s admin password", data.SiteName),
		TextBody: buildResetText(data),
		HTMLBody: buildResetHTML(data),
	}
}

func buildResetText(data ResetEmailData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("You have been given admin access to %s.\n\n", data.SiteName))
	buf.WriteString("Set your password using this link:\n")
	buf.WriteString(data.ResetLink + "\n\n")
	buf.WriteString(fmt.Sprintf("This link expires in %s.\n\n", data.ExpiresIn))
	buf.WriteString("If you were not expecting this email, you can safely ignore it.\n")
	return buf.String()
}

func buildResetHTML(data ResetEmailData) string {
	tmpl := template.Must(template.New("reset").Parse(resetHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const resetHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Set Your Password</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #0d9488;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 24px; font-size: 16px; color: #374151; line-height: 1.5;">
                You have been given admin access. Click the button below to set your password:
              </p>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0">
                <tr>
                  <td align="center">
                    <a href="{{.ResetLink}}" style="display: inline-block; padding: 14px 32px; background-color: #0d9488; color: #ffffff; text-decoration: none; font-size: 16px; font-weight: 500; border-radius: 6px;">
                      Set Password
                    </a>
                  </td>
                </tr>
              </table>
              <p style="margin: 24px 0 0; font-size: 13px; color: #9ca3af; text-align: center;">
                This link expires in {{.ExpiresIn}}.
              </p>
            </td>
          </tr>
          <tr>
            <td style="padding: 24px 32px; background-color: #f9fafb; border-top: 1px solid #e5e7eb; border-radius: 0 0 8px 8px;">
              <p style="margin: 0; font-size: 12px; color: #9ca3af; text-align: center;">
                If you were not expecting this email, you can safely ignore it.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
