// internal/app/features/contact/handler.go

// Package contact relays contact-form submissions as email to the
// studio. Submissions are transient: validated, rendered, sent, and
// discarded — nothing is persisted.
package contact

import (
	"net/http"

	"github.com/lotusandpine/studiohub/internal/app/system/htmlsanitize"
	"github.com/lotusandpine/studiohub/internal/app/system/inputval"
	"github.com/lotusandpine/studiohub/internal/app/system/mailer"
	"github.com/lotusandpine/studiohub/internal/app/system/normalize"
	"github.com/lotusandpine/studiohub/internal/app/system/webapi"
	"github.com/lotusandpine/studiohub/internal/domain/apperr"
	"go.uber.org/zap"
)

// MailSender delivers the notification. *mailer.Mailer satisfies this.
type MailSender interface {
	Configured() bool
	Send(e mailer.Email) (string, error)
}

type Handler struct {
	Mailer   MailSender
	Log      *zap.Logger
	SiteName string
	// To is the fixed studio inbox every notification goes to.
	To string
}

// NewHandler creates a contact handler delivering to the given inbox.
func NewHandler(mail MailSender, siteName, to string, logger *zap.Logger) *Handler {
	return &Handler{
		Mailer:   mail,
		Log:      logger,
		SiteName: siteName,
		To:       to,
	}
}

type submission struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Serve handles POST /api/contact.
//
// Request: {name, phone, email?, message?}, no authentication.
// Success: 200 {success:true, id}. Validation failure: 400 before any
// external call. Missing mail configuration or send failure: 500.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	var sub submission
	if err := webapi.DecodeJSON(r, &sub); err != nil {
		webapi.WriteAppError(w, h.Log, err)
		return
	}

	name, nameOK := inputval.Required(sub.Name)
	phone, phoneOK := inputval.Required(sub.Phone)
	if !nameOK || !phoneOK {
		webapi.WriteAppError(w, h.Log, apperr.Validation("name and phone required"))
		return
	}

	if !h.Mailer.Configured() {
		h.Log.Error("contact submission dropped: mailer not configured")
		webapi.WriteAppError(w, h.Log, apperr.ErrMailerNotConfigured)
		return
	}

	// Submitted text ends up inside the notification HTML; strip any
	// markup before it gets near the template.
	msg := mailer.BuildContactEmail(mailer.ContactEmailData{
		SiteName: h.SiteName,
		Name:     htmlsanitize.StripTags(name),
		Phone:    htmlsanitize.StripTags(phone),
		Email:    htmlsanitize.StripTags(normalize.Email(sub.Email)),
		Message:  htmlsanitize.StripTags(sub.Message),
	})
	msg.To = h.To

	id, err := h.Mailer.Send(msg)
	if err != nil {
		h.Log.Error("contact email failed", zap.String("name", name), zap.Error(err))
		webapi.WriteAppError(w, h.Log, apperr.Provider("send contact email", err))
		return
	}

	h.Log.Info("contact email sent", zap.String("name", name), zap.String("phone", phone), zap.String("message_id", id))
	webapi.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
}
