package contact

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

const (
	maxNameLen    = 200
	maxMessageLen = 5000
)

// Submission is one contact form message.
type Submission struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Handlers accepts contact form submissions and hands them to a Mailer.
type Handlers struct {
	mailer Mailer
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(mailer Mailer, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{mailer: mailer, logger: logger}
}

// Submit handles POST /contact. It accepts both JSON bodies and classic form
// posts.
func (h *Handlers) Submit(w http.ResponseWriter, r *http.Request) {
	sub, err := readSubmission(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	sub.ID = uuid.NewString()

	if err := h.mailer.Send(sub); err != nil {
		h.logger.Error("contact delivery failed", "submission", sub.ID, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": "message could not be delivered, please try again later",
		})
		return
	}

	h.logger.Info("contact submission delivered", "submission", sub.ID)
	writeJSON(w, http.StatusAccepted, map[string]string{"id": sub.ID})
}

func readSubmission(r *http.Request) (Submission, error) {
	var sub Submission

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			return sub, errInvalid("body is not valid JSON")
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return sub, errInvalid("malformed form body")
		}
		sub.Name = r.PostFormValue("name")
		sub.Email = r.PostFormValue("email")
		sub.Message = r.PostFormValue("message")
	}

	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Message = strings.TrimSpace(sub.Message)

	switch {
	case sub.Name == "":
		return sub, errInvalid("name is required")
	case len(sub.Name) > maxNameLen:
		return sub, errInvalid("name is too long")
	case sub.Email == "":
		return sub, errInvalid("email is required")
	case sub.Message == "":
		return sub, errInvalid("message is required")
	case len(sub.Message) > maxMessageLen:
		return sub, errInvalid("message is too long")
	}
	if _, err := mail.ParseAddress(sub.Email); err != nil {
		return sub, errInvalid("email address is not valid")
	}
	return sub, nil
}

type errInvalid string

func (e errInvalid) Error() string { return string(e) }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
