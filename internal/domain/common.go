package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/adventboard/backend/pkg/errorx"
)

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errorx.New(errorx.BadRequest, "Email is required")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errorx.New(errorx.BadRequest, "Invalid email address")
	}

	return email, nil
}

func validateCompetition(name string, start, end time.Time) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errorx.New(errorx.BadRequest, "Name is required")
	}

	if start.IsZero() || end.IsZero() {
		return "", errorx.New(errorx.BadRequest, "Start date and end date are required")
	}

	if end.Before(start) {
		return "", errorx.New(errorx.BadRequest, "End date must not be before start date")
	}

	return name, nil
}
