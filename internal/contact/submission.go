package contact

import (
	"regexp"
	"strings"
)

// Submission is one contact-form payload as posted by the browser form.
// Fields are untrusted until Normalize + Valid have run.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// emailShape matches local@domain.tld with no whitespace or extra @ signs
// and a TLD of at least two characters.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

var spaceRuns = regexp.MustCompile(`\s+`)

// NormalizeField collapses internal whitespace runs to a single space and
// trims leading/trailing whitespace.
func NormalizeField(s string) string {
	return strings.TrimSpace(spaceRuns.ReplaceAllString(s, " "))
}

// Normalize returns a copy of the submission with every field normalized.
// The original is left untouched so the raw input stays available for logging.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    NormalizeField(s.Name),
		Email:   NormalizeField(s.Email),
		Subject: NormalizeField(s.Subject),
		Message: NormalizeField(s.Message),
	}
}

// minMessageLen guards against trivially short spam submissions.
const minMessageLen = 10

// Valid reports whether a normalized submission passes all validity
// invariants: non-empty name, plausible email shape, message longer than
// minMessageLen. Subject is optional and never invalidates a submission.
func (s Submission) Valid() bool {
	if s.Name == "" {
		return false
	}
	if s.Email == "" || !emailShape.MatchString(s.Email) {
		return false
	}
	if strings.ContainsAny(s.Email, "\r\n") {
		return false
	}
	if len(s.Message) <= minMessageLen {
		return false
	}
	return true
}

// DeriveSubject returns the subject line for the outbound email: the
// user-provided subject when one survives normalization, otherwise
// "<name> enquiry". Header-injection characters are stripped so the value
// is always safe to place in a mail header.
func (s Submission) DeriveSubject() string {
	subject := stripHeaderBreaks(s.Subject)
	if subject != "" {
		return subject
	}
	return s.Name + " enquiry"
}

// stripHeaderBreaks removes CR/LF so user input cannot smuggle extra
// headers into the outbound message.
func stripHeaderBreaks(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, s)
}
