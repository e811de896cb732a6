package contact

import (
	"fmt"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML replaces the five HTML-significant characters with their named
// entities. Applied to every user-supplied string interpolated into the
// outbound email body.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// BodyHTML renders the minimal HTML body for the owner notification email.
// Name and message are escaped; the submitter's address travels in the
// Reply-To header, not the body.
func (s Submission) BodyHTML() string {
	return fmt.Sprintf(
		"<div>\n"+
			"  <p><strong>From:</strong> %s</p>\n"+
			"  <p><strong>Message:</strong></p>\n"+
			"  <p>%s</p>\n"+
			"</div>\n",
		EscapeHTML(s.Name), EscapeHTML(s.Message))
}
