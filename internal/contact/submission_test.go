package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims edges", "  hello  ", "hello"},
		{"collapses runs", "hello    world", "hello world"},
		{"collapses tabs and newlines", "hello\t\n world", "hello world"},
		{"empty stays empty", "", ""},
		{"whitespace only", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeField(tt.input))
		})
	}
}

func TestSubmissionNormalize(t *testing.T) {
	s := Submission{
		Name:    "  Alice   Smith ",
		Email:   " alice@example.com ",
		Subject: "\tHello\n",
		Message: "line  one\nline two  ",
	}

	n := s.Normalize()
	assert.Equal(t, "Alice Smith", n.Name)
	assert.Equal(t, "alice@example.com", n.Email)
	assert.Equal(t, "Hello", n.Subject)
	assert.Equal(t, "line one line two", n.Message)

	// Original untouched.
	assert.Equal(t, "  Alice   Smith ", s.Name)
}

func TestSubmissionValid(t *testing.T) {
	valid := Submission{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Hello there friend",
	}
	assert.True(t, valid.Valid())

	tests := []struct {
		name   string
		mutate func(*Submission)
	}{
		{"empty name", func(s *Submission) { s.Name = "" }},
		{"empty email", func(s *Submission) { s.Email = "" }},
		{"email without at", func(s *Submission) { s.Email = "alice.example.com" }},
		{"email without tld", func(s *Submission) { s.Email = "alice@example" }},
		{"email with one-char tld", func(s *Submission) { s.Email = "alice@example.c" }},
		{"email with double at", func(s *Submission) { s.Email = "a@b@example.com" }},
		{"email with space", func(s *Submission) { s.Email = "al ice@example.com" }},
		{"empty message", func(s *Submission) { s.Message = "" }},
		{"short message", func(s *Submission) { s.Message = "too short" }},
		{"exactly ten chars", func(s *Submission) { s.Message = "ten chars." }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			assert.False(t, s.Valid())
		})
	}
}

func TestSubmissionValidMessageBoundary(t *testing.T) {
	s := Submission{Name: "Bob", Email: "bob@example.com", Message: "elevenchars"}
	assert.Len(t, s.Message, 11)
	assert.True(t, s.Valid())
}

func TestDeriveSubject(t *testing.T) {
	s := Submission{Name: "Alice", Subject: "Custom subject"}
	assert.Equal(t, "Custom subject", s.DeriveSubject())

	s.Subject = ""
	assert.Equal(t, "Alice enquiry", s.DeriveSubject())
}

func TestDeriveSubjectStripsHeaderBreaks(t *testing.T) {
	s := Submission{Name: "Alice", Subject: "Hi\r\nBcc: spam@example.com"}
	got := s.DeriveSubject()
	assert.Equal(t, "HiBcc: spam@example.com", got)
	assert.NotContains(t, got, "\n")
	assert.NotContains(t, got, "\r")
}

func TestEmailWithLineBreaksRejected(t *testing.T) {
	s := Submission{
		Name:    "Alice",
		Email:   "alice@example.com\nBcc:spam@example.com",
		Message: "Hello there friend",
	}
	assert.False(t, s.Valid())
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain text", "plain text"},
		{"<script>", "&lt;script&gt;"},
		{`a & b`, "a &amp; b"},
		{`"quoted"`, "&quot;quoted&quot;"},
		{"it's", "it&#039;s"},
		{`<a href="x">&'</a>`, "&lt;a href=&quot;x&quot;&gt;&amp;&#039;&lt;/a&gt;"},
	}

	for _, tt := range tests {
		got := EscapeHTML(tt.input)
		assert.Equal(t, tt.want, got)
		if tt.input != tt.want {
			for _, c := range []string{"<", ">", `"`, "'"} {
				assert.NotContains(t, got, c)
			}
		}
	}
}

func TestBodyHTMLEscapesUserInput(t *testing.T) {
	s := Submission{
		Name:    "Alice <script>",
		Email:   "alice@example.com",
		Message: "Hello & goodbye",
	}

	body := s.BodyHTML()
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "Hello &amp; goodbye")
	assert.False(t, strings.Contains(body, "<script>"))
}
