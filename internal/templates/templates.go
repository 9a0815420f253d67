package templates

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	text_template "text/template"
)

//go:embed emails/*.html
var htmlTemplates embed.FS

//go:embed emails/*.txt
var textTemplates embed.FS

// TemplateRenderer manages loading and rendering of email templates
type TemplateRenderer struct {
	htmlTemplates *template.Template
	textTemplates *text_template.Template
}

// PasswordResetData holds data for the password-reset email template
type PasswordResetData struct {
	ResetURL       string
	ExpiresInHours int
}

// ContactMessageData holds data for the contact-form email template
type ContactMessageData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// NewTemplateRenderer creates a new template renderer
func NewTemplateRenderer() (*TemplateRenderer, error) {
	// Load HTML templates
	htmlTmpl, err := template.ParseFS(htmlTemplates, "emails/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to load HTML templates: %w", err)
	}

	// Load text templates
	textTmpl, err := text_template.ParseFS(textTemplates, "emails/*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to load text templates: %w", err)
	}

	return &TemplateRenderer{
		htmlTemplates: htmlTmpl,
		textTemplates: textTmpl,
	}, nil
}

// RenderPasswordResetHTML renders the HTML email for a password reset
func (t *TemplateRenderer) RenderPasswordResetHTML(resetURL string) (string, error) {
	data := PasswordResetData{
		ResetURL:       resetURL,
		ExpiresInHours: 1,
	}

	var buf strings.Builder
	if err := t.htmlTemplates.ExecuteTemplate(&buf, "password_reset.html", data); err != nil {
		return "", fmt.Errorf("failed to render HTML template: %w", err)
	}

	return buf.String(), nil
}

// RenderPasswordResetText renders the text email for a password reset
func (t *TemplateRenderer) RenderPasswordResetText(resetURL string) (string, error) {
	data := PasswordResetData{
		ResetURL:       resetURL,
		ExpiresInHours: 1,
	}

	var buf strings.Builder
	if err := t.textTemplates.ExecuteTemplate(&buf, "password_reset.txt", data); err != nil {
		return "", fmt.Errorf("failed to render text template: %w", err)
	}

	return buf.String(), nil
}

// RenderContactMessageHTML renders the HTML email for a contact submission
func (t *TemplateRenderer) RenderContactMessageHTML(name, email, subject, message string) (string, error) {
	data := ContactMessageData{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}

	var buf strings.Builder
	if err := t.htmlTemplates.ExecuteTemplate(&buf, "contact_message.html", data); err != nil {
		return "", fmt.Errorf("failed to render HTML template: %w", err)
	}

	return buf.String(), nil
}

// RenderContactMessageText renders the text email for a contact submission
func (t *TemplateRenderer) RenderContactMessageText(name, email, subject, message string) (string, error) {
	data := ContactMessageData{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	}

	var buf strings.Builder
	if err := t.textTemplates.ExecuteTemplate(&buf, "contact_message.txt", data); err != nil {
		return "", fmt.Errorf("failed to render text template: %w", err)
	}

	return buf.String(), nil
}
