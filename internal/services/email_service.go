package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/sirupsen/logrus"

	"github.com/ourkidney/api-backend/internal/templates"
)

// EmailService sends transactional email via AWS SES
type EmailService struct {
	client    *sesv2.Client
	fromEmail string
	templates *templates.TemplateRenderer
}

// EmailConfig holds configuration for the email service
type EmailConfig struct {
	// FromEmail is the email address that will appear in the From field
	FromEmail string
	// Region is the AWS region for SES (e.g., "us-east-1", "eu-west-1")
	Region string
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg *EmailConfig) (*EmailService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("email config is required")
	}
	if cfg.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}

	// Load AWS configuration with default credentials provider chain
	// This will check: Environment variables -> Shared config file -> IAM role (on EC2)
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(awsCfg)

	tmplRenderer, err := templates.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize templates: %w", err)
	}

	return &EmailService{
		client:    client,
		fromEmail: cfg.FromEmail,
		templates: tmplRenderer,
	}, nil
}

// SendPasswordReset sends a password-reset link to an admin
func (s *EmailService) SendPasswordReset(ctx context.Context, toEmail string, resetURL string) error {
	if toEmail == "" {
		return fmt.Errorf("recipient email is required")
	}
	if resetURL == "" {
		return fmt.Errorf("reset URL is required")
	}

	subject := "Kidney Association - Password Reset"
	htmlBody, err := s.templates.RenderPasswordResetHTML(resetURL)
	if err != nil {
		return fmt.Errorf("failed to render HTML template: %w", err)
	}

	textBody, err := s.templates.RenderPasswordResetText(resetURL)
	if err != nil {
		return fmt.Errorf("failed to render text template: %w", err)
	}

	if err := s.sendEmail(ctx, toEmail, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	logrus.WithField("to", toEmail).Info("Password reset email sent")
	return nil
}

// SendContactMessage forwards a contact-form submission to the admin inbox
func (s *EmailService) SendContactMessage(ctx context.Context, toEmail string, name, fromEmail, subject, message string) error {
	if toEmail == "" {
		return fmt.Errorf("recipient email is required")
	}

	mailSubject := "Contact form: " + subject
	htmlBody, err := s.templates.RenderContactMessageHTML(name, fromEmail, subject, message)
	if err != nil {
		return fmt.Errorf("failed to render HTML template: %w", err)
	}

	textBody, err := s.templates.RenderContactMessageText(name, fromEmail, subject, message)
	if err != nil {
		return fmt.Errorf("failed to render text template: %w", err)
	}

	if err := s.sendEmail(ctx, toEmail, mailSubject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send contact message: %w", err)
	}

	logrus.WithField("from", fromEmail).Info("Contact message forwarded")
	return nil
}

// sendEmail sends an email via AWS SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("SES SendEmail failed: %w", err)
	}

	// Log successful send with MessageId for tracking
	if result.MessageId != nil {
		logrus.WithField("message_id", *result.MessageId).Debug("Email accepted by SES")
	}

	return nil
}
