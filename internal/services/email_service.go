package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendWelcomeEmail(email, nome string) error
	SendPasswordResetEmail(email, token string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendWelcomeEmail(email, nome string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Bem-vindo ao Zytech Hub!")

	body := fmt.Sprintf(`
		<h2>Bem-vindo ao Zytech Hub, %s!</h2>
		<p>Sua conta foi criada com sucesso.</p>
		<p>Abraços,<br>Equipe Zytech</p>
	`, nome)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

func (s *emailService) SendPasswordResetEmail(email, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Redefinição de senha")

	body := fmt.Sprintf(`
		<h3>Pedido de redefinição de senha</h3>
		<p>Recebemos um pedido para redefinir a senha da sua conta.</p>
		<p>Use o token abaixo para criar uma senha nova: <strong>%s</strong></p>
		<p>Se não foi você, pode ignorar este email.</p>
	`, token)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}
