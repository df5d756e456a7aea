package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/perfectdrive/rental-service/internal/domain"
)

// Темы писем (витрина французская)
const (
	subjectAdminNewBooking     = "Nouvelle Demande de Location - Perfect Drive"
	subjectCustomerReceived    = "Votre demande de location - Perfect Drive"
	subjectCustomerConfirmed   = "Réservation Confirmée - Perfect Drive"
	subjectCustomerRejected    = "Réservation Refusée - Perfect Drive"
	subjectCustomerPaymentLink = "Votre lien de paiement - Perfect Drive"
)

// Client клиент почтового шлюза
type Client struct {
	baseURL    string
	from       string
	adminEmail string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(baseURL, from, adminEmail string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		from:       from,
		adminEmail: adminEmail,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendAdminNewBooking уведомляет администратора о новой заявке
func (c *Client) SendAdminNewBooking(ctx context.Context, b *domain.Booking) error {
	body := fmt.Sprintf(
		"Nouvelle demande de location n°%d\n\n"+
			"Client : %s %s\n"+
			"Email : %s\n"+
			"Téléphone : %s\n\n"+
			"Du %s à %s au %s à %s\n"+
			"Formule kilométrage : %s\n"+
			"Prix total : %.2f €\n"+
			"Kilométrage inclus : %s\n"+
			"Caution : %s\n",
		b.ID,
		b.CustomerFirstname, b.CustomerLastname,
		b.CustomerEmail,
		b.CustomerPhone,
		b.StartDate.Format(domain.DateFormat), b.StartTime,
		b.EndDate.Format(domain.DateFormat), b.EndTime,
		b.MileagePlan,
		b.TotalPrice,
		b.KmLimit,
		b.DepositMethod,
	)

	return c.send(ctx, c.adminEmail, subjectAdminNewBooking, body)
}

// SendCustomerReceived подтверждает клиенту получение заявки
func (c *Client) SendCustomerReceived(ctx context.Context, b *domain.Booking) error {
	text := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Nous avons bien reçu votre demande de location du %s au %s.\n"+
			"Elle sera examinée dans les plus brefs délais.\n\n"+
			"Prix total : %.2f € (%s)\n\n"+
			"À très bientôt,\nL'équipe Perfect Drive",
		b.CustomerFirstname,
		b.StartDate.Format(domain.DateFormat),
		b.EndDate.Format(domain.DateFormat),
		b.TotalPrice,
		b.KmLimit,
	)

	return c.send(ctx, b.CustomerEmail, subjectCustomerReceived, text)
}

// SendCustomerConfirmed уведомляет клиента о подтверждении заявки
func (c *Client) SendCustomerConfirmed(ctx context.Context, b *domain.Booking) error {
	text := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Bonne nouvelle ! Votre réservation du %s au %s est confirmée.\n\n"+
			"Départ : %s à %s\nRetour : %s à %s\n"+
			"Prix total : %.2f € (%s)\n\n"+
			"À très bientôt,\nL'équipe Perfect Drive",
		b.CustomerFirstname,
		b.StartDate.Format(domain.DateFormat),
		b.EndDate.Format(domain.DateFormat),
		b.StartDate.Format(domain.DateFormat), b.StartTime,
		b.EndDate.Format(domain.DateFormat), b.EndTime,
		b.TotalPrice,
		b.KmLimit,
	)

	return c.send(ctx, b.CustomerEmail, subjectCustomerConfirmed, text)
}

// SendCustomerRejected уведомляет клиента об отклонении заявки с причиной
func (c *Client) SendCustomerRejected(ctx context.Context, b *domain.Booking) error {
	reason := ""
	if b.RejectionReason != nil {
		reason = *b.RejectionReason
	}

	text := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Nous sommes au regret de vous informer que votre demande de location "+
			"du %s au %s n'a pas pu être acceptée.\n\n"+
			"Motif : %s\n\n"+
			"N'hésitez pas à nous contacter pour toute question.\n\n"+
			"Cordialement,\nL'équipe Perfect Drive",
		b.CustomerFirstname,
		b.StartDate.Format(domain.DateFormat),
		b.EndDate.Format(domain.DateFormat),
		reason,
	)

	return c.send(ctx, b.CustomerEmail, subjectCustomerRejected, text)
}

// SendCustomerPaymentLink отправляет клиенту ссылку на оплату
func (c *Client) SendCustomerPaymentLink(ctx context.Context, b *domain.Booking) error {
	link := ""
	if b.PaymentLink != nil {
		link = *b.PaymentLink
	}

	text := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Votre demande de location du %s au %s a été validée.\n"+
			"Pour finaliser votre réservation, merci de procéder au paiement via le lien suivant :\n\n"+
			"%s\n\n"+
			"Montant : %.2f €\n\n"+
			"Cordialement,\nL'équipe Perfect Drive",
		b.CustomerFirstname,
		b.StartDate.Format(domain.DateFormat),
		b.EndDate.Format(domain.DateFormat),
		link,
		b.TotalPrice,
	)

	return c.send(ctx, b.CustomerEmail, subjectCustomerPaymentLink, text)
}

// send отправляет письмо через HTTP API почтового шлюза
func (c *Client) send(ctx context.Context, to, subject, textBody string) error {
	url := fmt.Sprintf("%s/v1/messages", c.baseURL)

	payload, err := json.Marshal(sendRequest{
		From:     c.from,
		To:       to,
		Subject:  subject,
		TextBody: textBody,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	c.log.Info("Mail sent: to=%s, subject=%q", to, subject)
	return nil
}
