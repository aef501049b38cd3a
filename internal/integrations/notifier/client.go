package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/PetCare-BookingService/internal/domain"
	"github.com/m04kA/PetCare-BookingService/internal/engine"
)

// Client отправляет push и e-mail уведомления о бронированиях
type Client struct {
	pushURL    string
	emailURL   string
	timeout    time.Duration
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
	now        func() time.Time
	inFlight   sync.WaitGroup
}

// NewClient создает новый экземпляр клиента уведомлений.
// Пустой pushURL отключает push канал. metrics может быть nil.
func NewClient(pushURL, emailURL string, timeout time.Duration, metrics MetricsRecorder, log Logger) *Client {
	return &Client{
		pushURL:  pushURL,
		emailURL: emailURL,
		timeout:  timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
		now:     time.Now,
	}
}

// BookingCreated уведомляет владельца о новой заявке в фоне.
// Результат отправки только логируется, бронирование от него не зависит.
func (c *Client) BookingCreated(booking *domain.Booking, settings *domain.Settings) {
	c.inFlight.Add(1)
	go func() {
		defer c.inFlight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		c.NotifyBookingCreated(ctx, booking, settings)
	}()
}

// StatusChanged уведомляет клиента о подтверждении или отказе в фоне
func (c *Client) StatusChanged(booking *domain.Booking, settings *domain.Settings) {
	c.inFlight.Add(1)
	go func() {
		defer c.inFlight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		c.NotifyStatusChanged(ctx, booking, settings)
	}()
}

// Wait ждёт завершения фоновых уведомлений или отмены ctx
func (c *Client) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.inFlight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		c.log.Warn("Notifier: shutdown before pending notifications finished: %v", ctx.Err())
		return ctx.Err()
	}
}

// NotifyBookingCreated синхронно отправляет push владельцу и письма владельцу и клиенту
func (c *Client) NotifyBookingCreated(ctx context.Context, booking *domain.Booking, settings *domain.Settings) {
	// 1. Push владельцу
	if settings.NotificationsEnabled && c.pushURL != "" {
		msg := PushMessage{
			Title: "New Booking Request!",
			Body:  fmt.Sprintf("%s - %s - %d days", booking.PetName, booking.ServiceName, len(booking.Dates)),
			Tag:   pushTagBooking,
		}
		c.record(ChannelPush, c.SendPush(ctx, msg), booking.ID)
	}

	ejs := settings.EmailJS
	if !ejs.IsConfigured() {
		return
	}

	params := c.bookingParams(booking, settings)

	// 2. Письмо владельцу
	if ejs.OwnerTemplateID != "" {
		c.record(ChannelEmail, c.SendEmail(ctx, ejs, ejs.OwnerTemplateID, params), booking.ID)
	}

	// 3. Подтверждение клиенту, только если он оставил e-mail
	if ejs.ClientTemplateID != "" && booking.OwnerEmail != "" {
		c.record(ChannelEmail, c.SendEmail(ctx, ejs, ejs.ClientTemplateID, params), booking.ID)
	}
}

// NotifyStatusChanged синхронно отправляет клиенту письмо о новом статусе
func (c *Client) NotifyStatusChanged(ctx context.Context, booking *domain.Booking, settings *domain.Settings) {
	ejs := settings.EmailJS
	if !ejs.IsConfigured() || booking.OwnerEmail == "" {
		return
	}

	var templateID string
	switch booking.Status {
	case domain.StatusConfirmed:
		templateID = ejs.ConfirmTemplateID
	case domain.StatusDeclined:
		templateID = ejs.DeclineTemplateID
	}
	if templateID == "" {
		return
	}

	c.record(ChannelEmail, c.SendEmail(ctx, ejs, templateID, c.statusParams(booking, settings)), booking.ID)
}

// SendPush отправляет сообщение на push вебхук
func (c *Client) SendPush(ctx context.Context, msg PushMessage) error {
	if c.pushURL == "" {
		return ErrNotConfigured
	}
	return c.post(ctx, c.pushURL, msg)
}

// SendEmail отправляет письмо по шаблону EmailJS
func (c *Client) SendEmail(ctx context.Context, ejs domain.EmailConfig, templateID string, params map[string]string) error {
	if !ejs.IsConfigured() || templateID == "" {
		return ErrNotConfigured
	}

	return c.post(ctx, c.emailURL, EmailRequest{
		ServiceID:      ejs.ServiceID,
		TemplateID:     templateID,
		UserID:         ejs.PublicKey,
		TemplateParams: params,
	})
}

func (c *Client) post(ctx context.Context, url string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}

func (c *Client) record(channel string, err error, bookingID string) {
	if c.metrics != nil {
		c.metrics.NotificationSent(channel, err == nil)
	}
	if err != nil {
		c.log.Error("Failed to send %s notification for booking_id=%s: %v", channel, bookingID, err)
		return
	}
	c.log.Info("Sent %s notification for booking_id=%s", channel, bookingID)
}

func (c *Client) bookingParams(booking *domain.Booking, settings *domain.Settings) map[string]string {
	return map[string]string{
		"service_name":   orDefault(booking.ServiceName, "N/A"),
		"booking_dates":  formatDates(booking.Dates),
		"pet_name":       orDefault(booking.PetName, "N/A"),
		"pet_breed":      orDefault(booking.PetBreed, "Not specified"),
		"pet_count":      strconv.Itoa(petCount(booking)),
		"client_name":    orDefault(booking.OwnerName, "N/A"),
		"client_phone":   orDefault(booking.OwnerPhone, "N/A"),
		"client_email":   orDefault(booking.OwnerEmail, "N/A"),
		"notes":          orDefault(booking.Notes, "None"),
		"total_estimate": strconv.FormatFloat(booking.TotalEstimate, 'f', 2, 64),
		"price_per_day":  strconv.FormatFloat(booking.PricePerDay, 'f', -1, 64),
		"num_days":       strconv.Itoa(len(booking.Dates)),
		"owner_phone":    settings.Phone,
		"owner_email":    settings.Email,
		"submitted_at":   c.now().Format("1/2/2006, 3:04:05 PM"),
	}
}

func (c *Client) statusParams(booking *domain.Booking, settings *domain.Settings) map[string]string {
	return map[string]string{
		"status":         string(booking.Status),
		"service_name":   orDefault(booking.ServiceName, "N/A"),
		"booking_dates":  formatDates(booking.Dates),
		"pet_name":       orDefault(booking.PetName, "N/A"),
		"pet_breed":      orDefault(booking.PetBreed, "Not specified"),
		"pet_count":      strconv.Itoa(petCount(booking)),
		"client_name":    orDefault(booking.OwnerName, "N/A"),
		"client_email":   booking.OwnerEmail,
		"total_estimate": strconv.FormatFloat(booking.TotalEstimate, 'f', 2, 64),
		"owner_phone":    settings.Phone,
		"owner_email":    settings.Email,
		"owner_name":     orDefault(settings.OwnerName, "Ruff Lyfe Pet Services"),
		"venmo":          settings.Venmo,
		"zelle":          settings.Zelle,
	}
}

func formatDates(dates []string) string {
	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		t, err := engine.ParseDate(d)
		if err != nil {
			formatted = append(formatted, d)
			continue
		}
		formatted = append(formatted, t.Format(emailDateFormat))
	}
	return strings.Join(formatted, ", ")
}

func petCount(booking *domain.Booking) int {
	if booking.PetCount < 1 {
		return 1
	}
	return booking.PetCount
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
