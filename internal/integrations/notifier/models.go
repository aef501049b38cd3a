package notifier

// Каналы уведомлений для метрик
const (
	ChannelPush  = "push"
	ChannelEmail = "email"
)

const (
	pushTagBooking = "booking"
	pushTagStatus  = "status"

	// Формат дат в письмах: "Sun, Mar 10"
	emailDateFormat = "Mon, Jan 2"
)

// PushMessage тело запроса к push вебхуку
type PushMessage struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tag   string `json:"tag"`
}

// EmailRequest тело запроса к EmailJS REST API
type EmailRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}
