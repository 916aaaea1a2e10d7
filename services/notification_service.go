package services

import (
	"fmt"
	"log"
	"os"
	"sync"

	"movecrm-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type NotificationService struct {
	client *twilio.RestClient
	from   string
}

var (
	notifier     *NotificationService
	notifierOnce sync.Once
)

// NewNotificationService builds a Twilio-backed sender. Returns nil when the
// Twilio credentials are not configured, in which case notifications are
// silently disabled.
func NewNotificationService() *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_PHONE_NUMBER")

	if accountSid == "" || authToken == "" || from == "" {
		return nil
	}

	return &NotificationService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

// NotifyOrderCompleted sends the client an SMS when their order is marked
// COMPLETED. Delivery failures are logged and never fail the order update.
func NotifyOrderCompleted(client *models.Client, order *models.Order) {
	notifierOnce.Do(func() {
		notifier = NewNotificationService()
	})
	if notifier == nil || client == nil || client.Phone == "" {
		return
	}

	message := fmt.Sprintf("Здравствуйте, %s! Ваш заказ %s выполнен. Спасибо, что выбрали нас.",
		client.Name, order.OrderNumber)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(client.Phone)
	params.SetFrom(notifier.from)
	params.SetBody(message)

	resp, err := notifier.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send completion SMS for order %s: %v", order.OrderNumber, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Completion SMS sent for order %s, SID: %s", order.OrderNumber, *resp.Sid)
	}
}
