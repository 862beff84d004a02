package relay

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/newrayan/leads-service/environments"
	"github.com/newrayan/leads-service/internal/domain"
)

// CRMSink forwards the normalized event to a generic CRM webhook
// (GoHighLevel-style). The payload mirrors the normalized shape; PII
// is already hashed by the relay before it reaches any sink.
type CRMSink struct {
	httpClient *resty.Client
	webhookURL string
}

func NewCRMSink(cfg environments.CRMConfig) *CRMSink {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.AuthKey != "" {
		client.SetHeader("x-crm-auth-key", cfg.AuthKey)
	}

	return &CRMSink{
		httpClient: client,
		webhookURL: cfg.WebhookURL,
	}
}

func (s *CRMSink) Name() string {
	return "crm-webhook"
}

func (s *CRMSink) Deliver(ctx context.Context, event domain.ConversionEvent) (int, string, error) {
	payload := map[string]any{
		"event_name":    event.Name.WireName(),
		"event_time":    event.EventTime,
		"action_source": event.ActionSource,
		"user_data":     event.UserData,
		"custom_data":   event.CustomData,
	}

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(s.webhookURL)
	if err != nil {
		return 0, "", fmt.Errorf("failed to send request: %w", err)
	}

	return resp.StatusCode(), resp.String(), nil
}
