package relay

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/newrayan/leads-service/environments"
	"github.com/newrayan/leads-service/internal/domain"
)

// metaEvent is the Conversions API wire shape for one event.
type metaEvent struct {
	EventName      string          `json:"event_name"`
	EventTime      int64           `json:"event_time"`
	ActionSource   string          `json:"action_source"`
	EventSourceURL string          `json:"event_source_url,omitempty"`
	UserData       metaUserData    `json:"user_data"`
	CustomData     *metaCustomData `json:"custom_data,omitempty"`
}

type metaUserData struct {
	ClientIPAddress string `json:"client_ip_address,omitempty"`
	ClientUserAgent string `json:"client_user_agent,omitempty"`
	FBC             string `json:"fbc,omitempty"`
	FBP             string `json:"fbp,omitempty"`
	PH              string `json:"ph,omitempty"`
	EM              string `json:"em,omitempty"`
	FN              string `json:"fn,omitempty"`
}

type metaCustomData struct {
	ContentName     string  `json:"content_name,omitempty"`
	ContentCategory string  `json:"content_category,omitempty"`
	Service         string  `json:"service,omitempty"`
	Value           float64 `json:"value,omitempty"`
	Currency        string  `json:"currency,omitempty"`
}

type metaPayload struct {
	Data          []metaEvent `json:"data"`
	TestEventCode string      `json:"test_event_code,omitempty"`
}

// MetaSink posts events to the Meta Conversions API for one pixel.
type MetaSink struct {
	httpClient    *resty.Client
	eventsURL     string
	accessToken   string
	testEventCode string
}

func NewMetaSink(cfg environments.MetaConfig) *MetaSink {
	// No transport retries: relay delivery is at-most-once.
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &MetaSink{
		httpClient:    client,
		eventsURL:     fmt.Sprintf("https://graph.facebook.com/%s/%s/events", cfg.APIVersion, cfg.PixelID),
		accessToken:   cfg.AccessToken,
		testEventCode: cfg.TestEventCode,
	}
}

func (s *MetaSink) Name() string {
	return "meta-conversions-api"
}

func (s *MetaSink) Deliver(ctx context.Context, event domain.ConversionEvent) (int, string, error) {
	payload := metaPayload{
		Data: []metaEvent{{
			EventName:      event.Name.WireName(),
			EventTime:      event.EventTime,
			ActionSource:   event.ActionSource,
			EventSourceURL: event.EventSourceURL,
			UserData: metaUserData{
				ClientIPAddress: event.UserData.ClientIPAddress,
				ClientUserAgent: event.UserData.ClientUserAgent,
				FBC:             event.UserData.FBC,
				FBP:             event.UserData.FBP,
				PH:              event.UserData.HashedPhone,
				EM:              event.UserData.HashedEmail,
				FN:              event.UserData.HashedFirstName,
			},
			CustomData: metaCustom(event.CustomData),
		}},
		TestEventCode: s.testEventCode,
	}

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParam("access_token", s.accessToken).
		SetBody(payload).
		Post(s.eventsURL)
	if err != nil {
		return 0, "", fmt.Errorf("failed to send request: %w", err)
	}

	return resp.StatusCode(), resp.String(), nil
}

func metaCustom(data domain.CustomData) *metaCustomData {
	if data == (domain.CustomData{}) {
		return nil
	}
	return &metaCustomData{
		ContentName:     data.ContentName,
		ContentCategory: data.ContentCategory,
		Service:         data.Service,
		Value:           data.Value,
		Currency:        data.Currency,
	}
}
