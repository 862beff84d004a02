package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/newrayan/leads-service/internal/domain"
	"github.com/newrayan/leads-service/internal/relay"
	"github.com/newrayan/leads-service/pkg/redis"
	"github.com/newrayan/leads-service/pkg/response"
)

// ConversionHandler exposes the relay endpoints. The relay is a
// pass-through, not a durable sink: callers get a 200 even when a
// downstream platform rejects the event.
//
// Client telemetry fans out to every sink; CRM-inbound batches go
// through metaRelay only, never back to the CRM that sent them.
type ConversionHandler struct {
	relay     *relay.Relay
	metaRelay *relay.Relay
	cache     *redis.Client
}

func NewConversionHandler(eventRelay, metaRelay *relay.Relay, cache *redis.Client) *ConversionHandler {
	return &ConversionHandler{relay: eventRelay, metaRelay: metaRelay, cache: cache}
}

// ConversionEventRequest is raw client-side telemetry.
type ConversionEventRequest struct {
	Event     string  `json:"event"`
	URL       string  `json:"url"`
	UserAgent string  `json:"userAgent"`
	FBC       string  `json:"fbc"`
	FBP       string  `json:"fbp"`
	Value     float64 `json:"value"`
	Currency  string  `json:"currency"`

	FormData *struct {
		Name            string `json:"name"`
		PhoneNumber     string `json:"phoneNumber"`
		Email           string `json:"email"`
		SelectedService string `json:"selectedService"`
	} `json:"formData"`
}

// knownEvents is the closed set of client telemetry actions. Names
// outside it are rejected, not coerced to a default event.
var knownEvents = map[string]domain.EventName{
	string(domain.EventLeadSubmitted):   domain.EventLeadSubmitted,
	string(domain.EventWhatsAppClicked): domain.EventWhatsAppClicked,
	string(domain.EventMessageSent):     domain.EventMessageSent,
}

// ForwardEvent godoc
// @Summary Forward a conversion event
// @Description Normalizes raw client telemetry and relays it to the configured ad platforms; best-effort, downstream failures only show up in the result
// @Tags conversion-events
// @Accept json
// @Produce json
// @Param event body ConversionEventRequest true "Client telemetry"
// @Success 200 {object} map[string]any
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/conversion-events [post]
func (h *ConversionHandler) ForwardEvent(c echo.Context) error {
	var req ConversionEventRequest
	if err := c.Bind(&req); err != nil {
		// Malformed input is the one failure this endpoint reports.
		return response.InternalServerError(c, err)
	}

	eventName, ok := knownEvents[req.Event]
	if !ok {
		return response.InternalServerError(c, fmt.Errorf("unknown event %q", req.Event))
	}

	input := relay.EventInput{
		Name:           eventName,
		EventSourceURL: req.URL,
		ClientIP:       c.RealIP(),
		UserAgent:      req.UserAgent,
		FBC:            req.FBC,
		FBP:            req.FBP,
		Value:          req.Value,
		Currency:       req.Currency,
	}

	if req.FormData != nil {
		input.Phone = req.FormData.PhoneNumber
		input.Email = req.FormData.Email
		input.FirstName = req.FormData.Name
		input.Service = req.FormData.SelectedService
		input.ContentName = "Dental Service Inquiry"
		input.ContentCategory = "dental_services"
	}

	result := h.relay.Forward(c.Request().Context(), input)

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"result":  result,
	})
}

// crmWebhookEvent is one event in a CRM-forwarded batch. event_time
// arrives as a string (the CRM templating emits it that way).
type crmWebhookEvent struct {
	EventName    string `json:"event_name"`
	EventTime    string `json:"event_time"`
	ActionSource string `json:"action_source"`
	UserData     struct {
		Phone string `json:"phone"`
		Email string `json:"email"`
		FBC   string `json:"fbc"`
		FBP   string `json:"fbp"`
	} `json:"user_data"`
	CustomData struct {
		ContentName string  `json:"content_name"`
		Value       float64 `json:"value"`
		Currency    string  `json:"currency"`
	} `json:"custom_data"`
}

type crmWebhookRequest struct {
	Data []crmWebhookEvent `json:"data"`
}

// CRMWebhook godoc
// @Summary CRM conversion webhook
// @Description Accepts a batch of CRM-forwarded conversion events and relays each to the Meta Conversions API
// @Tags conversion-events
// @Accept json
// @Produce json
// @Param batch body crmWebhookRequest true "CRM event batch"
// @Success 200 {object} map[string]any
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/crm-webhook [post]
func (h *ConversionHandler) CRMWebhook(c echo.Context) error {
	var req crmWebhookRequest
	if err := c.Bind(&req); err != nil {
		return response.InternalServerError(c, err)
	}

	results := make([]domain.RelayResult, 0, len(req.Data))
	for _, event := range req.Data {
		eventTime, err := strconv.ParseInt(event.EventTime, 10, 64)
		if err != nil {
			eventTime = 0 // relay stamps "now"
		}

		results = append(results, h.metaRelay.Forward(c.Request().Context(), relay.EventInput{
			Name:        domain.EventName(event.EventName),
			EventTime:   eventTime,
			Phone:       event.UserData.Phone,
			Email:       event.UserData.Email,
			FBC:         event.UserData.FBC,
			FBP:         event.UserData.FBP,
			ContentName: event.CustomData.ContentName,
			Value:       event.CustomData.Value,
			Currency:    event.CustomData.Currency,
		}))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Processed %d events", len(results)),
		"results": results,
	})
}

// CRMWebhookInfo godoc
// @Summary CRM webhook usage
// @Description Describes the payload the CRM webhook expects; shown when the endpoint is opened in a browser
// @Tags conversion-events
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/v1/crm-webhook [get]
func (h *ConversionHandler) CRMWebhookInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message":     "CRM Conversion Webhook Endpoint",
		"description": "Accepts POST requests from the CRM to forward conversion data to the configured ad platforms",
		"methods":     []string{"POST"},
		"expectedPayload": map[string]any{
			"data": []map[string]any{{
				"event_name":    "WhatsAppMessageSent",
				"event_time":    "unix_timestamp",
				"action_source": "website",
				"user_data": map[string]string{
					"phone": "user_phone",
					"email": "user_email",
					"fbc":   "facebook_click_id",
					"fbp":   "facebook_browser_id",
				},
				"custom_data": map[string]any{
					"content_name": "WhatsApp Lead",
					"value":        1.0,
					"currency":     "USD",
				},
			}},
		},
		"status": "active",
	})
}

// RecentDeliveries godoc
// @Summary Recently forwarded events
// @Description Returns the delivery traces still in the cache window
// @Tags conversion-events
// @Produce json
// @Param x-admin-api-key header string true "Admin API key"
// @Success 200 {object} response.SuccessResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/conversion-events/recent [get]
func (h *ConversionHandler) RecentDeliveries(c echo.Context) error {
	if h.cache == nil {
		return response.InternalServerError(c, fmt.Errorf("delivery cache not configured"))
	}

	deliveries, err := h.cache.GetRecentDeliveries(c.Request().Context())
	if err != nil {
		return response.InternalServerError(c, err)
	}

	return response.Ok(c, deliveries)
}
