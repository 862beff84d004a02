package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newrayan/leads-service/internal/domain"
	"github.com/newrayan/leads-service/internal/relay"
)

// recordingSink captures delivered events for assertions.
type recordingSink struct {
	name       string
	statusCode int
	err        error
	delivered  []domain.ConversionEvent
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Deliver(ctx context.Context, event domain.ConversionEvent) (int, string, error) {
	s.delivered = append(s.delivered, event)
	return s.statusCode, "", s.err
}

func newConversionHandler(sinks ...relay.Sink) *ConversionHandler {
	r := relay.New(nil, sinks...)
	return NewConversionHandler(r, r, nil)
}

func TestForwardEvent_RelaysAndReturns200(t *testing.T) {
	sink := &recordingSink{name: "meta", statusCode: 200}
	handler := newConversionHandler(sink)

	rec := doJSON(newEcho(), handler.ForwardEvent, http.MethodPost, "/api/v1/conversion-events",
		`{
			"event": "whatsapp-button-clicked",
			"url": "https://clinic.example/landing",
			"userAgent": "Mozilla/5.0",
			"fbc": "fb.1.123.abc",
			"formData": {"name": "Ahmed", "phoneNumber": "99123456"}
		}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool               `json:"success"`
		Result  domain.RelayResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.True(t, body.Result.Delivered)
	assert.Equal(t, "whatsapp_button", body.Result.EventName)

	require.Len(t, sink.delivered, 1)
	event := sink.delivered[0]
	assert.Equal(t, "https://clinic.example/landing", event.EventSourceURL)
	assert.Equal(t, "fb.1.123.abc", event.UserData.FBC)
	assert.Equal(t, relay.HashPhone("99123456"), event.UserData.HashedPhone)
	assert.NotContains(t, event.UserData.HashedPhone, "99123456")
}

func TestForwardEvent_DownstreamFailureStillReturns200(t *testing.T) {
	sink := &recordingSink{name: "meta", err: errors.New("connection refused")}
	handler := newConversionHandler(sink)

	rec := doJSON(newEcho(), handler.ForwardEvent, http.MethodPost, "/api/v1/conversion-events",
		`{"event": "lead-submitted"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool               `json:"success"`
		Result  domain.RelayResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.False(t, body.Result.Delivered)
	require.Len(t, body.Result.Results, 1)
	assert.Equal(t, "connection refused", body.Result.Results[0].Error)
}

func TestForwardEvent_MalformedBodyReturns500(t *testing.T) {
	handler := newConversionHandler(&recordingSink{name: "meta", statusCode: 200})

	rec := doJSON(newEcho(), handler.ForwardEvent, http.MethodPost, "/api/v1/conversion-events",
		`{"event":`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestForwardEvent_UnknownEventNameReturns500(t *testing.T) {
	sink := &recordingSink{name: "meta", statusCode: 200}
	handler := newConversionHandler(sink)

	rec := doJSON(newEcho(), handler.ForwardEvent, http.MethodPost, "/api/v1/conversion-events",
		`{"event": "page-scrolled"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, sink.delivered)
}

func TestCRMWebhook_ProcessesBatch(t *testing.T) {
	sink := &recordingSink{name: "meta", statusCode: 200}
	handler := newConversionHandler(sink)

	rec := doJSON(newEcho(), handler.CRMWebhook, http.MethodPost, "/api/v1/crm-webhook",
		`{
			"data": [
				{
					"event_name": "message-sent",
					"event_time": "1700000000",
					"user_data": {"phone": "99123456"},
					"custom_data": {"content_name": "WhatsApp Lead", "value": 1, "currency": "USD"}
				},
				{
					"event_name": "message-sent",
					"event_time": "not-a-number",
					"user_data": {"phone": "99123457"}
				}
			]
		}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Results []domain.RelayResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "Processed 2 events", body.Message)
	require.Len(t, body.Results, 2)

	require.Len(t, sink.delivered, 2)
	assert.Equal(t, int64(1700000000), sink.delivered[0].EventTime)
	// An unparseable timestamp falls back to server time.
	assert.NotZero(t, sink.delivered[1].EventTime)
}

func TestCRMWebhook_NeverEchoesBackToCRMSink(t *testing.T) {
	meta := &recordingSink{name: "meta-conversions-api", statusCode: 200}
	crm := &recordingSink{name: "crm-webhook", statusCode: 200}
	handler := NewConversionHandler(
		relay.New(nil, meta, crm),
		relay.New(nil, meta),
		nil,
	)

	rec := doJSON(newEcho(), handler.CRMWebhook, http.MethodPost, "/api/v1/crm-webhook",
		`{
			"data": [
				{"event_name": "message-sent", "event_time": "1700000000", "user_data": {"phone": "99123456"}},
				{"event_name": "message-sent", "event_time": "1700000060", "user_data": {"phone": "99123457"}}
			]
		}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, meta.delivered, 2)
	assert.Empty(t, crm.delivered, "CRM-inbound events must not return to the CRM sink")
}

func TestCRMWebhook_EmptyBatchReturns200(t *testing.T) {
	handler := newConversionHandler(&recordingSink{name: "meta", statusCode: 200})

	rec := doJSON(newEcho(), handler.CRMWebhook, http.MethodPost, "/api/v1/crm-webhook",
		`{"data": []}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Processed 0 events", body.Message)
}

func TestCRMWebhookInfo_DescribesExpectedPayload(t *testing.T) {
	handler := newConversionHandler()

	rec := doJSON(newEcho(), handler.CRMWebhookInfo, http.MethodGet, "/api/v1/crm-webhook", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "active", body["status"])
	assert.Contains(t, body, "expectedPayload")
}

func TestRecentDeliveries_NoCacheConfiguredReturns500(t *testing.T) {
	handler := NewConversionHandler(relay.New(nil), relay.New(nil), nil)

	rec := doJSON(newEcho(), handler.RecentDeliveries, http.MethodGet, "/api/v1/conversion-events/recent", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
