package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newrayan/leads-service/environments"
	"github.com/newrayan/leads-service/internal/domain"
)

func metaTestConfig() environments.MetaConfig {
	return environments.MetaConfig{
		PixelID:     "1109395797414068",
		AccessToken: "test-token",
		APIVersion:  "v18.0",
		Timeout:     2 * time.Second,
	}
}

func TestMetaSink_SendsWirePayload(t *testing.T) {
	var gotPayload metaPayload
	var gotToken string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.URL.Query().Get("access_token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"events_received":1}`))
	}))
	defer server.Close()

	sink := NewMetaSink(metaTestConfig())
	sink.eventsURL = server.URL

	event := Normalize(EventInput{
		Name:           domain.EventLeadSubmitted,
		EventSourceURL: "https://clinic.example/landing",
		Phone:          "99123456",
		Service:        "teeth-whitening",
		ContentName:    "Dental Service Inquiry",
	})

	status, body, err := sink.Deliver(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "events_received")
	assert.Equal(t, "test-token", gotToken)

	require.Len(t, gotPayload.Data, 1)
	wireEvent := gotPayload.Data[0]
	assert.Equal(t, "Lead", wireEvent.EventName)
	assert.Equal(t, "website", wireEvent.ActionSource)
	assert.Equal(t, "https://clinic.example/landing", wireEvent.EventSourceURL)

	// Phone must arrive hashed, never raw.
	assert.Equal(t, HashPhone("99123456"), wireEvent.UserData.PH)
	require.NotNil(t, wireEvent.CustomData)
	assert.Equal(t, "teeth-whitening", wireEvent.CustomData.Service)
}

func TestMetaSink_IncludesTestEventCode(t *testing.T) {
	var gotPayload metaPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cfg := metaTestConfig()
	cfg.TestEventCode = "TEST12345"
	sink := NewMetaSink(cfg)
	sink.eventsURL = server.URL

	_, _, err := sink.Deliver(context.Background(), Normalize(EventInput{Name: domain.EventMessageSent}))

	require.NoError(t, err)
	assert.Equal(t, "TEST12345", gotPayload.TestEventCode)
}

func TestMetaSink_UnreachableEndpointReturnsError(t *testing.T) {
	sink := NewMetaSink(metaTestConfig())
	sink.eventsURL = "http://127.0.0.1:1/events"

	_, _, err := sink.Deliver(context.Background(), Normalize(EventInput{Name: domain.EventLeadSubmitted}))

	assert.Error(t, err)
}

func TestCRMSink_ForwardsNormalizedEvent(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("x-crm-auth-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sink := NewCRMSink(environments.CRMConfig{
		WebhookURL: server.URL,
		AuthKey:    "crm-secret",
		Timeout:    2 * time.Second,
	})

	status, _, err := sink.Deliver(context.Background(), Normalize(EventInput{
		Name:  domain.EventMessageSent,
		Phone: "99123456",
	}))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "crm-secret", gotAuth)
	assert.Equal(t, "sendWhatsappMessage", gotBody["event_name"])

	userData, ok := gotBody["user_data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, HashPhone("99123456"), userData["ph"])
}
