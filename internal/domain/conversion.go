package domain

import "time"

// EventName identifies a user action tracked through the relay.
type EventName string

const (
	EventLeadSubmitted   EventName = "lead-submitted"
	EventWhatsAppClicked EventName = "whatsapp-button-clicked"
	EventMessageSent     EventName = "message-sent"
)

// WireName maps an event to the name the ad platforms expect.
func (n EventName) WireName() string {
	switch n {
	case EventLeadSubmitted:
		return "Lead"
	case EventWhatsAppClicked:
		return "whatsapp_button"
	case EventMessageSent:
		return "sendWhatsappMessage"
	default:
		return string(n)
	}
}

// ActionSourceWebsite is the only action source this service emits.
const ActionSourceWebsite = "website"

// UserData carries the user-identifying attributes of a conversion
// event. HashedPhone and HashedEmail are SHA-256 digests; raw PII is
// never placed here.
type UserData struct {
	ClientIPAddress string `json:"client_ip_address,omitempty"`
	ClientUserAgent string `json:"client_user_agent,omitempty"`
	FBC             string `json:"fbc,omitempty"`
	FBP             string `json:"fbp,omitempty"`
	HashedPhone     string `json:"ph,omitempty"`
	HashedEmail     string `json:"em,omitempty"`
	HashedFirstName string `json:"fn,omitempty"`
}

// CustomData carries the non-identifying attributes of a conversion
// event.
type CustomData struct {
	ContentName     string  `json:"content_name,omitempty"`
	ContentCategory string  `json:"content_category,omitempty"`
	Service         string  `json:"service,omitempty"`
	Value           float64 `json:"value,omitempty"`
	Currency        string  `json:"currency,omitempty"`
}

// ConversionEvent is the normalized analytics record forwarded to the
// configured sinks. It is transient: built per request, never stored.
type ConversionEvent struct {
	ID             string     `json:"id"`
	Name           EventName  `json:"name"`
	EventTime      int64      `json:"eventTime"`
	ActionSource   string     `json:"actionSource"`
	EventSourceURL string     `json:"eventSourceUrl,omitempty"`
	UserData       UserData   `json:"userData"`
	CustomData     CustomData `json:"customData"`
}

// SinkResult is the outcome of delivering one event to one sink.
type SinkResult struct {
	Sink        string `json:"sink"`
	Delivered   bool   `json:"delivered"`
	StatusCode  int    `json:"statusCode,omitempty"`
	RawResponse string `json:"rawResponse,omitempty"`
	Error       string `json:"error,omitempty"`
}

// RelayResult aggregates the per-sink outcomes for one event.
// Delivered is true when at least one sink accepted the event.
type RelayResult struct {
	EventID   string       `json:"eventId"`
	EventName string       `json:"eventName"`
	Delivered bool         `json:"delivered"`
	Results   []SinkResult `json:"results"`
}

// DeliveryRecord is the cached trace of a successfully forwarded
// event, kept briefly for the admin diagnostics endpoint.
type DeliveryRecord struct {
	EventName   string    `json:"eventName"`
	Sink        string    `json:"sink"`
	DeliveredAt time.Time `json:"deliveredAt"`
}
