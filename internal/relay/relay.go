// Package relay forwards normalized conversion events to third-party
// ad and CRM endpoints. Delivery is best-effort and at-most-once: a
// failed delivery is logged and dropped, and no caller flow ever
// depends on the outcome.
package relay

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/newrayan/leads-service/internal/domain"
	"github.com/newrayan/leads-service/pkg/logger"
)

// Sink is one third-party destination. Implementations own their
// payload shape and transport.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, event domain.ConversionEvent) (statusCode int, body string, err error)
}

type deliveryCache interface {
	CacheDelivery(ctx context.Context, eventID string, record domain.DeliveryRecord) error
}

type Relay struct {
	sinks []Sink
	cache deliveryCache
}

// New builds a relay over the configured sinks. cache may be nil,
// in which case delivery traces are not recorded.
func New(cache deliveryCache, sinks ...Sink) *Relay {
	return &Relay{sinks: sinks, cache: cache}
}

// EventInput is a raw, unnormalized event as received from a client
// or built from a submission. PII fields carry raw values; they are
// hashed during normalization and never transmitted as-is.
type EventInput struct {
	Name           domain.EventName
	EventTime      int64
	EventSourceURL string

	ClientIP  string
	UserAgent string
	FBC       string
	FBP       string

	Phone     string
	Email     string
	FirstName string

	ContentName     string
	ContentCategory string
	Service         string
	Value           float64
	Currency        string
}

// Normalize turns the input into the transient ConversionEvent shape:
// server-assigned id, defaulted timestamp, constant action source,
// hashed PII.
func Normalize(in EventInput) domain.ConversionEvent {
	eventTime := in.EventTime
	if eventTime == 0 {
		eventTime = time.Now().Unix()
	}

	return domain.ConversionEvent{
		ID:             uuid.NewString(),
		Name:           in.Name,
		EventTime:      eventTime,
		ActionSource:   domain.ActionSourceWebsite,
		EventSourceURL: in.EventSourceURL,
		UserData: domain.UserData{
			ClientIPAddress: in.ClientIP,
			ClientUserAgent: in.UserAgent,
			FBC:             in.FBC,
			FBP:             in.FBP,
			HashedPhone:     HashPhone(in.Phone),
			HashedEmail:     HashPII(in.Email),
			HashedFirstName: HashPII(in.FirstName),
		},
		CustomData: domain.CustomData{
			ContentName:     in.ContentName,
			ContentCategory: in.ContentCategory,
			Service:         in.Service,
			Value:           in.Value,
			Currency:        in.Currency,
		},
	}
}

// Forward normalizes the input and delivers it to every configured
// sink. It never returns an error: per-sink failures are logged and
// reported in the result only.
func (r *Relay) Forward(ctx context.Context, in EventInput) domain.RelayResult {
	event := Normalize(in)

	result := domain.RelayResult{
		EventID:   event.ID,
		EventName: event.Name.WireName(),
		Results:   make([]domain.SinkResult, 0, len(r.sinks)),
	}

	if len(r.sinks) == 0 {
		logger.Warnf("No relay sinks configured, dropping event %s (%s)", event.ID, event.Name)
		return result
	}

	for _, sink := range r.sinks {
		sinkResult := r.deliver(ctx, sink, event)
		if sinkResult.Delivered {
			result.Delivered = true
		}
		result.Results = append(result.Results, sinkResult)
	}

	return result
}

func (r *Relay) deliver(ctx context.Context, sink Sink, event domain.ConversionEvent) domain.SinkResult {
	start := time.Now()

	status, body, err := sink.Deliver(ctx, event)

	sinkResult := domain.SinkResult{
		Sink:        sink.Name(),
		StatusCode:  status,
		RawResponse: body,
	}

	if err != nil {
		logger.Errorf("Relay delivery to %s failed for event %s (%s): %v",
			sink.Name(), event.ID, event.Name, err)
		sinkResult.Error = err.Error()
		return sinkResult
	}

	if status < 200 || status >= 300 {
		logger.Errorf("Relay delivery to %s rejected for event %s (%s): status %d, body: %s",
			sink.Name(), event.ID, event.Name, status, body)
		sinkResult.Error = "non-success status"
		return sinkResult
	}

	logger.Infof("Relay delivered event %s (%s) to %s in %v",
		event.ID, event.Name, sink.Name(), time.Since(start))
	sinkResult.Delivered = true

	if r.cache != nil {
		record := domain.DeliveryRecord{
			EventName:   event.Name.WireName(),
			Sink:        sink.Name(),
			DeliveredAt: time.Now(),
		}
		if cacheErr := r.cache.CacheDelivery(ctx, event.ID, record); cacheErr != nil {
			logger.Warnf("Failed to cache delivery of event %s: %v", event.ID, cacheErr)
		}
	}

	return sinkResult
}
