package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/newrayan/leads-service/environments"
	"github.com/newrayan/leads-service/internal/domain"
	"github.com/newrayan/leads-service/pkg/logger"
)

type Client struct {
	client valkey.Client
}

const (
	deliveryKeyPrefix = "relay_delivery:"
	deliveryTTL       = 24 * time.Hour
)

func NewRedisClient(cfg environments.RedisConfig) (*Client, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)},
		Password:    cfg.Password,
		SelectDB:    cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Valkey client: %w", err)
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Infof("Connected to Redis (via Valkey client)")

	return &Client{client: client}, nil
}

// CacheDelivery records a successful relay delivery under a TTL key.
// The cache is a diagnostic trace, not a durable sink.
func (c *Client) CacheDelivery(ctx context.Context, eventID string, record domain.DeliveryRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery record: %w", err)
	}

	key := deliveryKeyPrefix + eventID

	err = c.client.Do(ctx, c.client.B().Set().Key(key).Value(string(data)).Ex(deliveryTTL).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to cache delivery: %w", err)
	}

	logger.Debugf("Cached delivery of event %s via %s", eventID, record.Sink)

	return nil
}

// GetRecentDeliveries returns every delivery record still within its
// TTL, keyed by event id.
func (c *Client) GetRecentDeliveries(ctx context.Context) (map[string]*domain.DeliveryRecord, error) {
	pattern := deliveryKeyPrefix + "*"

	var keys []string
	var cursor uint64
	for {
		result := c.client.Do(ctx, c.client.B().Scan().Cursor(cursor).Match(pattern).Count(100).Build())
		if result.Error() != nil {
			return nil, fmt.Errorf("failed to scan delivery keys: %w", result.Error())
		}

		scanResult, err := result.AsScanEntry()
		if err != nil {
			return nil, fmt.Errorf("failed to parse scan result: %w", err)
		}

		keys = append(keys, scanResult.Elements...)
		cursor = scanResult.Cursor

		if cursor == 0 {
			break
		}
	}

	deliveries := make(map[string]*domain.DeliveryRecord)

	for _, key := range keys {
		getResult := c.client.Do(ctx, c.client.B().Get().Key(key).Build())
		if getResult.Error() != nil {
			continue
		}

		data, err := getResult.ToString()
		if err != nil {
			continue
		}

		var record domain.DeliveryRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			logger.Warnf("failed to unmarshal delivery record for key %q: %v", key, err)
			continue
		}

		deliveries[key[len(deliveryKeyPrefix):]] = &record
	}

	return deliveries, nil
}

func (c *Client) Close() error {
	c.client.Close()
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Do(ctx, c.client.B().Ping().Build()).Error()
}
