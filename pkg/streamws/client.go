// Package streamws provides a reconnecting WebSocket subscription client
// shared by the exchange trade feed and the indexing-service candle feed.
package streamws

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Client handles a WebSocket connection to one feed and message routing.
// Reconnection and resubscription are owned here so that downstream
// ingestion only ever sees idempotent message redelivery.
type Client struct {
	url     string
	topics  []string
	conn    *websocket.Conn
	handler func([]byte)
	logger  *zap.Logger
}

// NewClient creates a WebSocket client for the given URL and subscription topics.
func NewClient(url string, topics []string, logger *zap.Logger) *Client {
	return &Client{
		url:    url,
		topics: topics,
		logger: logger,
	}
}

// SetMessageHandler sets the function to handle incoming messages.
func (c *Client) SetMessageHandler(h func([]byte)) {
	c.handler = h
}

// Connect establishes the WebSocket connection and subscribes to the
// configured topics. It does not start the listener.
func (c *Client) Connect() error {
	conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		c.logger.Error("Failed to connect to WebSocket", zap.String("url", c.url), zap.Error(err))
		return err
	}
	c.conn = conn
	c.logger.Info("WebSocket connected", zap.String("url", c.url), zap.Strings("topics", c.topics))

	return c.subscribe()
}

// Listen reads messages until the connection fails, then retries the
// reconnect-and-resubscribe path indefinitely before resuming.
func (c *Client) Listen() {
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			c.logger.Error("WebSocket read error", zap.String("url", c.url), zap.Error(err))

			for {
				time.Sleep(3 * time.Second)
				if err := c.reconnectAndResubscribe(); err != nil {
					c.logger.Warn("Retrying reconnect...", zap.String("url", c.url))
					continue
				}
				c.logger.Info("Reconnected successfully", zap.String("url", c.url))
				break
			}
			continue // Start listening again with the new connection
		}

		if c.handler != nil {
			c.handler(msg)
		}
	}
}

func (c *Client) subscribe() error {
	subMsg := map[string]interface{}{
		"op":   "subscribe",
		"args": c.topics,
	}
	if err := c.conn.WriteJSON(subMsg); err != nil {
		return fmt.Errorf("websocket subscribe failed: %w", err)
	}
	return nil
}

func (c *Client) reconnectAndResubscribe() error {
	newConn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		return err
	}

	// Close the old connection if it exists
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.conn = newConn

	return c.subscribe()
}
