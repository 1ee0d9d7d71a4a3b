package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// SSEHub fans ingested client error reports out to admin dashboards
// over Server-Sent Events. Subscriptions are per severity, with "all"
// receiving everything.
type SSEHub struct {
	clients map[string]map[chan []byte]bool
	mu      sync.RWMutex
}

// SubscribeAll receives every error regardless of severity
const SubscribeAll = "all"

// NewSSEHub creates a new SSE hub
func NewSSEHub() *SSEHub {
	return &SSEHub{
		clients: make(map[string]map[chan []byte]bool),
	}
}

// RegisterClient registers a new SSE client for a severity stream
func (h *SSEHub) RegisterClient(severity string) chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	clientChan := make(chan []byte, 10) // Buffer size 10

	if h.clients[severity] == nil {
		h.clients[severity] = make(map[chan []byte]bool)
	}
	h.clients[severity][clientChan] = true

	logrus.Infof("SSE client registered for %s errors (total clients: %d)", severity, len(h.clients[severity]))
	return clientChan
}

// UnregisterClient unregisters an SSE client
func (h *SSEHub) UnregisterClient(severity string, clientChan chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[severity] != nil {
		delete(h.clients[severity], clientChan)
		close(clientChan)

		if len(h.clients[severity]) == 0 {
			delete(h.clients, severity)
		}
	}

	logrus.Infof("SSE client unregistered for %s errors (remaining clients: %d)", severity, len(h.clients[severity]))
}

// BroadcastError broadcasts a stored client error to subscribed dashboards
func (h *SSEHub) BroadcastError(errorLog *models.ClientErrorLog) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	h.broadcastToKeyLocked(errorLog.Severity, errorLog, h.clients[errorLog.Severity])
	h.broadcastToKeyLocked(SubscribeAll, errorLog, h.clients[SubscribeAll])
}

// broadcastToKeyLocked sends an error to clients (assumes lock is already held)
func (h *SSEHub) broadcastToKeyLocked(key string, errorLog *models.ClientErrorLog, clients map[chan []byte]bool) {
	if len(clients) == 0 {
		return
	}

	payload, err := json.Marshal(errorLog)
	if err != nil {
		logrus.Errorf("Failed to marshal error log for SSE: %v", err)
		return
	}

	message := fmt.Sprintf("event: client_error\ndata: %s\n\n", string(payload))

	// Send to all clients (non-blocking)
	for clientChan := range clients {
		select {
		case clientChan <- []byte(message):
		default:
			// Channel is full, skip this client
			logrus.Warnf("SSE client channel full, skipping: %s", key)
		}
	}
}

// GetClientCount returns the number of clients on a severity stream
func (h *SSEHub) GetClientCount(severity string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, exists := h.clients[severity]; exists {
		return len(clients)
	}
	return 0
}
