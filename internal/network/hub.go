package network

import (
	"sync"

	"cloverfield-server/internal/metrics"
	"cloverfield-server/pkg/api"
	"cloverfield-server/pkg/logger"
)

// Broadcaster занимается только рассылкой сообщений подписчикам
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: SessionID -> Личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для сессии. Повторная регистрация закрывает старый канал.
func (b *Broadcaster) Register(sessionID string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[sessionID] = ch
	metrics.ConnectedClients.Set(float64(len(b.subscribers)))
	return ch
}

// Unregister удаляет подписчика, если ch все еще его канал.
// После переподключения с тем же токеном старое соединение не трогает новое.
func (b *Broadcaster) Unregister(sessionID string, ch chan api.ServerResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cur, ok := b.subscribers[sessionID]; ok && cur == ch {
		close(cur)
		delete(b.subscribers, sessionID)
	}
	metrics.ConnectedClients.Set(float64(len(b.subscribers)))
}

// SendTo отправляет сообщение конкретной сессии (Unicast)
func (b *Broadcaster) SendTo(sessionID string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		msg.SessionID = sessionID
		select {
		case ch <- msg:
		default:
			logger.Log.WithField("session", sessionID).Debug("Hub: channel full, dropping message")
		}
	}
}

// Broadcast отправляет всем. Медленные клиенты пропускают кадр.
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		personal := msg
		personal.SessionID = id
		select {
		case ch <- personal:
		default:
		}
	}
}

// HasSubscriber проверяет, подключена ли сессия
func (b *Broadcaster) HasSubscriber(sessionID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[sessionID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
