package domain

// Типы сообщений
const (
	MsgInfo   = "INFO"
	MsgSpeech = "SPEECH"
	MsgError  = "ERROR"
	MsgSystem = "SYSTEM"
)

// MessageLifetime - сколько секунд сообщение висит на экране
const MessageLifetime = 3.0

// Message - текущее всплывающее сообщение. Новое сообщение заменяет старое.
type Message struct {
	Text string  `json:"text"`
	Type string  `json:"type"`
	TTL  float64 `json:"ttl"` // секунд до исчезновения
}

// Active - сообщение еще видно
func (m Message) Active() bool {
	return m.Text != "" && m.TTL > 0
}
