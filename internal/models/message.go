// internal/models/message.go
package models

// MessageType classifies a transient player notice for display styling.
type MessageType string

const (
	MessageSuccess MessageType = "success"
	MessageInfo    MessageType = "info"
	MessageWarning MessageType = "warning"
	MessageDanger  MessageType = "danger"
)

// Message is one entry in a player's transient outbox. Messages accumulate
// until the player's state is read, at which point they are drained.
type Message struct {
	Type MessageType `json:"type"`
	Data string      `json:"data"`
}

func SuccessMessage(text string) Message { return Message{Type: MessageSuccess, Data: text} }
func InfoMessage(text string) Message    { return Message{Type: MessageInfo, Data: text} }
func WarningMessage(text string) Message { return Message{Type: MessageWarning, Data: text} }
func DangerMessage(text string) Message  { return Message{Type: MessageDanger, Data: text} }
