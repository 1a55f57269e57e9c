package models

// Message roles understood by the completion backend.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message represents a single chat message. Order within a conversation is
// semantically significant: system instructions first, then layered user
// context.
type Message struct {
	Role    string `json:"role"` // "system", "user"
	Content string `json:"content"`
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}
