package model

const (
	MessageRoleAssistant   = "assistant"
	MessageRoleParticipant = "user"
)

// ChatMessage is one turn of an interview. Rows are immutable once written.
// CategoryIndex records which category the interview was on when the turn
// happened, which is what depth tracking counts.
type ChatMessage struct {
	ID            string `json:"id" db:"id"`
	SessionID     string `json:"session_id" db:"session_id"`
	Role          string `json:"role" db:"role"`
	Content       string `json:"content" db:"content"`
	Language      string `json:"language" db:"language"`
	CategoryIndex int    `json:"category_index" db:"category_index"`
	Ctime         int64  `json:"ctime" db:"ctime"`
}
