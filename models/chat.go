package models

// ChatRequest is the body of a student chat message.
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatReply is what the chat endpoint sends back. Books carries direct
// search hits or fallback suggestions depending on Type.
type ChatReply struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Books   []Book `json:"books,omitempty"`
}

const (
	ChatReplyFound      = "found"
	ChatReplySuggestion = "suggestion"
	ChatReplyNoMatch    = "no_match"
)

// UserRequest is one recorded chat query, kept per session in the
// activity cache.
type UserRequest struct {
	Method string `json:"method"`
	Route  string `json:"route"`
	Query  string `json:"query"`
}
