package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody   = Error("invalid request body")
	ErrInvalidParams        = Error("invalid params")
	ErrUnauthorized         = Error("unauthorized")
	ErrConversationNotFound = Error("conversation not found")
	ErrSelfConversation     = Error("sender and receiver are the same participant")
	ErrEmptyParticipant     = Error("participant id is empty")
)
