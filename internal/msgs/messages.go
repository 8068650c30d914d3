package msgs

const (
	MsgOperationSuccessful = "operation successful"
	MsgOperationFailed     = "operation failed"
	MsgYouMustLoginFirst   = "you must login first"
	MsgMessageSent         = "message sent"
	MsgMessageNotSent      = "message not sent, try again"
	MsgNothingToSend       = "nothing to send"
)
