package auth

// MsgInvalidOrExpired is shared by the wrong-code and already-consumed
// cases: callers must not be able to tell them apart.
const MsgInvalidOrExpired = "गलत OTP या OTP समाप्त हो गया"

// FlowError classifies an authentication failure. Message carries the
// user-facing Hindi string; distinct kinds may share one message.
type FlowError struct {
	Kind    string
	Status  int
	Message string
}

func (e *FlowError) Error() string {
	return e.Kind + ": " + e.Message
}

var (
	ErrInvalidInput       = &FlowError{Kind: "invalid_input", Status: 400, Message: "कृपया मान्य 10 अंकों का फोन नंबर दर्ज करें"}
	ErrRateLimited        = &FlowError{Kind: "rate_limited", Status: 429, Message: "बहुत अधिक OTP अनुरोध, कृपया कुछ देर बाद प्रयास करें"}
	ErrDeliveryFailure    = &FlowError{Kind: "delivery_failure", Status: 500, Message: "OTP भेजने में विफल, कृपया पुनः प्रयास करें"}
	ErrCodeInvalid        = &FlowError{Kind: "code_invalid", Status: 400, Message: MsgInvalidOrExpired}
	ErrCodeConsumed       = &FlowError{Kind: "code_consumed", Status: 400, Message: MsgInvalidOrExpired}
	ErrCodeExpired        = &FlowError{Kind: "code_expired", Status: 400, Message: "OTP समाप्त हो गया"}
	ErrAccountExists      = &FlowError{Kind: "account_exists", Status: 400, Message: "यह फोन नंबर पहले से पंजीकृत है"}
	ErrAccountNotFound    = &FlowError{Kind: "account_not_found", Status: 400, Message: "यह फोन नंबर पंजीकृत नहीं है, कृपया साइन अप करें"}
	ErrInvalidCredentials = &FlowError{Kind: "invalid_credentials", Status: 401, Message: "गलत पासवर्ड"}
	ErrSessionExpired     = &FlowError{Kind: "session_expired", Status: 401, Message: "सत्र समाप्त हो गया, कृपया दोबारा लॉगिन करें"}
	ErrProvider           = &FlowError{Kind: "provider_error", Status: 500, Message: "कुछ गलत हो गया, कृपया पुनः प्रयास करें"}
)
