package entities

// Intent is the purpose of a checkout.
type Intent string

const (
	IntentCapture   Intent = "CAPTURE"
	IntentAuthorize Intent = "AUTHORIZE"
	IntentLoan      Intent = "LOAN"
)

func (i Intent) Valid() bool {
	switch i {
	case IntentCapture, IntentAuthorize, IntentLoan:
		return true
	}
	return false
}

type Currency string

const (
	CurrencyGEL Currency = "GEL"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// CaptureMethod decides whether funds are captured at checkout or by a
// separate pre-auth completion call.
type CaptureMethod string

const (
	CaptureMethodAutomatic CaptureMethod = "AUTOMATIC"
	CaptureMethodManual    CaptureMethod = "MANUAL"
)

type IndustryType string

const (
	IndustryTypeEcommerce IndustryType = "ECOMMERCE"
)

// ErrorCode lists the HTTP-status-like codes iPay documents for error_code.
type ErrorCode int

const (
	ErrorCodeBadRequest           ErrorCode = 400
	ErrorCodeUnauthorized         ErrorCode = 401
	ErrorCodeForbidden            ErrorCode = 403
	ErrorCodeMethodNotAllowed     ErrorCode = 405
	ErrorCodeMethodNotAcceptable  ErrorCode = 406
	ErrorCodeUnsupportedMediaType ErrorCode = 415
)

func (c ErrorCode) Known() bool {
	switch c {
	case ErrorCodeBadRequest, ErrorCodeUnauthorized, ErrorCodeForbidden,
		ErrorCodeMethodNotAllowed, ErrorCodeMethodNotAcceptable, ErrorCodeUnsupportedMediaType:
		return true
	}
	return false
}
