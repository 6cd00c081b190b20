package entities

import "fmt"

// GatewayError is a hard iPay failure: an error response carrying error_code.
// Code is HTTP-status-like and is meant to become the status of the calling
// request.
type GatewayError struct {
	Code    int
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("ipay gateway error: code=%d message=%q", e.Code, e.Message)
}

// HTTPStatus falls back to 502 when the code is not a usable HTTP status.
func (e *GatewayError) HTTPStatus() int {
	if e.Code < 400 || e.Code > 599 {
		return 502
	}
	return e.Code
}
