package errors

import "fmt"

// TransportErrorData carries structured data for transport errors.
type TransportErrorData struct {
	Endpoint   string `json:"endpoint,omitempty"`
	Tool       string `json:"tool,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// TransportError wraps a network-level failure during a round trip.
// The failure is propagated as-is; the SDK never retries.
func TransportError(tool, endpoint string, cause error) EntrezError {
	message := fmt.Sprintf("e%s request failed", tool)

	return Wrap(
		cause,
		CodeTransportError,
		message,
		CategoryTransport,
		SeverityError,
	).WithData(&TransportErrorData{
		Endpoint: endpoint,
		Tool:     tool,
		Reason:   cause.Error(),
	})
}

// HTTPStatusError creates an error for a non-success HTTP status.
func HTTPStatusError(tool, endpoint string, status int) EntrezError {
	return New(
		CodeHTTPStatus,
		fmt.Sprintf("e%s returned HTTP %d", tool, status),
		CategoryTransport,
		SeverityError,
	).WithData(&TransportErrorData{
		Endpoint:   endpoint,
		Tool:       tool,
		StatusCode: status,
		Reason:     fmt.Sprintf("HTTP %d", status),
	})
}

// RequestBuildError wraps a failure to construct the outgoing request.
func RequestBuildError(tool string, cause error) EntrezError {
	return Wrap(
		cause,
		CodeRequestBuild,
		fmt.Sprintf("cannot build e%s request", tool),
		CategoryTransport,
		SeverityError,
	).WithData(&TransportErrorData{
		Tool:   tool,
		Reason: cause.Error(),
	})
}
