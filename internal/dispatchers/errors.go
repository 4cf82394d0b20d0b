package dispatchers

import (
	"fmt"

	"notify-digest/internal/shared/svcerrors"
)

// DeliveryClient errors
const (
	codeEndpointNotConfigured = "DLV_1000"

	codeTransportFailed       = "DLV_9000"
	codeAcknowledgmentInvalid = "DLV_9001"
	codeInternalEncodeFailed  = "DLV_9002"
)

// errEndpointNotConfigured returns an error when no sink URL is set; nothing is sent.
func errEndpointNotConfigured() *svcerrors.ServiceError {
	return svcerrors.NewFailedPreconditionError(codeEndpointNotConfigured, "no endpoint_url configured", nil)
}

// errTransportFailed returns an error for network, DNS or timeout failures.
func errTransportFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeTransportFailed, "sink request failed", cause)
}

// errAcknowledgmentInvalid returns an error when the sink answered with anything but the acknowledgment literal.
func errAcknowledgmentInvalid(status int, body string) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeAcknowledgmentInvalid, "sink did not acknowledge dispatch",
		fmt.Errorf("status=%d body=%q", status, body))
}

// errInternalEncodeFailed returns an error when the payload cannot be encoded or the request built.
func errInternalEncodeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEncodeFailed, fmt.Errorf("dispatchEncodeFailed: %w", cause))
}
