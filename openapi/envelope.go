package openapi

import (
	"bytes"
	"encoding/json"
	"strings"
)

// maxErrorBody bounds how much of a failed response is kept for diagnostics.
const maxErrorBody = 64 * 1024

var nullPayload = json.RawMessage("null")

// envelope is the wrapper around every response payload.
type envelope struct {
	TrackingID string          `json:"trackingId"`
	Status     string          `json:"status"`
	Payload    json.RawMessage `json:"payload"`
}

// decodeEnvelope classifies the HTTP status and unwraps the payload.
// A non-2xx status yields *APIError without decoding the payload; a success
// body without a payload key yields a JSON null payload.
func decodeEnvelope(status int, body []byte) (envelope, error) {
	if !successStatus(status) {
		return envelope{}, newAPIError(status, body)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, &MappingError{Target: "envelope", Err: err}
	}
	if len(env.Payload) == 0 {
		env.Payload = nullPayload
	}
	return env, nil
}

func successStatus(status int) bool {
	return status >= 200 && status <= 299
}

// trackingID extracts the tracking id of an envelope, or "" when body is
// not one.
func trackingID(body []byte) string {
	var env struct {
		TrackingID string `json:"trackingId"`
	}
	if json.Unmarshal(body, &env) != nil {
		return ""
	}
	return env.TrackingID
}

// newAPIError keeps a bounded copy of the body and, best effort, the fields
// of an error envelope.
func newAPIError(status int, body []byte) *APIError {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	apiErr := &APIError{
		StatusCode: status,
		Body:       strings.TrimSpace(string(body)),
	}

	var errEnv struct {
		TrackingID string `json:"trackingId"`
		Payload    struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"payload"`
	}
	if json.Unmarshal(bytes.TrimSpace(body), &errEnv) == nil {
		apiErr.TrackingID = errEnv.TrackingID
		apiErr.Message = errEnv.Payload.Message
		apiErr.Code = errEnv.Payload.Code
	}
	return apiErr
}
