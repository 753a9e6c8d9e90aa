package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors maps the statuses the companion server produces itself.
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())
	if err, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", err, detail)
	}
	// anything else was forwarded from the provider, e.g. 401 or 429
	if detail == "" {
		detail = http.StatusText(code)
	}
	return fmt.Errorf("%w: http %d: %s", ErrUpstreamStatus, code, detail)
}

// errorDetail prefers the provider's {"error":{"message":...}} text over
// the raw body.
func errorDetail(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return strings.TrimSpace(string(body))
}
