// ABOUTME: Logging transport for outbound HTTP requests
// ABOUTME: Logs method, URL, status and duration with the originating request ID

package standard

import (
	"net/http"
	"time"

	"pricewatch-api/core/interfaces"
	"pricewatch-api/pkg/requestid"
)

// LoggingTransport implements http.RoundTripper with logging
type LoggingTransport struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip logs the outgoing request and its outcome
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	fields := map[string]interface{}{
		"method": req.Method,
		"host":   req.URL.Host,
		"path":   req.URL.Path,
	}
	if id := requestid.FromContext(req.Context()); id != "" {
		fields["request_id"] = id
	}

	t.Logger.Debug("Outgoing HTTP request", fields)

	resp, err := t.Transport.RoundTrip(req)
	fields["duration_ms"] = time.Since(start).Milliseconds()

	if err != nil {
		fields["error"] = err.Error()
		t.Logger.Error("Outgoing HTTP request failed", fields)
		return nil, err
	}

	fields["status"] = resp.StatusCode
	t.Logger.Debug("Outgoing HTTP response", fields)

	return resp, nil
}
