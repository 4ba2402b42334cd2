package timesync

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/go-drift/clockface/pkg/errors"
)

// DefaultEndpoint is the internet time service queried at startup.
// The response shape is {"datetime": "<ISO-8601>"}.
const DefaultEndpoint = "http://worldtimeapi.org/api/ip"

// Fetch performs a single request against an internet time endpoint and
// returns the reported instant in the host's local time zone. There are
// no retries; any transport, status or parse failure is returned as an
// error for the caller to absorb.
func Fetch(endpoint string) (time.Time, error) {
	status, body, err := fasthttp.Get(nil, endpoint)
	if err != nil {
		return time.Time{}, fmt.Errorf("time endpoint request failed: %w", err)
	}
	if status != fasthttp.StatusOK {
		return time.Time{}, fmt.Errorf("time endpoint returned status %d", status)
	}

	var payload struct {
		Datetime string `json:"datetime"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return time.Time{}, fmt.Errorf("malformed time response: %w", err)
	}
	if payload.Datetime == "" {
		return time.Time{}, fmt.Errorf("time response missing datetime field")
	}

	t, err := time.Parse(time.RFC3339Nano, payload.Datetime)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed datetime %q: %w", payload.Datetime, err)
	}
	return t.Local(), nil
}

// Acquire establishes the startup time reference. It attempts one network
// fetch; on any failure it reports a warning and falls back to the given
// clock. The failure never reaches the caller.
func Acquire(endpoint string, clock Clock) *Reference {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	t, err := Fetch(endpoint)
	if err != nil {
		errors.Report(&errors.Error{
			Op:   "timesync.Acquire",
			Kind: errors.KindTimeSync,
			Err:  err,
		})
		return NewReference(clock.Now())
	}
	return NewReference(t)
}
