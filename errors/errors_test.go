package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestLookup_KnownCode(t *testing.T) {
	if got := Lookup("invalid_auth"); got != ErrCodeInvalidAuth {
		t.Errorf("Lookup(invalid_auth) = %q, want %q", got, ErrCodeInvalidAuth)
	}
	if got := Lookup("channel_not_found"); got != ErrCodeChannelNotFound {
		t.Errorf("Lookup(channel_not_found) = %q, want %q", got, ErrCodeChannelNotFound)
	}
}

func TestLookup_UnknownCode(t *testing.T) {
	for _, s := range []string{"not_a_real_code", "", "INVALID_AUTH",
		"too_many_requests", "client_network_error", "client_json_error", "unknown_http_error"} {
		if got := Lookup(s); got != ErrCodeUnknown {
			t.Errorf("Lookup(%q) = %q, want %q", s, got, ErrCodeUnknown)
		}
	}
}

func TestServer_MapsCode(t *testing.T) {
	err := Server("not_authed")
	if err.Code != ErrCodeNotAuthed {
		t.Errorf("expected not_authed, got %s", err.Code)
	}
	if err.StatusCode != 200 {
		t.Errorf("expected status 200, got %d", err.StatusCode)
	}

	unknown := Server("")
	if unknown.Code != ErrCodeUnknown {
		t.Errorf("expected unknown_error for empty code, got %s", unknown.Code)
	}
}

func TestError_Is_MatchesByCode(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Server("invalid_auth"))
	if !stderrors.Is(err, New(ErrCodeInvalidAuth)) {
		t.Error("expected errors.Is to match on code")
	}
	if stderrors.Is(err, New(ErrCodeNotAuthed)) {
		t.Error("expected errors.Is not to match a different code")
	}
}

func TestError_Format(t *testing.T) {
	cause := fmt.Errorf("dial tcp: refused")
	s := ClientNetwork(cause).Error()
	if !strings.Contains(s, "client_network_error") {
		t.Errorf("expected code in %q", s)
	}
	if !strings.Contains(s, "refused") {
		t.Errorf("expected cause in %q", s)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	if ClientNetwork(cause).Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
	if New(ErrCodeUnknown).Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"slack error", TooManyRequests(0), ErrCodeTooManyRequests},
		{"wrapped", fmt.Errorf("x: %w", ClientJSON(200, nil)), ErrCodeClientJSON},
		{"foreign", fmt.Errorf("plain"), ErrCodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		err       *Error
		retryable bool
	}{
		{ClientNetwork(nil), true},
		{TooManyRequests(time.Second), true},
		{Server("rate_limited"), true},
		{Server("invalid_auth"), false},
		{ClientJSON(200, nil), false},
		{New(ErrCodeUnknown), false},
	}
	for _, tt := range tests {
		if got := tt.err.Retryable(); got != tt.retryable {
			t.Errorf("%s: Retryable() = %v, want %v", tt.err.Code, got, tt.retryable)
		}
		if got := IsRetryable(tt.err); got != tt.retryable {
			t.Errorf("%s: IsRetryable() = %v, want %v", tt.err.Code, got, tt.retryable)
		}
	}
}

func TestTooManyRequests_CarriesRetryAfter(t *testing.T) {
	err := TooManyRequests(30 * time.Second)
	if err.StatusCode != 429 {
		t.Errorf("expected 429, got %d", err.StatusCode)
	}
	if err.RetryAfter != 30*time.Second {
		t.Errorf("expected 30s, got %v", err.RetryAfter)
	}
}

func TestWithDetail_NilMap(t *testing.T) {
	err := InvalidConfig("bad").WithDetail("field", "base_url")
	if err.Details["field"] != "base_url" {
		t.Errorf("expected field=base_url, got %v", err.Details["field"])
	}
}

func TestMissingField(t *testing.T) {
	err := MissingField("channel")
	if err.Code != ErrCodeClientJSON {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeClientJSON)
	}
	if !strings.Contains(err.Error(), `"channel"`) {
		t.Errorf("Error() = %q, want it to name the field", err.Error())
	}
}

func TestServer_ClientKindIsNotRetryable(t *testing.T) {
	err := Server("too_many_requests")
	if err.Code != ErrCodeUnknown {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeUnknown)
	}
	if err.Retryable() {
		t.Error("a server-sent too_many_requests string must not be retryable")
	}
}
