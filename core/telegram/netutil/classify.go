package netutil

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"
)

// Error kinds reported in the error_kind log field.
const (
	KindTimeout = "timeout"
	KindDNS     = "dns"
	KindDial    = "dial"
	KindTLS     = "tls"
	KindHTTP4xx = "http_4xx"
	KindHTTP5xx = "http_5xx"
	KindUnknown = "unknown"
)

var tokenRe = regexp.MustCompile(`bot[0-9]+:[A-Za-z0-9_-]+`)

// Classify maps a delivery error onto a coarse error kind. A nil error yields "".
func Classify(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return KindTimeout
		}
		return KindDNS
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Op == "dial" {
			return KindDial
		}
		if opErr.Op == "read" || opErr.Op == "write" {
			if kind := Classify(opErr.Err); kind != KindUnknown {
				return kind
			}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil && !errors.Is(urlErr.Err, err) {
		if kind := Classify(urlErr.Err); kind != KindUnknown {
			return kind
		}
	}

	var alertErr tls.AlertError
	if errors.As(err, &alertErr) {
		return KindTLS
	}

	status := HTTPStatus(err)
	switch {
	case status >= 500:
		return KindHTTP5xx
	case status >= 400:
		return KindHTTP4xx
	}
	return KindUnknown
}

// HTTPStatus extracts the Bot API status code carried by err, or 0 when none is known.
func HTTPStatus(err error) int {
	if err == nil {
		return 0
	}

	var apiErr *tele.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var floodErr tele.FloodError
	if errors.As(err, &floodErr) {
		return http.StatusTooManyRequests
	}
	var groupErr tele.GroupError
	if errors.As(err, &groupErr) {
		return http.StatusBadRequest
	}

	// telebot renders unknown API errors as "telegram: <description> (<code>)".
	msg := err.Error()
	open := strings.LastIndex(msg, "(")
	closing := strings.LastIndex(msg, ")")
	if open >= 0 && closing > open+1 {
		if code, convErr := strconv.Atoi(strings.TrimSpace(msg[open+1 : closing])); convErr == nil {
			return code
		}
	}
	return 0
}

// SanitizeError renders err with any bot token redacted.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return RedactToken(err.Error())
}

// RedactToken replaces Bot API tokens embedded in URLs or messages.
func RedactToken(s string) string {
	return tokenRe.ReplaceAllString(s, "bot<redacted>")
}
