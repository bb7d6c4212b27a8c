package platform

import (
	"fmt"
	"net/url"
	"strings"
)

// ShareLinkParam is the query parameter carrying the shared source link
const ShareLinkParam = "url"

// ParseShareLink extracts the percent-encoded source link from an inbound
// deep link (e.g. linksaver://add?url=https%3A%2F%2Fx.test%2Fp) and returns
// both the raw encoded value and its single-pass decoding. The encoded value
// is what callers should use for duplicate-delivery detection.
func ParseShareLink(raw string) (encoded, decoded string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", fmt.Errorf("parse share link: %w", err)
	}

	encoded = rawQueryValue(u.RawQuery, ShareLinkParam)
	if encoded == "" {
		return "", "", fmt.Errorf("share link has no %q parameter", ShareLinkParam)
	}

	// Decode exactly once. Query().Get would also decode once, but working
	// from the raw value keeps the encoded form available for the
	// idempotency guard.
	decoded, err = url.QueryUnescape(encoded)
	if err != nil {
		return "", "", fmt.Errorf("decode share link: %w", err)
	}
	return encoded, decoded, nil
}

// rawQueryValue returns the still-encoded value of key in a raw query string
func rawQueryValue(rawQuery, key string) string {
	for _, pair := range strings.Split(rawQuery, "&") {
		k, v, found := strings.Cut(pair, "=")
		if found && k == key {
			return v
		}
	}
	return ""
}
