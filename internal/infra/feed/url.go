package feed

import (
	"fmt"
	"net"
	"net/url"
)

// ValidateURL accepts absolute http(s) URLs. With denyPrivate set, hosts
// resolving to loopback, private or link-local addresses are rejected.
func ValidateURL(raw string, denyPrivate bool) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q", ErrInvalidURL, u.Scheme)
	}
	host := u.Hostname()
	if host == "" {
		return nil, fmt.Errorf("%w: empty host", ErrInvalidURL)
	}
	if !denyPrivate {
		return u, nil
	}

	ips, err := net.LookupIP(host)
	if err != nil {
		return nil, fmt.Errorf("%w: lookup %s: %v", ErrInvalidURL, host, err)
	}
	for _, ip := range ips {
		if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
			return nil, fmt.Errorf("%w: %s -> %s", ErrPrivateIP, host, ip)
		}
	}
	return u, nil
}
