package middleware

import (
	"net"
	"net/http"
	"net/netip"

	"github.com/labstack/echo/v4"
)

// LocalOnly rejects requests that do not come from the facility network.
// Loopback peers are always allowed; extra networks are given in CIDR form.
// The peer address is taken from the connection, never from forwarding
// headers.
func LocalOnly(networks ...string) (echo.MiddlewareFunc, error) {
	prefixes := make([]netip.Prefix, 0, len(networks))
	for _, n := range networks {
		p, err := netip.ParsePrefix(n)
		if err != nil {
			return nil, err
		}
		prefixes = append(prefixes, p)
	}

	allowed := func(remote string) bool {
		host, _, err := net.SplitHostPort(remote)
		if err != nil {
			host = remote
		}
		addr, err := netip.ParseAddr(host)
		if err != nil {
			return false
		}
		addr = addr.Unmap()
		if addr.IsLoopback() {
			return true
		}
		for _, p := range prefixes {
			if p.Contains(addr) {
				return true
			}
		}
		return false
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !allowed(c.Request().RemoteAddr) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}, nil
}
