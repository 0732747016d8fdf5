// Package clients provides an HTTP client for the fee recipient registry API.
//
// RegistryClient wraps the three registry operations and the healthcheck:
//
//	c := clients.NewRegistryClient("http://127.0.0.1:3000")
//	if err := c.SetPayoutAddress(ctx, key, address); err != nil {
//		return err
//	}
//	address, err := c.GetPayoutAddress(ctx, key)
//	if errors.Is(err, clients.ErrNotFound) {
//		// no payout address registered
//	}
//
// Non-200 responses other than 404 are returned as *StatusError carrying the
// server's message, such as a validation failure, 408 on timeout or 503 when
// the server is shedding load.
package clients
