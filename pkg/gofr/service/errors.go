package service

import "github.com/pkg/errors"

// ErrCircuitOpen is returned without calling the service while its circuit breaker is open.
var ErrCircuitOpen = errors.New("unable to connect to server at host")

// wrapRequestError adds the method and address of the failed call to err. The cause stays reachable
// through errors.Is and errors.Cause.
func wrapRequestError(err error, method, uri string) error {
	return errors.Wrapf(err, "%s %s", method, uri)
}
