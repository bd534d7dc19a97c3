package model

import (
	"context"
	"net"
)

// SecurityLayer decides how the contacts API listens: TLS when certificates
// are configured, plaintext otherwise.
type SecurityLayer interface {
	Listen(network, addr string) (net.Listener, error)
}

// Server runs the contacts API until Stop is called or the listener fails.
// Stop must return once ctx is done even if in-flight calls remain.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
