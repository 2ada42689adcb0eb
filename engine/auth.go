package engine

import (
	"errors"
)

// Authenticator verifies that the caller actually is the identity it claims
// to be. Verification is a deployment concern (sessions, signatures, mTLS);
// the engine only requires the capability. Ownership comparison against the
// stored auction record is a separate step performed by the manager itself.
type Authenticator interface {
	RequireAuth(identity string) error
}

// TrustAllAuthenticator accepts every non-empty claimed identity. Meant for
// deployments where the transport in front of the engine has already
// authenticated the caller, and for tests.
type TrustAllAuthenticator struct{}

func (TrustAllAuthenticator) RequireAuth(identity string) error {
	if identity == "" {
		return errors.New("empty caller identity")
	}
	return nil
}
