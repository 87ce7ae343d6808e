// Package random provides the single injectable source of randomness the
// module uses: UETR generation (entities.PaymentIdentification.GenerateUETR).
// Tests supply a deterministic Source; production callers get crypto/rand
// through Default.
package random

import "crypto/rand"

// Source fills b with random bytes. The only real implementation in this
// module wraps crypto/rand; it exists as an interface so UETR generation
// has no hard dependency on a platform facility and tests can stub it.
type Source interface {
	Fill(b []byte) error
}

// cryptoSource is the production Source, backed by crypto/rand.Read.
type cryptoSource struct{}

func (cryptoSource) Fill(b []byte) error {
	_, err := rand.Read(b)
	return err
}

// Default is the crypto/rand-backed Source used when no other is injected.
var Default Source = cryptoSource{}
