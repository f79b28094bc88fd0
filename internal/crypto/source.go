package crypto

import (
	"crypto/rand"
	"math/big"
)

// source yields uniformly distributed random indexes. Implementations must
// be safe for concurrent use.
type source interface {
	// intN returns a uniform random int in [0, n). n must be positive.
	intN(n int) (int, error)
}

// cryptoSource draws from crypto/rand. rand.Int performs unbiased range
// reduction, so indexes carry no modulo bias.
type cryptoSource struct{}

func (cryptoSource) intN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
