package crypto

import "errors"

var ErrInvalidLength = errors.New("password length must be a positive integer")

// Options configures password generation. The zero value selects no
// categories; use DefaultOptions for the usual configuration.
type Options struct {
	Length           int
	Lowercase        bool
	Uppercase        bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// DefaultOptions returns sensible defaults: 16 characters drawn from all
// categories, ambiguous characters kept.
func DefaultOptions() Options {
	return Options{
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Generate creates a cryptographically secure random password based on the
// given options. When the requested length is at least the number of
// selected (non-empty) categories, the result contains at least one
// character from each of them; shorter requests are drawn from the combined
// pool without that guarantee.
func Generate(opts Options) (string, error) {
	return generate(cryptoSource{}, opts)
}

func generate(src source, opts Options) (string, error) {
	if opts.Length <= 0 {
		return "", ErrInvalidLength
	}

	pools, err := buildPools(opts)
	if err != nil {
		return "", err
	}

	// The union concatenates every selected pool, so filler draws weight
	// each category by its pool size.
	var union string
	for _, p := range pools {
		union += p.chars
	}

	result := make([]byte, opts.Length)

	if opts.Length < len(pools) {
		// Too short to cover every selected category: independent uniform
		// draws from the union, already unordered, so no shuffle.
		for i := range result {
			ch, err := randChar(src, union)
			if err != nil {
				return "", err
			}
			result[i] = ch
		}
		return string(result), nil
	}

	// One character per pool guarantees category coverage.
	for i, p := range pools {
		ch, err := randChar(src, p.chars)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fill the remaining positions from the full union.
	for i := len(pools); i < opts.Length; i++ {
		ch, err := randChar(src, union)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fisher-Yates so the coverage characters are not pinned to the front.
	if err := shuffle(src, result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks one uniform random character from charset.
func randChar(src source, charset string) (byte, error) {
	i, err := src.intN(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// shuffle permutes data in place; every ordering is equally likely.
func shuffle(src source, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.intN(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
