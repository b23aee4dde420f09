package transform

import (
	"fmt"
	"math/rand/v2"

	"github.com/KimNorgaard/go-star"
)

// DefaultSubsetColumn is the column HalfSplit tags rows with.
const DefaultSubsetColumn = "_rlnRandomSubset"

// Option configures a transformation.
type Option func(*config) error

type config struct {
	rng          *rand.Rand
	subsetColumn string
	writeOpts    []star.Option
}

func newConfig(opts []Option) (*config, error) {
	c := &config{subsetColumn: DefaultSubsetColumn}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c, nil
}

// Seed makes the random choices of Sample and HalfSplit reproducible.
func Seed(seed uint64) Option {
	return func(c *config) error {
		c.rng = rand.New(rand.NewPCG(seed, seed))
		return nil
	}
}

// Rand sets the source of randomness.
func Rand(r *rand.Rand) Option {
	return func(c *config) error {
		if r == nil {
			return fmt.Errorf("transform: nil random source")
		}
		c.rng = r
		return nil
	}
}

// SubsetColumn overrides the marker column written by HalfSplit.
func SubsetColumn(name string) Option {
	return func(c *config) error {
		if name == "" {
			return fmt.Errorf("transform: subset column name must not be empty")
		}
		c.subsetColumn = name
		return nil
	}
}

// WriteOptions passes encoding options to the Export functions.
func WriteOptions(opts ...star.Option) Option {
	return func(c *config) error {
		c.writeOpts = append(c.writeOpts, opts...)
		return nil
	}
}
