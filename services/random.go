package services

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Rand is the randomness used for synthetic hotels.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// SafeRand draws from crypto/rand and is safe for concurrent use.
type SafeRand struct{}

func NewSafeRand() *SafeRand {
	return &SafeRand{}
}

func (s *SafeRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	value, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(value.Int64())
}

func (s *SafeRand) Float64() float64 {
	max := new(big.Int).Lsh(big.NewInt(1), 53)
	value, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0
	}
	return float64(value.Int64()) / math.Pow(2, 53)
}
