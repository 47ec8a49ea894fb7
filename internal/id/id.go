// Package id generates opaque unique tokens for ledger records.
package id

import "github.com/google/uuid"

// Generator produces collision-resistant opaque tokens. The ledger treats
// tokens as unique strings and never inspects their structure.
type Generator interface {
	NewToken() string
}

// UUIDGenerator issues random UUIDv4 tokens.
type UUIDGenerator struct{}

// NewToken returns a new random token.
func (UUIDGenerator) NewToken() string {
	return uuid.NewString()
}
