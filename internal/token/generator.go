// Package token generates memorable share tokens of the form
// <adjective>-<noun>-<0..99>, e.g. "jolly-snowflake-42". The namespace holds
// 22*22*100 = 48,400 combinations; collisions are resolved by regenerating
// against a caller-supplied uniqueness check.
package token

import (
	"context"
	"fmt"
	"math/rand/v2"
)

var adjectives = []string{
	"happy", "jolly", "merry", "festive", "snowy", "cozy", "sparkly", "magical",
	"frosty", "cheerful", "bright", "golden", "silver", "twinkling", "peaceful",
	"joyful", "warm", "gentle", "dancing", "glowing", "sweet", "lovely",
}

var nouns = []string{
	"snowflake", "reindeer", "penguin", "snowman", "candy", "sleigh", "star",
	"angel", "bell", "candle", "cookie", "gift", "ribbon", "wreath", "mitten",
	"stocking", "elf", "carol", "tinsel", "gingerbread", "cocoa", "fireplace",
}

// maxAttempts bounds the uniqueness loop. With 48,400 combinations a live
// system never comes close; hitting the cap means the namespace is effectively
// exhausted and is reported as an error rather than looping forever.
const maxAttempts = 10000

// TakenFunc reports whether a candidate token is already in use.
type TakenFunc func(ctx context.Context, token string) (bool, error)

// Generator produces share tokens. The zero value is not usable; use New.
type Generator struct {
	intN func(n int) int
}

// New creates a Generator backed by the global math/rand/v2 source.
// Tokens are not secrets; unguessability comes from the namespace size.
func New() *Generator {
	return &Generator{intN: rand.IntN}
}

// Generate returns a single candidate token without any uniqueness check.
func (g *Generator) Generate() string {
	adj := adjectives[g.intN(len(adjectives))]
	noun := nouns[g.intN(len(nouns))]
	num := g.intN(100)
	return fmt.Sprintf("%s-%s-%d", adj, noun, num)
}

// GenerateUnique generates candidates until taken reports one as free.
// Errors from taken propagate unchanged. Exhausting maxAttempts returns an
// error; treat it as a configuration-level failure.
func (g *Generator) GenerateUnique(ctx context.Context, taken TakenFunc) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		candidate := g.Generate()

		used, err := taken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check token %q: %w", candidate, err)
		}
		if !used {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("share token namespace exhausted after %d attempts", maxAttempts)
}
