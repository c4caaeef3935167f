package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isAlphanumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func TestTokenIssuer_Generate(t *testing.T) {
	issuer := NewTokenIssuer()
	for i := 0; i < 100; i++ {
		token := issuer.Generate()
		require.Len(t, token, 25)
		require.True(t, isAlphanumeric(token), "token %q contains non-alphanumeric characters", token)
	}
}

func TestTokenIssuer_NoCollisionsAcross10kDraws(t *testing.T) {
	issuer := NewTokenIssuer()
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		token := issuer.Generate()
		_, dup := seen[token]
		require.False(t, dup, "duplicate token after %d draws", i)
		seen[token] = struct{}{}
	}
}

func TestTokenIssuer_SeededIsDeterministic(t *testing.T) {
	a := NewSeededTokenIssuer(42)
	b := NewSeededTokenIssuer(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestTokenIssuer_SafeForConcurrentUse(t *testing.T) {
	issuer := NewTokenIssuer()
	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 1000; i++ {
				if len(issuer.Generate()) != 25 {
					t.Error("short token under concurrency")
					return
				}
			}
		}()
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
