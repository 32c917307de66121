package domain_test

import (
	"strings"
	"testing"

	"go.trai.ch/kiln/internal/core/domain"
)

func TestChainDigest_Deterministic(t *testing.T) {
	a := domain.ChainDigest("", "key1")
	b := domain.ChainDigest("", "key1")
	if a != b {
		t.Errorf("expected identical digests, got %q and %q", a, b)
	}
	if !strings.HasPrefix(a, "sha256:") {
		t.Errorf("expected sha256 digest, got %q", a)
	}
}

func TestChainDigest_SensitiveToInputs(t *testing.T) {
	base := domain.ChainDigest("", "key1")

	if domain.ChainDigest("", "key2") == base {
		t.Error("digest did not change with cache key")
	}
	if domain.ChainDigest("parent", "key1") == base {
		t.Error("digest did not change with parent")
	}
}
