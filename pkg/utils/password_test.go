package utils

import (
	"strings"
	"testing"
)

func TestBcryptHashAndVerify(t *testing.T) {
	h := BcryptHasher{Cost: 4} // low cost keeps the test fast

	digest, err := h.Hash("123456")
	if err != nil {
		t.Fatalf("hash err: %v", err)
	}
	if strings.Contains(digest, "123456") {
		t.Fatal("digest contains the plaintext password")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Fatalf("unexpected digest format: %s", digest)
	}
	if !h.Verify("123456", digest) {
		t.Fatal("digest does not verify against its own plaintext")
	}
	if h.Verify("wrong", digest) {
		t.Fatal("wrong password verified")
	}
}

func TestBcryptVerifyMalformedDigest(t *testing.T) {
	h := BcryptHasher{}
	if h.Verify("whatever", "not-a-bcrypt-digest") {
		t.Fatal("malformed digest must not verify")
	}
	if h.Verify("whatever", "") {
		t.Fatal("empty digest must not verify")
	}
}
