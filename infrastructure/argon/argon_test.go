package argon

import "testing"

func TestCreateHashAndCompare(t *testing.T) {
	hash, err := CreateHash("operator-secret!1", nil)
	if err != nil {
		t.Fatalf("create hash: %v", err)
	}

	ok, err := CompareSecretAndHash("operator-secret!1", hash)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !ok {
		t.Fatalf("expected matching secret to verify")
	}

	ok, err = CompareSecretAndHash("wrong-secret", hash)
	if err != nil {
		t.Fatalf("compare wrong: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatched secret to fail")
	}
}

func TestCreateHash_EmptySecret(t *testing.T) {
	if _, err := CreateHash("   ", nil); err == nil {
		t.Fatalf("expected error for blank secret")
	}
}

func TestCompareSecretAndHash_MalformedHash(t *testing.T) {
	if _, err := CompareSecretAndHash("x", "$argon2id$broken"); err == nil {
		t.Fatalf("expected error for malformed hash")
	}
}
