package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("superpassword")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "superpassword" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !Verify("superpassword", hash) {
		t.Error("Verify rejected the correct password")
	}
	if Verify("wrongpassword", hash) {
		t.Error("Verify accepted a wrong password")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-hash") {
		t.Error("Verify accepted a malformed hash")
	}
}
