// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_Verify(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("expected hash to differ from the password")
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Error("expected password to verify against its hash")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("expected wrong password to be rejected")
	}
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("pw", 99)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("expected readable cost, got: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	if VerifyPassword("not-a-bcrypt-hash", "pw") {
		t.Error("expected malformed hash to be rejected")
	}
}

func TestBurnPasswordCheck_DoesNotPanic(t *testing.T) {
	BurnPasswordCheck("anything")
}
