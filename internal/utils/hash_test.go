// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"
)

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestSignParams_SortsAndJoins(t *testing.T) {
	params := map[string]string{
		"timestamp": "1315060510",
		"public_id": "sample_image",
		"eager":     "w_400,h_300,c_pad",
	}

	got := SignParams(params, "abcd")
	want := sha1Hex("eager=w_400,h_300,c_pad&public_id=sample_image&timestamp=1315060510abcd")

	if got != want {
		t.Errorf("signature mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestSignParams_SkipsUnsignedAndEmpty(t *testing.T) {
	params := map[string]string{
		"timestamp":     "1",
		"file":          "data:...",
		"api_key":       "key",
		"resource_type": "image",
		"folder":        "",
	}

	got := SignParams(params, "s")
	want := sha1Hex("timestamp=1s")

	if got != want {
		t.Errorf("signature mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestSignParams_DifferentSecrets(t *testing.T) {
	params := map[string]string{"timestamp": "1"}

	if SignParams(params, "one") == SignParams(params, "two") {
		t.Error("different secrets must produce different signatures")
	}
}

func TestSignParams_Deterministic(t *testing.T) {
	params := map[string]string{"b": "2", "a": "1", "c": "3"}

	if SignParams(params, "k") != SignParams(params, "k") {
		t.Error("same params must produce the same signature")
	}
}
