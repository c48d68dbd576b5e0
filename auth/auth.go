// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import "crypto/hmac"

// VerifyPassword compares a stored credential against the one supplied
// in the request. Comparison is exact (case-sensitive) and constant
// time, so response timing does not narrow down near-misses.
func VerifyPassword(stored, supplied string) bool {
	return hmac.Equal([]byte(stored), []byte(supplied))
}
