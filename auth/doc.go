// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential verification.

There are no sessions or tokens: every state-changing request carries
its own credential (the login password, or a booth's gating password)
and is re-checked on the spot.

	if !auth.VerifyPassword(user.Password, req.Password) {
		// 401
	}

Comparison is exact and constant time. Passwords are stored as given;
hashing them would not change the comparison semantics and is left out
here.
*/
package auth
