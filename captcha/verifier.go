// Copyright 2026 Seekwell Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package captcha verifies that a request came from a human.
//
// The production implementation talks to Cloudflare Turnstile's siteverify
// endpoint. Any failure to obtain a positive verdict, including transport
// errors, is reported as a verification failure; the caller never proceeds
// on an unverified request.
package captcha

import "context"

// Verifier checks a challenge token issued to a client.
type Verifier interface {
	// Verify checks the given token. Returns nil only when the token was
	// positively verified; every other outcome is an error.
	Verify(ctx context.Context, token string) error
}
