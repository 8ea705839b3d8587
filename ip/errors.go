// Copyright (c) 2026 Netfabrica, Inc. All rights reserved.
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

package ip

import "github.com/pkg/errors"

// Every error this package returns wraps one of these sentinels, so callers
// can classify failures with errors.Is while the wrapped message carries the
// offending input.  All of them mean "input rejected"; no constructor ever
// returns a silently fixed-up value.
var (
	// ErrMalformedAddress means text did not match the accepted grammar.
	ErrMalformedAddress = errors.New("malformed address")
	// ErrInvalidComponentCount means a structured constructor was given the
	// wrong number of components.
	ErrInvalidComponentCount = errors.New("invalid component count")
	// ErrComponentOutOfRange means a component exceeded its per-component
	// bound (255 for IPv4 bytes, 65535 for IPv6 groups).
	ErrComponentOutOfRange = errors.New("component out of range")
	// ErrInvalidPrefixLength means a prefix length outside [0, BitWidth].
	ErrInvalidPrefixLength = errors.New("invalid prefix length")
)
