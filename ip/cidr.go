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

import (
	"strconv"

	"github.com/pkg/errors"
)

// CIDR is a canonical address range: a base address plus a prefix length.
// The fields are unexported so that NewCIDR is the only way to make one,
// which is what keeps the canonical-form invariant (every bit of the base
// address beyond the prefix length is zero) true for every value in the
// program.  The zero value is the whole address space, prefix 0.
//
// CIDR values are immutable and comparable; == is exact range equality.
type CIDR[A Addr[A]] struct {
	addr   A
	prefix int
}

type (
	V4CIDR = CIDR[V4Addr]
	V6CIDR = CIDR[V6Addr]
)

// NewCIDR builds the canonical range for addr/mlen.  Host bits of addr below
// the prefix are masked off, never rejected: NewCIDR(10.0.0.5, 24) is
// 10.0.0.0/24.  The only failure is a prefix length outside [0, BitWidth].
func NewCIDR[A Addr[A]](addr A, mlen int) (CIDR[A], error) {
	var zero A
	if mlen < 0 || mlen > zero.BitWidth() {
		return CIDR[A]{}, errors.Wrapf(ErrInvalidPrefixLength,
			"prefix length %d for a %d-bit address", mlen, zero.BitWidth())
	}
	return CIDR[A]{addr: addr.And(zero.PrefixMask(mlen)), prefix: mlen}, nil
}

// Addr returns the canonical base address.
func (c CIDR[A]) Addr() A { return c.addr }

// Prefix returns the prefix length.
func (c CIDR[A]) Prefix() int { return c.prefix }

// Mask returns the netmask as an address value: the first Prefix() bits set.
func (c CIDR[A]) Mask() A {
	var zero A
	return zero.PrefixMask(c.prefix)
}

func (c CIDR[A]) Version() uint8 { return c.addr.Version() }

// Covers reports whether every address matched by other is also matched by
// c: the CIDR subset relation.  A range covers itself; a /0 covers every
// range of its width; a full-width range covers only itself.
func (c CIDR[A]) Covers(other CIDR[A]) bool {
	return c.prefix <= other.prefix && other.addr.And(c.Mask()) == c.addr
}

// Contains reports whether addr falls within the range.
func (c CIDR[A]) Contains(addr A) bool {
	return addr.And(c.Mask()) == c.addr
}

// Cmp orders ranges by base address, then by prefix length, so sorting a
// routing table with it is deterministic.
func (c CIDR[A]) Cmp(other CIDR[A]) int {
	if r := c.addr.Cmp(other.addr); r != 0 {
		return r
	}
	switch {
	case c.prefix < other.prefix:
		return -1
	case c.prefix > other.prefix:
		return 1
	}
	return 0
}

// AsBinary returns the first Prefix() bits of the base address as a '0'/'1'
// string, suitable as a longest-prefix-match trie key.
func (c CIDR[A]) AsBinary() string {
	return c.addr.AsBinary()[:c.prefix]
}

func (c CIDR[A]) String() string {
	return c.addr.String() + "/" + strconv.Itoa(c.prefix)
}

// ParseV4CIDR parses "addr/len" where addr is a dotted quad.
func ParseV4CIDR(s string) (V4CIDR, error) {
	addrText, mlen, err := splitCIDR(s)
	if err != nil {
		return V4CIDR{}, err
	}
	addr, err := ParseV4(addrText)
	if err != nil {
		return V4CIDR{}, err
	}
	return NewCIDR(addr, mlen)
}

// ParseV6CIDR parses "addr/len" where addr is colon-hex.
func ParseV6CIDR(s string) (V6CIDR, error) {
	addrText, mlen, err := splitCIDR(s)
	if err != nil {
		return V6CIDR{}, err
	}
	addr, err := ParseV6(addrText)
	if err != nil {
		return V6CIDR{}, err
	}
	return NewCIDR(addr, mlen)
}

// splitCIDR separates the address text from the prefix length.  The length
// is held to the same strictness as the address grammars: decimal digits
// only, no leading zeros.  Range checking is NewCIDR's job.
func splitCIDR(s string) (addrText string, mlen int, err error) {
	slash := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			if slash >= 0 {
				return "", 0, errors.Wrapf(ErrMalformedAddress, "parsing %q: more than one '/'", s)
			}
			slash = i
		}
	}
	if slash < 0 {
		return "", 0, errors.Wrapf(ErrMalformedAddress, "parsing %q: no prefix length", s)
	}
	lenText := s[slash+1:]
	v, used := parseDecimalOctet(lenText)
	if used != len(lenText) || used == 0 {
		return "", 0, errors.Wrapf(ErrMalformedAddress, "parsing %q: bad prefix length", s)
	}
	return s[:slash], v, nil
}
