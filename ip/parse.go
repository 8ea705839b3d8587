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
	"strings"

	"github.com/pkg/errors"
)

// Textual forms are deliberately asymmetric: parsing is lenient where the
// grammar allows (IPv6 elision, either hex case), rendering is fixed-width
// and never abbreviated.  The grammars here are stricter than net.ParseIP;
// in particular multi-digit IPv4 components may not start with '0', IPv6
// groups are capped at 4 hex digits, "::" must stand for at least one group,
// and no IPv4-embedded IPv6 forms are accepted.

// ParseV4 parses a dotted-quad IPv4 address.
func ParseV4(s string) (V4Addr, error) {
	var addr V4Addr
	rest := s
	for i := 0; i < 4; i++ {
		if i > 0 {
			if len(rest) == 0 || rest[0] != '.' {
				return 0, errors.Wrapf(ErrMalformedAddress, "parsing %q", s)
			}
			rest = rest[1:]
		}
		v, used := parseDecimalOctet(rest)
		if used == 0 {
			return 0, errors.Wrapf(ErrMalformedAddress, "parsing %q", s)
		}
		rest = rest[used:]
		addr = addr<<8 | V4Addr(v)
	}
	if rest != "" {
		return 0, errors.Wrapf(ErrMalformedAddress, "parsing %q: trailing garbage", s)
	}
	return addr, nil
}

// parseDecimalOctet consumes a leading decimal component from s, returning
// its value and the number of bytes consumed.  used == 0 means no valid
// component: empty, leading zero (other than "0" itself), or value > 255.
func parseDecimalOctet(s string) (v int, used int) {
	for used < len(s) && s[used] >= '0' && s[used] <= '9' {
		v = v*10 + int(s[used]-'0')
		used++
		if v > 0xff || used > 1 && s[0] == '0' {
			return 0, 0
		}
	}
	return v, used
}

// ParseV6 parses an RFC 4291 colon-hex IPv6 address: up to eight groups of
// 1-4 hex digits, with at most one "::" standing in for one or more all-zero
// groups.  A "::" that would stand for zero groups is rejected, as RFC 4291
// requires; some real-world parsers are looser here.
func ParseV6(s string) (V6Addr, error) {
	malformed := func(why string) error {
		return errors.Wrapf(ErrMalformedAddress, "parsing %q: %s", s, why)
	}

	head, tail, elided := strings.Cut(s, "::")
	if elided && strings.Contains(tail, "::") {
		return V6Addr{}, malformed("more than one \"::\"")
	}

	headGroups, ok := parseHexGroups(head)
	if !ok {
		return V6Addr{}, malformed("bad group")
	}
	var tailGroups []uint32
	if elided {
		if tailGroups, ok = parseHexGroups(tail); !ok {
			return V6Addr{}, malformed("bad group")
		}
		if len(headGroups)+len(tailGroups) >= 8 {
			return V6Addr{}, malformed("\"::\" must elide at least one group")
		}
	} else if len(headGroups) != 8 {
		return V6Addr{}, malformed("want 8 groups")
	}

	var a V6Addr
	for i, g := range headGroups {
		a[i/2] |= g << (16 * uint(1-i%2))
	}
	for i, g := range tailGroups {
		pos := 8 - len(tailGroups) + i
		a[pos/2] |= g << (16 * uint(1-pos%2))
	}
	return a, nil
}

func parseHexGroups(s string) ([]uint32, bool) {
	if s == "" {
		return nil, true
	}
	parts := strings.Split(s, ":")
	groups := make([]uint32, 0, len(parts))
	for _, p := range parts {
		if len(p) == 0 || len(p) > 4 {
			return nil, false
		}
		var v uint32
		for i := 0; i < len(p); i++ {
			d := hexDigit(p[i])
			if d < 0 {
				return nil, false
			}
			v = v<<4 | uint32(d)
		}
		groups = append(groups, v)
	}
	return groups, true
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// String renders the address as a dotted quad.
func (a V4Addr) String() string {
	b := make([]byte, 0, 15)
	for i, c := range a.Components() {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendInt(b, int64(c), 10)
	}
	return string(b)
}

// String renders the address as eight zero-padded lowercase hex groups,
// never the RFC 5952 compressed form: parse("2001:db8::1").String() is
// "2001:0db8:0000:0000:0000:0000:0000:0001".
func (a V6Addr) String() string {
	const hexDigits = "0123456789abcdef"
	b := make([]byte, 0, 39)
	for i, c := range a.Components() {
		if i > 0 {
			b = append(b, ':')
		}
		for shift := 12; shift >= 0; shift -= 4 {
			b = append(b, hexDigits[c>>uint(shift)&0xf])
		}
	}
	return string(b)
}
