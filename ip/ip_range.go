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
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// IPRange holds a range of either width for call sites that need mixed
// collections (a dual-stack routing table, say) without a type parameter.
// It is a closed two-variant union discriminated by the version tag; there is
// deliberately no cross-width variant, so a v4 prefix can never match a v6
// range.  Like the CIDR types it is comparable and usable as a map key.
//
// The zero value is invalid: it belongs to neither family and covers
// nothing.
type IPRange struct {
	version uint8
	v4      V4CIDR
	v6      V6CIDR
}

// V4Range wraps a v4 range in the union.
func V4Range(c V4CIDR) IPRange { return IPRange{version: 4, v4: c} }

// V6Range wraps a v6 range in the union.
func V6Range(c V6CIDR) IPRange { return IPRange{version: 6, v6: c} }

// Version returns 4 or 6, or 0 for the invalid zero value.
func (r IPRange) Version() uint8 { return r.version }

// V4 returns the v4 variant; ok is false if r holds a v6 range (or is the
// zero value).
func (r IPRange) V4() (c V4CIDR, ok bool) { return r.v4, r.version == 4 }

// V6 returns the v6 variant.
func (r IPRange) V6() (c V6CIDR, ok bool) { return r.v6, r.version == 6 }

// Covers reports the CIDR subset relation; ranges of different widths never
// cover each other.
func (r IPRange) Covers(other IPRange) bool {
	if r.version != other.version {
		return false
	}
	switch r.version {
	case 4:
		return r.v4.Covers(other.v4)
	case 6:
		return r.v6.Covers(other.v6)
	}
	return false
}

// ContainsV4 reports whether addr falls within r; always false for a v6
// range.
func (r IPRange) ContainsV4(addr V4Addr) bool {
	return r.version == 4 && r.v4.Contains(addr)
}

// ContainsV6 reports whether addr falls within r; always false for a v4
// range.
func (r IPRange) ContainsV6(addr V6Addr) bool {
	return r.version == 6 && r.v6.Contains(addr)
}

// Cmp orders all v4 ranges before all v6 ranges, then by base address and
// prefix length within a family.
func (r IPRange) Cmp(other IPRange) int {
	switch {
	case r.version < other.version:
		return -1
	case r.version > other.version:
		return 1
	}
	switch r.version {
	case 4:
		return r.v4.Cmp(other.v4)
	case 6:
		return r.v6.Cmp(other.v6)
	}
	return 0
}

func (r IPRange) String() string {
	switch r.version {
	case 4:
		return r.v4.String()
	case 6:
		return r.v6.String()
	}
	return "invalid"
}

// ParseIPRange parses "addr/len" of either width, dispatching on the address
// syntax: a ':' anywhere before the slash means colon-hex.
func ParseIPRange(s string) (IPRange, error) {
	if strings.Contains(s, ":") {
		c, err := ParseV6CIDR(s)
		if err != nil {
			return IPRange{}, err
		}
		return V6Range(c), nil
	}
	c, err := ParseV4CIDR(s)
	if err != nil {
		return IPRange{}, err
	}
	return V4Range(c), nil
}

// ParseIPRangeOrAddr is ParseIPRange but a bare address is accepted as the
// full-width range containing only itself.
func ParseIPRangeOrAddr(s string) (IPRange, error) {
	if strings.Contains(s, "/") {
		return ParseIPRange(s)
	}
	if strings.Contains(s, ":") {
		addr, err := ParseV6(s)
		if err != nil {
			return IPRange{}, err
		}
		c, err := NewCIDR(addr, V6Width)
		if err != nil {
			return IPRange{}, err
		}
		return V6Range(c), nil
	}
	addr, err := ParseV4(s)
	if err != nil {
		return IPRange{}, err
	}
	c, err := NewCIDR(addr, V4Width)
	if err != nil {
		return IPRange{}, err
	}
	return V4Range(c), nil
}

// MustParseIPRangeOrAddr is for hard-coded input; it panics via the logger
// on a parse failure.
func MustParseIPRangeOrAddr(s string) IPRange {
	r, err := ParseIPRangeOrAddr(s)
	if err != nil {
		log.WithError(err).WithField("input", s).Panic("Failed to parse range")
	}
	return r
}

// MarshalText renders the range in "addr/len" form.
func (r IPRange) MarshalText() ([]byte, error) {
	if r.version == 0 {
		return nil, errors.Wrap(ErrMalformedAddress, "cannot marshal the zero IPRange")
	}
	return []byte(r.String()), nil
}

// UnmarshalText parses "addr/len" of either width.
func (r *IPRange) UnmarshalText(text []byte) error {
	parsed, err := ParseIPRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
