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
	"encoding/binary"
	"net"
	"net/netip"

	"github.com/pkg/errors"
)

// Conversions to and from the socket-level representations.  The byte-order
// contract is big-endian network order throughout: byte 0 of the array forms
// is the most significant byte of the address, matching the wire layout of
// struct in_addr / in6_addr.  Each pair below is an exact inverse of the
// other for every value.

// As4 returns the address as 4 bytes in network order.
func (a V4Addr) As4() (b [4]byte) {
	binary.BigEndian.PutUint32(b[:], uint32(a))
	return
}

// V4AddrFrom4 is the inverse of As4.
func V4AddrFrom4(b [4]byte) V4Addr {
	return V4Addr(binary.BigEndian.Uint32(b[:]))
}

// As16 returns the address as 16 bytes in network order.
func (a V6Addr) As16() (b [16]byte) {
	for i, w := range a {
		binary.BigEndian.PutUint32(b[i*4:], w)
	}
	return
}

// V6AddrFrom16 is the inverse of As16.
func V6AddrFrom16(b [16]byte) V6Addr {
	var a V6Addr
	for i := range a {
		a[i] = binary.BigEndian.Uint32(b[i*4:])
	}
	return a
}

// AsNetIP returns a 4-byte net.IP copy of the address.
func (a V4Addr) AsNetIP() net.IP {
	b := a.As4()
	return net.IP(b[:])
}

// AsNetIP returns a 16-byte net.IP copy of the address.
func (a V6Addr) AsNetIP() net.IP {
	b := a.As16()
	return net.IP(b[:])
}

func (a V4Addr) AsNetipAddr() netip.Addr { return netip.AddrFrom4(a.As4()) }

func (a V6Addr) AsNetipAddr() netip.Addr { return netip.AddrFrom16(a.As16()) }

// V4FromNetIP converts a net.IP that holds an IPv4 address (in either the
// 4-byte or the 16-byte v4-in-v6 layout).
func V4FromNetIP(ip net.IP) (V4Addr, error) {
	v4 := ip.To4()
	if v4 == nil {
		return 0, errors.Wrapf(ErrInvalidComponentCount, "%d-byte net.IP is not IPv4", len(ip))
	}
	return V4AddrFrom4([4]byte(v4)), nil
}

// V6FromNetIP converts a 16-byte net.IP.  IPv4 addresses are refused rather
// than mapped; the two widths never mix.
func V6FromNetIP(ip net.IP) (V6Addr, error) {
	if len(ip) != net.IPv6len || ip.To4() != nil {
		return V6Addr{}, errors.Wrapf(ErrInvalidComponentCount, "%d-byte net.IP is not IPv6", len(ip))
	}
	return V6AddrFrom16([16]byte(ip)), nil
}

// V4FromNetipAddr converts a netip.Addr holding an IPv4 address.
func V4FromNetipAddr(addr netip.Addr) (V4Addr, error) {
	if !addr.Is4() {
		return 0, errors.Wrapf(ErrInvalidComponentCount, "netip.Addr %s is not IPv4", addr)
	}
	return V4AddrFrom4(addr.As4()), nil
}

// V6FromNetipAddr converts a netip.Addr holding a plain (not v4-mapped)
// IPv6 address.
func V6FromNetipAddr(addr netip.Addr) (V6Addr, error) {
	if !addr.Is6() || addr.Is4In6() {
		return V6Addr{}, errors.Wrapf(ErrInvalidComponentCount, "netip.Addr %s is not IPv6", addr)
	}
	return V6AddrFrom16(addr.As16()), nil
}

// ToIPNet returns the stdlib view of the range, for handing to code that
// speaks net.IPNet.
func (c CIDR[A]) ToIPNet() net.IPNet {
	return net.IPNet{
		IP:   c.addr.AsNetIP(),
		Mask: net.CIDRMask(c.prefix, c.addr.BitWidth()),
	}
}

func (a V4Addr) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *V4Addr) UnmarshalText(text []byte) error {
	parsed, err := ParseV4(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a V6Addr) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *V6Addr) UnmarshalText(text []byte) error {
	parsed, err := ParseV6(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
