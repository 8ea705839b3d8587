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

// The ip package contains yet another IP address (and CIDR) type :-).  The
// types differ from the ones in the net package in that they are backed by
// fixed-width integer words.  That makes them hashable, so they can be used
// as map keys, and it turns masking, containment and ordering into plain
// integer arithmetic.  All the range/mask/compare algorithms are written once
// against the Addr constraint and instantiated for both widths.
package ip

import (
	"net"

	"github.com/pkg/errors"
)

const (
	// V4Width is the bit width of an IPv4 address.
	V4Width = 32
	// V6Width is the bit width of an IPv6 address.
	V6Width = 128
)

// Addr constrains the address types the generic range engine operates over.
// Bit numbering throughout the package is most-significant-first: bit 1 of
// NthBit is the top bit, and PrefixMask(n) sets the first n bits.
type Addr[A comparable] interface {
	comparable

	// Version returns the IP version; 4 or 6.
	Version() uint8
	// BitWidth returns the address width in bits; 32 or 128.
	BitWidth() int

	And(A) A
	Or(A) A
	Not() A

	// ShiftLeft and ShiftRight are defined for every n; shifting by the full
	// width or more yields the all-zero address rather than tripping over
	// native shift semantics.
	ShiftLeft(n uint) A
	ShiftRight(n uint) A

	// PrefixMask returns the address whose first mlen bits are set.  The
	// receiver's value is ignored; call it on the zero value.  mlen must be
	// in [0, BitWidth]; PrefixMask(0) is all-zero and PrefixMask(BitWidth)
	// all-ones.
	PrefixMask(mlen int) A

	// Cmp returns -1, 0 or 1 comparing the addresses as unsigned integers.
	Cmp(A) int

	// Components decomposes the address most-significant-first: 4 byte
	// values for IPv4, 8 group values for IPv6.
	Components() []int

	// NthBit returns bit n of the address, where bit 1 is the most
	// significant and bit BitWidth the least.
	NthBit(n uint) int
	// AsBinary renders the address as a string of '0'/'1' runes, most
	// significant bit first; a prefix of it is a ready-made trie key.
	AsBinary() string

	// AsNetIP returns a net.IP copy of the address in network byte order.
	AsNetIP() net.IP

	String() string
}

// V4Addr is an IPv4 address held as a single 32-bit integer in the natural
// numeric order: the most significant byte is the first dotted component.
// Every 32-bit value is a valid address, 0.0.0.0 and 255.255.255.255
// included.
type V4Addr uint32

func (a V4Addr) Version() uint8 { return 4 }

func (a V4Addr) BitWidth() int { return V4Width }

func (a V4Addr) And(b V4Addr) V4Addr { return a & b }

func (a V4Addr) Or(b V4Addr) V4Addr { return a | b }

func (a V4Addr) Not() V4Addr { return ^a }

func (a V4Addr) ShiftLeft(n uint) V4Addr {
	if n >= V4Width {
		return 0
	}
	return a << n
}

func (a V4Addr) ShiftRight(n uint) V4Addr {
	if n >= V4Width {
		return 0
	}
	return a >> n
}

func (V4Addr) PrefixMask(mlen int) V4Addr {
	return V4Addr(0).Not().ShiftLeft(uint(V4Width - mlen))
}

func (a V4Addr) Cmp(b V4Addr) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (a V4Addr) Components() []int {
	return []int{
		int(a >> 24 & 0xff),
		int(a >> 16 & 0xff),
		int(a >> 8 & 0xff),
		int(a & 0xff),
	}
}

func (a V4Addr) NthBit(n uint) int {
	return int(a >> (V4Width - n) & 1)
}

func (a V4Addr) AsBinary() string {
	return string(appendBits(make([]byte, 0, V4Width), uint32(a)))
}

// V4FromComponents builds an address from its four dotted components, most
// significant first: [192, 0, 2, 1] is 192.0.2.1.
func V4FromComponents(comps []int) (V4Addr, error) {
	if len(comps) != 4 {
		return 0, errors.Wrapf(ErrInvalidComponentCount, "got %d components, want 4", len(comps))
	}
	var a V4Addr
	for _, c := range comps {
		if c < 0 || c > 0xff {
			return 0, errors.Wrapf(ErrComponentOutOfRange, "component %d outside [0, 255]", c)
		}
		a = a<<8 | V4Addr(c)
	}
	return a, nil
}

// V6Addr is an IPv6 address held as four 32-bit words, most significant
// first: word 0 covers the first two colon groups of the written form, word 3
// the last two.
type V6Addr [4]uint32

func (a V6Addr) Version() uint8 { return 6 }

func (a V6Addr) BitWidth() int { return V6Width }

func (a V6Addr) And(b V6Addr) V6Addr {
	return V6Addr{a[0] & b[0], a[1] & b[1], a[2] & b[2], a[3] & b[3]}
}

func (a V6Addr) Or(b V6Addr) V6Addr {
	return V6Addr{a[0] | b[0], a[1] | b[1], a[2] | b[2], a[3] | b[3]}
}

func (a V6Addr) Not() V6Addr {
	return V6Addr{^a[0], ^a[1], ^a[2], ^a[3]}
}

// ShiftLeft shifts the 128-bit value left by n bits.  The word/bit split is
// done explicitly so that word-sized and larger shifts stay well-defined.
func (a V6Addr) ShiftLeft(n uint) V6Addr {
	if n >= V6Width {
		return V6Addr{}
	}
	word := int(n / 32)
	bit := n % 32
	var out V6Addr
	for i := 0; i+word < len(a); i++ {
		src := i + word
		out[i] = a[src] << bit
		if bit > 0 && src+1 < len(a) {
			out[i] |= a[src+1] >> (32 - bit)
		}
	}
	return out
}

func (a V6Addr) ShiftRight(n uint) V6Addr {
	if n >= V6Width {
		return V6Addr{}
	}
	word := int(n / 32)
	bit := n % 32
	var out V6Addr
	for i := len(a) - 1; i-word >= 0; i-- {
		src := i - word
		out[i] = a[src] >> bit
		if bit > 0 && src > 0 {
			out[i] |= a[src-1] << (32 - bit)
		}
	}
	return out
}

// PrefixMask distributes the run of mlen ones across the four words; for
// example PrefixMask(40) fills word 0 and the top 8 bits of word 1.
func (V6Addr) PrefixMask(mlen int) V6Addr {
	var m V6Addr
	for i := range m {
		bits := mlen - i*32
		switch {
		case bits >= 32:
			m[i] = ^uint32(0)
		case bits > 0:
			m[i] = ^uint32(0) << (32 - bits)
		}
	}
	return m
}

// Cmp compares word 0 first, which is exactly 128-bit unsigned comparison.
func (a V6Addr) Cmp(b V6Addr) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

func (a V6Addr) Components() []int {
	comps := make([]int, 0, 8)
	for _, w := range a {
		comps = append(comps, int(w>>16), int(w&0xffff))
	}
	return comps
}

func (a V6Addr) NthBit(n uint) int {
	word := (n - 1) / 32
	return int(a[word] >> (31 - (n-1)%32) & 1)
}

func (a V6Addr) AsBinary() string {
	b := make([]byte, 0, V6Width)
	for _, w := range a {
		b = appendBits(b, w)
	}
	return string(b)
}

// V6FromComponents builds an address from its eight 16-bit groups, most
// significant first: [0x2001, 0xdb8, 0, 0, 0, 0, 0, 1] is 2001:db8::1.
func V6FromComponents(comps []int) (V6Addr, error) {
	if len(comps) != 8 {
		return V6Addr{}, errors.Wrapf(ErrInvalidComponentCount, "got %d components, want 8", len(comps))
	}
	var a V6Addr
	for i, c := range comps {
		if c < 0 || c > 0xffff {
			return V6Addr{}, errors.Wrapf(ErrComponentOutOfRange, "component %#x outside [0, 0xffff]", c)
		}
		a[i/2] |= uint32(c) << (16 * uint(1-i%2))
	}
	return a, nil
}

func appendBits(b []byte, w uint32) []byte {
	for i := 31; i >= 0; i-- {
		b = append(b, '0'+byte(w>>uint(i)&1))
	}
	return b
}
