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

package ip_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/netfabrica/ipcidr/ip"
)

var _ = DescribeTable("V4Addr PrefixMask",
	func(mlen int, expected V4Addr) {
		Expect(V4Addr(0).PrefixMask(mlen)).To(Equal(expected))
	},
	Entry("0 is all-zero", 0, V4Addr(0)),
	Entry("1", 1, V4Addr(0x80000000)),
	Entry("8", 8, V4Addr(0xff000000)),
	Entry("24", 24, V4Addr(0xffffff00)),
	Entry("31", 31, V4Addr(0xfffffffe)),
	Entry("32 is all-ones", 32, V4Addr(0xffffffff)),
)

var _ = DescribeTable("V6Addr PrefixMask",
	func(mlen int, expected V6Addr) {
		Expect(V6Addr{}.PrefixMask(mlen)).To(Equal(expected))
	},
	Entry("0 is all-zero", 0, V6Addr{}),
	Entry("1", 1, V6Addr{0x80000000, 0, 0, 0}),
	Entry("32 is a word boundary", 32, V6Addr{0xffffffff, 0, 0, 0}),
	Entry("40 spills into word 1", 40, V6Addr{0xffffffff, 0xff000000, 0, 0}),
	Entry("64", 64, V6Addr{0xffffffff, 0xffffffff, 0, 0}),
	Entry("97", 97, V6Addr{0xffffffff, 0xffffffff, 0xffffffff, 0x80000000}),
	Entry("127", 127, V6Addr{0xffffffff, 0xffffffff, 0xffffffff, 0xfffffffe}),
	Entry("128 is all-ones", 128, V6Addr{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff}),
)

var _ = DescribeTable("V4Addr shifts",
	func(in V4Addr, n uint, left, right V4Addr) {
		Expect(in.ShiftLeft(n)).To(Equal(left))
		Expect(in.ShiftRight(n)).To(Equal(right))
	},
	Entry("by 0", V4Addr(0x12345678), uint(0), V4Addr(0x12345678), V4Addr(0x12345678)),
	Entry("by 8", V4Addr(0x12345678), uint(8), V4Addr(0x34567800), V4Addr(0x00123456)),
	Entry("by 31", V4Addr(0xffffffff), uint(31), V4Addr(0x80000000), V4Addr(1)),
	Entry("by the full width", V4Addr(0xffffffff), uint(32), V4Addr(0), V4Addr(0)),
	Entry("past the full width", V4Addr(0xffffffff), uint(40), V4Addr(0), V4Addr(0)),
)

var _ = DescribeTable("V6Addr shifts",
	func(in V6Addr, n uint, left, right V6Addr) {
		Expect(in.ShiftLeft(n)).To(Equal(left))
		Expect(in.ShiftRight(n)).To(Equal(right))
	},
	Entry("by 0",
		V6Addr{1, 2, 3, 4}, uint(0),
		V6Addr{1, 2, 3, 4}, V6Addr{1, 2, 3, 4}),
	Entry("by a whole word",
		V6Addr{1, 2, 3, 4}, uint(32),
		V6Addr{2, 3, 4, 0}, V6Addr{0, 1, 2, 3}),
	Entry("by 4, carrying across words",
		V6Addr{0x10000000, 0x20000001, 0, 0x80000000}, uint(4),
		V6Addr{0x00000002, 0x00000010, 0x00000008, 0},
		V6Addr{0x01000000, 0x02000000, 0x10000000, 0x08000000}),
	Entry("by 36, word plus bits",
		V6Addr{0, 0, 0, 0xffffffff}, uint(36),
		V6Addr{0, 0x0000000f, 0xfffffff0, 0}, V6Addr{}),
	Entry("by the full width",
		V6Addr{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff}, uint(128),
		V6Addr{}, V6Addr{}),
	Entry("past the full width",
		V6Addr{0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff}, uint(129),
		V6Addr{}, V6Addr{}),
)

var _ = Describe("components", func() {
	It("should round-trip an IPv4 address", func() {
		addr, err := V4FromComponents([]int{192, 0, 2, 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(addr).To(Equal(V4Addr(0xc0000201)))
		Expect(addr.Components()).To(Equal([]int{192, 0, 2, 1}))
	})

	It("should round-trip an IPv6 address", func() {
		addr, err := V6FromComponents([]int{0x2001, 0x0db8, 0, 0, 0, 0, 0, 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(addr).To(Equal(V6Addr{0x20010db8, 0, 0, 1}))
		Expect(addr.Components()).To(Equal([]int{0x2001, 0x0db8, 0, 0, 0, 0, 0, 1}))
	})

	It("should reject the wrong arity", func() {
		_, err := V4FromComponents([]int{10, 0, 0})
		Expect(err).To(MatchError(ErrInvalidComponentCount))
		_, err = V4FromComponents([]int{10, 0, 0, 0, 0})
		Expect(err).To(MatchError(ErrInvalidComponentCount))
		_, err = V6FromComponents([]int{1, 2, 3, 4})
		Expect(err).To(MatchError(ErrInvalidComponentCount))
	})

	It("should reject out-of-range components", func() {
		_, err := V4FromComponents([]int{256, 0, 0, 1})
		Expect(err).To(MatchError(ErrComponentOutOfRange))
		_, err = V4FromComponents([]int{-1, 0, 0, 1})
		Expect(err).To(MatchError(ErrComponentOutOfRange))
		_, err = V6FromComponents([]int{0x10000, 0, 0, 0, 0, 0, 0, 0})
		Expect(err).To(MatchError(ErrComponentOutOfRange))
	})
})

var _ = DescribeTable("Cmp",
	func(a, b string, expected int) {
		ra := MustParseIPRangeOrAddr(a)
		rb := MustParseIPRangeOrAddr(b)
		Expect(ra.Cmp(rb)).To(Equal(expected))
		Expect(rb.Cmp(ra)).To(Equal(-expected))
	},
	Entry("IPv4 numeric", "10.0.0.1", "10.0.0.2", -1),
	Entry("IPv4 high byte dominates", "192.0.0.0", "10.255.255.255", 1),
	Entry("IPv4 equal", "10.0.0.1", "10.0.0.1", 0),
	Entry("IPv6 word 0 dominates", "dead::", "1::ffff:ffff:ffff:ffff", 1),
	Entry("IPv6 word 3 breaks ties", "dead::1", "dead::2", -1),
	Entry("IPv6 equal", "dead::beef", "dead:0:0::beef", 0),
	Entry("v4 sorts before v6", "255.255.255.255", "::", -1),
)

var _ = DescribeTable("NthBit",
	func(inputAddr string, n uint, expected int) {
		Expect(nthBit(inputAddr, n)).To(Equal(expected))
	},
	Entry("IPv4 32nd bit", "10.10.10.1", uint(32), 1),
	Entry("IPv4 31st bit", "10.10.10.1", uint(31), 0),
	Entry("IPv4 32nd bit 2", "192.168.0.2", uint(32), 0),
	Entry("IPv4 31st bit 2", "192.168.0.2", uint(31), 1),
	Entry("IPv4 1st bit", "192.168.0.2", uint(1), 1),
	Entry("IPv6 128th bit", "fc00:fe11::1", uint(128), 1),
	Entry("IPv6 127th bit", "fc00:fe11::1", uint(127), 0),
	Entry("IPv6 128th bit 2", "fc00:fe11::2", uint(128), 0),
	Entry("IPv6 127th bit 2", "fc00:fe11::2", uint(127), 1),
	Entry("IPv6 1st bit", "fc00:fe11::2", uint(1), 1),
)

var _ = Describe("AsBinary", func() {
	It("should render IPv4 MSB first", func() {
		addr, err := ParseV4("192.0.2.1")
		Expect(err).NotTo(HaveOccurred())
		Expect(addr.AsBinary()).To(Equal("11000000" + "00000000" + "00000010" + "00000001"))
	})

	It("should render all 128 IPv6 bits", func() {
		addr, err := ParseV6("8000::1")
		Expect(err).NotTo(HaveOccurred())
		bits := addr.AsBinary()
		Expect(bits).To(HaveLen(128))
		Expect(bits[0]).To(Equal(byte('1')))
		Expect(bits[127]).To(Equal(byte('1')))
		Expect(bits[1:127]).To(Equal(zeroBits(126)))
	})
})

func nthBit(addr string, n uint) int {
	r := MustParseIPRangeOrAddr(addr)
	if v4, ok := r.V4(); ok {
		return v4.Addr().NthBit(n)
	}
	v6, _ := r.V6()
	return v6.Addr().NthBit(n)
}

func zeroBits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
