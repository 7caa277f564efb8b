package subnet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// ErrInvalidInput marks malformed networks and non-positive host counts.
var ErrInvalidInput = errors.New("invalid input")

// Network is an IPv4 network: a network address plus prefix length.
type Network struct {
	Prefix netip.Prefix
}

// ParseNetwork parses "addr/len" notation into a Network. Host bits in
// the address are masked off, so 192.168.1.77/24 is accepted and means
// 192.168.1.0/24.
func ParseNetwork(s string) (Network, error) {
	p, err := netip.ParsePrefix(strings.TrimSpace(s))
	if err != nil {
		return Network{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !p.Addr().Is4() {
		return Network{}, fmt.Errorf("%w: %q is not an IPv4 network", ErrInvalidInput, s)
	}
	return Network{Prefix: p.Masked()}, nil
}

// Size returns the total number of addresses in the network.
func (n Network) Size() uint64 {
	return uint64(1) << (32 - n.Prefix.Bits())
}

// Address returns the network address.
func (n Network) Address() netip.Addr {
	return n.Prefix.Addr()
}

// Broadcast returns the last address of the network.
func (n Network) Broadcast() netip.Addr {
	return netipx.RangeOfPrefix(n.Prefix).To()
}

func (n Network) String() string {
	return n.Prefix.String()
}

// Subnet is one allocated block of a plan.
type Subnet struct {
	// Hosts is the usable-host count that was requested for this block.
	Hosts  int
	Prefix netip.Prefix
}

// Size returns the total number of addresses in the block.
func (s Subnet) Size() uint64 {
	return uint64(1) << (32 - s.Prefix.Bits())
}

// Network returns the block's network address.
func (s Subnet) Network() netip.Addr {
	return s.Prefix.Addr()
}

// Broadcast returns the block's last address.
func (s Subnet) Broadcast() netip.Addr {
	return netipx.RangeOfPrefix(s.Prefix).To()
}

// UsableHosts returns the number of host addresses in the block,
// excluding the network and broadcast addresses. Blocks of one or two
// addresses have none.
func (s Subnet) UsableHosts() uint64 {
	if s.Prefix.Bits() >= 31 {
		return 0
	}
	return s.Size() - 2
}

// FirstHost returns the first usable host address, or the zero Addr
// when the block has no usable hosts.
func (s Subnet) FirstHost() netip.Addr {
	if s.UsableHosts() == 0 {
		return netip.Addr{}
	}
	return s.Network().Next()
}

// LastHost returns the last usable host address, or the zero Addr when
// the block has no usable hosts.
func (s Subnet) LastHost() netip.Addr {
	if s.UsableHosts() == 0 {
		return netip.Addr{}
	}
	return s.Broadcast().Prev()
}

// Wasted returns how many usable host addresses exceed the request.
func (s Subnet) Wasted() uint64 {
	return s.UsableHosts() - uint64(s.Hosts)
}

// Mask returns the block's subnet mask in dotted-decimal form.
func (s Subnet) Mask() string {
	return maskAddr(s.Prefix.Bits()).String()
}

// Leftover is the unused tail of the parent network after all
// requirements were placed. It is a plain address range: the tail of a
// network is generally not a single aligned CIDR block.
type Leftover struct {
	Range netipx.IPRange
}

// Size returns the number of addresses in the leftover range.
func (l Leftover) Size() uint64 {
	from := addrValue(l.Range.From())
	to := addrValue(l.Range.To())
	return uint64(to) - uint64(from) + 1
}

// PrefixLen returns the smallest prefix length whose block size still
// fits within the leftover range.
func (l Leftover) PrefixLen() int {
	size := l.Size()
	width := 0
	for size > 1 {
		size >>= 1
		width++
	}
	return 32 - width
}

// Prefixes returns the exact CIDR decomposition of the leftover range.
func (l Leftover) Prefixes() []netip.Prefix {
	return l.Range.Prefixes()
}

// Plan is a successful partition of a network: one subnet per
// requirement, in the caller's order, plus the unused remainder when
// the requirements did not consume the whole parent.
type Plan struct {
	Network  Network
	Subnets  []Subnet
	Leftover *Leftover
}

// ToBinary renders an IPv4 address as dot-separated 8-bit binary
// groups, e.g. 11000000.10101000.00000001.00000000.
func ToBinary(a netip.Addr) string {
	if !a.Is4() {
		return ""
	}
	b := a.As4()
	return fmt.Sprintf("%08b.%08b.%08b.%08b", b[0], b[1], b[2], b[3])
}

func maskAddr(bits int) netip.Addr {
	var m uint32
	if bits > 0 {
		m = ^uint32(0) << (32 - bits)
	}
	return addrFrom(m)
}

func addrValue(a netip.Addr) uint32 {
	b := a.As4()
	return binary.BigEndian.Uint32(b[:])
}

func addrFrom(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}
