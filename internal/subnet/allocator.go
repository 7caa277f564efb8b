package subnet

import (
	"fmt"
	"net/netip"
	"sort"

	"go4.org/netipx"
)

// OutOfSpaceError reports a requirement that could not be placed within
// the parent network. Placed holds the subnets allocated before the
// failure, for diagnostics.
type OutOfSpaceError struct {
	Hosts     int
	Remaining uint64
	Placed    []Subnet
}

func (e *OutOfSpaceError) Error() string {
	return fmt.Sprintf("no room for a subnet of %d hosts: %d addresses remain", e.Hosts, e.Remaining)
}

// PrefixForHosts returns the longest prefix length whose block still
// provides at least hosts usable addresses. Usable capacity of a 2^b
// block is 2^b - 2, so a positive requirement always maps to at least
// a /30; requirements of 1 or 2 hosts are deliberately not squeezed
// into /31 or /32 blocks, which have no usable hosts.
func PrefixForHosts(hosts int) (int, error) {
	if hosts <= 0 {
		return 0, fmt.Errorf("%w: host count must be positive, got %d", ErrInvalidInput, hosts)
	}
	for b := 2; b <= 32; b++ {
		if uint64(1)<<b-2 >= uint64(hosts) {
			return 32 - b, nil
		}
	}
	// More hosts than the whole IPv4 space provides. Reported by
	// Allocate as out of space against any parent.
	return -1, nil
}

// Allocate partitions n into one subnet per entry of hosts, each sized
// by PrefixForHosts, plus the unused remainder. All host counts are
// validated before anything is placed. Placement is largest block
// first with a stable tie-break on input position; the returned plan
// restores the caller's order.
func Allocate(n Network, hosts []int) (*Plan, error) {
	type request struct {
		pos    int
		hosts  int
		prefix int
	}

	reqs := make([]request, len(hosts))
	for i, h := range hosts {
		p, err := PrefixForHosts(h)
		if err != nil {
			return nil, err
		}
		reqs[i] = request{pos: i, hosts: h, prefix: p}
	}

	// Largest-first keeps every cursor position aligned for the block
	// that lands on it; ascending block count is descending block size.
	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].prefix < reqs[j].prefix
	})

	base := uint64(addrValue(n.Address()))
	end := base + n.Size() // one past the broadcast address
	cursor := base

	placed := make([]Subnet, 0, len(reqs))
	ordered := make([]Subnet, len(reqs))
	for _, r := range reqs {
		remaining := uint64(0)
		if cursor < end {
			remaining = end - cursor
		}
		if r.prefix < 0 {
			return nil, &OutOfSpaceError{Hosts: r.hosts, Remaining: remaining, Placed: placed}
		}

		size := uint64(1) << (32 - r.prefix)
		start := (cursor + size - 1) &^ (size - 1)
		if start+size > end {
			return nil, &OutOfSpaceError{Hosts: r.hosts, Remaining: remaining, Placed: placed}
		}

		s := Subnet{
			Hosts:  r.hosts,
			Prefix: netip.PrefixFrom(addrFrom(uint32(start)), r.prefix),
		}
		placed = append(placed, s)
		ordered[r.pos] = s
		cursor = start + size
	}

	plan := &Plan{Network: n, Subnets: ordered}
	if cursor < end {
		plan.Leftover = &Leftover{
			Range: netipx.IPRangeFrom(addrFrom(uint32(cursor)), addrFrom(uint32(end-1))),
		}
	}
	return plan, nil
}
