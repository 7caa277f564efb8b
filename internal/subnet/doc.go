// Package subnet computes power-of-two subnet plans for IPv4 networks.
//
// Given a parent network and a list of required usable-host counts, the
// allocator carves one subnet per requirement out of the parent, each
// sized to the smallest CIDR block whose usable-host capacity covers
// the request, and reports any unused tail of the parent as a leftover
// range.
//
// # Allocation
//
//	n, err := subnet.ParseNetwork("192.168.1.0/24")
//	plan, err := subnet.Allocate(n, []int{59, 15, 7, 2, 29})
//	for _, s := range plan.Subnets {
//	    fmt.Println(s.Prefix, s.UsableHosts(), s.Wasted())
//	}
//
// Blocks are placed largest-first: every block of size 2^k must start
// on a multiple of 2^k, and placing smaller blocks first can strand a
// larger block on alignment even when enough raw space remains. The
// returned plan lists subnets in the caller's order regardless of
// where they were physically placed.
//
// # Errors
//
// A non-positive host count or a malformed network is reported as
// ErrInvalidInput before anything is placed. When the parent cannot
// hold every request the allocator returns an *OutOfSpaceError naming
// the requirement that did not fit, the free space at that point, and
// the subnets placed before the failure.
//
// All values are immutable; Allocate is a pure function and safe to
// call concurrently.
package subnet
