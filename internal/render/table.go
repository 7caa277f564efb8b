// Package render formats subnet plans for terminal and machine output.
package render

import (
	"fmt"
	"io"
	"net/netip"
	"text/tabwriter"

	"github.com/fieldops/subnet-ctl/internal/subnet"
)

// Table writes one row per requested subnet in input order, followed
// by a leftover row when the plan has one. With binary set, addresses
// and masks render as dotted 8-bit binary groups.
func Table(w io.Writer, plan *subnet.Plan, binary bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HOSTS\tSUBNET\tMASK\tFIRST\tLAST\tBROADCAST\tUSABLE\tWASTED")
	fmt.Fprintln(tw, "-----\t------\t----\t-----\t----\t---------\t------\t------")

	for _, s := range plan.Subnets {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			s.Hosts,
			prefixCell(s.Prefix, binary),
			maskCell(s, binary),
			addrCell(s.FirstHost(), binary),
			addrCell(s.LastHost(), binary),
			addrCell(s.Broadcast(), binary),
			s.UsableHosts(),
			s.Wasted(),
		)
	}

	if l := plan.Leftover; l != nil {
		fmt.Fprintf(tw, "-\t%s\t-\t-\t-\t-\t%d\t-\n",
			rangeCell(l, binary), l.Size())
	}

	return tw.Flush()
}

func addrCell(a netip.Addr, binary bool) string {
	if !a.IsValid() {
		return "-"
	}
	if binary {
		return subnet.ToBinary(a)
	}
	return a.String()
}

func prefixCell(p netip.Prefix, binary bool) string {
	if binary {
		return fmt.Sprintf("%s/%d", subnet.ToBinary(p.Addr()), p.Bits())
	}
	return p.String()
}

func maskCell(s subnet.Subnet, binary bool) string {
	if binary {
		a, err := netip.ParseAddr(s.Mask())
		if err != nil {
			return "-"
		}
		return subnet.ToBinary(a)
	}
	return s.Mask()
}

func rangeCell(l *subnet.Leftover, binary bool) string {
	return fmt.Sprintf("%s-%s",
		addrCell(l.Range.From(), binary), addrCell(l.Range.To(), binary))
}
