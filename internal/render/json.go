package render

import (
	"encoding/json"
	"io"

	"github.com/fieldops/subnet-ctl/internal/subnet"
)

// jsonPlan is the machine-readable shape of a plan.
type jsonPlan struct {
	Message  string        `json:"message"`
	Network  string        `json:"network"`
	Subnets  []jsonSubnet  `json:"subnets"`
	Leftover *jsonLeftover `json:"leftover,omitempty"`
}

type jsonSubnet struct {
	HostsRequired int    `json:"hosts_required"`
	SubnetID      string `json:"subnet_id"`
	MaskLen       int    `json:"mask_len"`
	Mask          string `json:"mask"`
	UsableHosts   uint64 `json:"usable_hosts"`
	FirstHost     string `json:"first_host,omitempty"`
	LastHost      string `json:"last_host,omitempty"`
	Broadcast     string `json:"broadcast_addr"`
	Wasted        uint64 `json:"wasted"`
}

type jsonLeftover struct {
	First     string   `json:"first"`
	Last      string   `json:"last"`
	Size      uint64   `json:"size"`
	PrefixLen int      `json:"prefix_len"`
	CIDRs     []string `json:"cidrs"`
}

// JSON writes the plan as indented JSON.
func JSON(w io.Writer, plan *subnet.Plan) error {
	out := jsonPlan{
		Message: "subnet plan for " + plan.Network.String(),
		Network: plan.Network.String(),
		Subnets: make([]jsonSubnet, 0, len(plan.Subnets)),
	}

	for _, s := range plan.Subnets {
		js := jsonSubnet{
			HostsRequired: s.Hosts,
			SubnetID:      s.Network().String(),
			MaskLen:       s.Prefix.Bits(),
			Mask:          s.Mask(),
			UsableHosts:   s.UsableHosts(),
			Broadcast:     s.Broadcast().String(),
			Wasted:        s.Wasted(),
		}
		if s.FirstHost().IsValid() {
			js.FirstHost = s.FirstHost().String()
			js.LastHost = s.LastHost().String()
		}
		out.Subnets = append(out.Subnets, js)
	}

	if l := plan.Leftover; l != nil {
		jl := &jsonLeftover{
			First:     l.Range.From().String(),
			Last:      l.Range.To().String(),
			Size:      l.Size(),
			PrefixLen: l.PrefixLen(),
		}
		for _, p := range l.Prefixes() {
			jl.CIDRs = append(jl.CIDRs, p.String())
		}
		out.Leftover = jl
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
