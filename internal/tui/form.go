// Package tui provides the interactive front end for subnet-ctl
package tui

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fieldops/subnet-ctl/internal/config"
	"github.com/fieldops/subnet-ctl/internal/subnet"
)

// step identifies the current form step.
type step int

const (
	stepNetwork step = iota
	stepHosts
	stepResults
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

// Model drives the interactive subnet calculator form.
type Model struct {
	step     step
	defaults config.Defaults
	binary   bool

	networkInput textinput.Model
	hostsInput   textinput.Model

	// Collected values
	network subnet.Network
	hosts   []int

	plan    *subnet.Plan
	results table.Model
	errMsg  string

	quitting bool
	width    int
	height   int
}

// New creates the form model with the given front-end defaults.
func New(defaults config.Defaults) Model {
	ni := textinput.New()
	ni.Placeholder = "192.168.1.0/24"
	ni.Focus()
	ni.CharLimit = 18
	ni.Width = 40

	hi := textinput.New()
	hi.Placeholder = "59 15 7 2 29"
	hi.CharLimit = 256
	hi.Width = 60

	return Model{
		step:         stepNetwork,
		defaults:     defaults,
		binary:       defaults.Binary,
		networkInput: ni,
		hostsInput:   hi,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEsc {
			return m.handleBack()
		}
	}

	switch m.step {
	case stepNetwork:
		return m.updateNetwork(msg)
	case stepHosts:
		return m.updateHosts(msg)
	case stepResults:
		return m.updateResults(msg)
	}
	return m, nil
}

func (m Model) handleBack() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepNetwork:
		// Esc at the first step quits
		m.quitting = true
		return m, tea.Quit
	case stepHosts:
		m.step = stepNetwork
		m.errMsg = ""
		m.hostsInput.Blur()
		m.networkInput.Focus()
		return m, textinput.Blink
	case stepResults:
		m.step = stepHosts
		m.errMsg = ""
		m.hostsInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateNetwork(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		text := strings.TrimSpace(m.networkInput.Value())
		if text == "" {
			return m, nil
		}
		n, err := subnet.ParseNetwork(text)
		if err != nil {
			m.errMsg = fmt.Sprintf("Enter a valid IPv4 network like 192.168.1.0/24 (%v)", err)
			return m, nil
		}
		m.network = n
		m.errMsg = ""
		m.step = stepHosts
		m.networkInput.Blur()
		m.hostsInput.Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.networkInput, cmd = m.networkInput.Update(msg)
	return m, cmd
}

func (m Model) updateHosts(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
		hosts, err := parseHosts(m.hostsInput.Value())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}

		plan, err := subnet.Allocate(m.network, hosts)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}

		m.hosts = hosts
		m.plan = plan
		m.errMsg = ""
		m.results = newResultsTable(plan, m.binary, m.defaults.TableRows)
		m.step = stepResults
		m.hostsInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.hostsInput, cmd = m.hostsInput.Update(msg)
	return m, cmd
}

func (m Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "n":
			// Start over
			m.step = stepNetwork
			m.plan = nil
			m.errMsg = ""
			m.networkInput.SetValue("")
			m.hostsInput.SetValue("")
			m.networkInput.Focus()
			return m, textinput.Blink
		case "b":
			m.binary = !m.binary
			m.results = newResultsTable(m.plan, m.binary, m.defaults.TableRows)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("IPv4 Subnet Calculator"))
	b.WriteString("\n")

	switch m.step {
	case stepNetwork:
		b.WriteString(labelStyle.Render("IPv4 network with prefix length:"))
		b.WriteString("\n")
		b.WriteString(m.networkInput.View())
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Enter to continue, Esc to quit."))
	case stepHosts:
		b.WriteString(fmt.Sprintf("Network: %s\n\n", valueStyle.Render(m.network.String())))
		b.WriteString(labelStyle.Render("Required host counts, separated by spaces:"))
		b.WriteString("\n")
		b.WriteString(m.hostsInput.View())
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("Enter to calculate, Esc to go back."))
	case stepResults:
		b.WriteString(fmt.Sprintf("Plan for %s\n\n", valueStyle.Render(m.network.String())))
		b.WriteString(m.results.View())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("[n] New calculation  [b] Toggle binary  [q] Quit  [esc] Back"))
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("✗ " + m.errMsg))
	}

	return b.String()
}

// Plan returns the last computed plan, nil before the first calculation.
func (m Model) Plan() *subnet.Plan {
	return m.plan
}

// Run runs the interactive form until the user quits.
func Run(defaults config.Defaults) error {
	p := tea.NewProgram(New(defaults), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// parseHosts splits a space-separated list of positive integers.
func parseHosts(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("enter at least one host count")
	}

	hosts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", f)
		}
		if n <= 0 {
			return nil, fmt.Errorf("host counts must be positive, got %d", n)
		}
		hosts = append(hosts, n)
	}
	return hosts, nil
}

func newResultsTable(plan *subnet.Plan, binary bool, rows int) table.Model {
	addrWidth := 15
	if binary {
		addrWidth = 35
	}
	// The leftover row shows a first-last range in the subnet column.
	subnetWidth := addrWidth + 3
	if plan.Leftover != nil {
		subnetWidth = 2*addrWidth + 1
	}

	columns := []table.Column{
		{Title: "Hosts", Width: 6},
		{Title: "Subnet", Width: subnetWidth},
		{Title: "Mask", Width: addrWidth},
		{Title: "First", Width: addrWidth},
		{Title: "Last", Width: addrWidth},
		{Title: "Broadcast", Width: addrWidth},
		{Title: "Usable", Width: 7},
		{Title: "Wasted", Width: 7},
	}

	tableRows := make([]table.Row, 0, len(plan.Subnets)+1)
	for _, s := range plan.Subnets {
		tableRows = append(tableRows, table.Row{
			strconv.Itoa(s.Hosts),
			renderPrefix(s.Prefix, binary),
			renderMask(s, binary),
			renderAddr(s.FirstHost(), binary),
			renderAddr(s.LastHost(), binary),
			renderAddr(s.Broadcast(), binary),
			strconv.FormatUint(s.UsableHosts(), 10),
			strconv.FormatUint(s.Wasted(), 10),
		})
	}
	if l := plan.Leftover; l != nil {
		tableRows = append(tableRows, table.Row{
			"-",
			renderAddr(l.Range.From(), binary) + "-" + renderAddr(l.Range.To(), binary),
			"-", "-", "-", "-",
			strconv.FormatUint(l.Size(), 10),
			"-",
		})
	}

	height := rows
	if len(tableRows) < height {
		height = len(tableRows)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithHeight(height),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("39"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return t
}

func renderAddr(a netip.Addr, binary bool) string {
	if !a.IsValid() {
		return "-"
	}
	if binary {
		return subnet.ToBinary(a)
	}
	return a.String()
}

func renderPrefix(p netip.Prefix, binary bool) string {
	if binary {
		return fmt.Sprintf("%s/%d", subnet.ToBinary(p.Addr()), p.Bits())
	}
	return p.String()
}

func renderMask(s subnet.Subnet, binary bool) string {
	if binary {
		a, err := netip.ParseAddr(s.Mask())
		if err != nil {
			return "-"
		}
		return subnet.ToBinary(a)
	}
	return s.Mask()
}
