package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

type model struct {
	cpu    *CPU
	offset uint16 // only for drawing pageTable
	prevPC uint16
	err    error
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m model) Init() tea.Cmd {
	m.cpu.Reg.PC = m.offset
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.Reg.PC
			if err := m.cpu.Tick(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders sixteen bytes of the address space as a line, with
// the byte at PC (if any) bracketed.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.cpu.mmu.GetByte(addr)
		if addr == m.cpu.Reg.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	r := &m.cpu.Reg
	var flags string
	for _, set := range []bool{r.ZFlag(), r.NFlag(), r.HFlag(), r.CFlag()} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
SP: %04x
 A: %02x   F: %02x
 B: %02x   C: %02x
 D: %02x   E: %02x
 H: %02x   L: %02x
CYC: %d  IME: %v  HALT: %v
Z N H C
`,
		r.PC, m.prevPC,
		r.SP,
		r.A, r.F,
		r.B, r.C,
		r.D, r.E,
		r.H, r.L,
		m.cpu.RemainingCycles(), m.cpu.IME, m.cpu.IsHalted,
	) + flags
}

func (m model) pageTable() string {
	header := "addr | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	base := m.cpu.Reg.PC &^ 0x0F
	pages := []string{header}
	for row := -2; row <= 2; row++ {
		pages = append(pages, m.renderPage(uint16(int(base)+row*16)))
	}
	return strings.Join(pages, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	opcode := m.cpu.mmu.GetByte(m.cpu.Reg.PC)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(primaryTable[opcode]),
	)
}

// Debug starts an interactive TUI stepping c one Tick at a time from PC=
// offset, rendering the address space around PC and the full register
// file after each step.
func Debug(c *CPU, offset uint16) error {
	m, err := tea.NewProgram(model{cpu: c, offset: offset}).Run()
	if err != nil {
		return err
	}
	if x := m.(model); x.err != nil {
		return x.err
	}
	return nil
}
