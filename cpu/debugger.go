package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// trace prints a single disassembly line before op executes: the
// instruction's starting address, its raw bytes (opcode plus any
// immediate operand), and its mnemonic. Bytes are re-read directly from
// the bus rather than consumed from PC, so tracing has no effect on
// execution.
func (c *Cpu) trace(startPC uint16, op Opcode, opcodeBytes []byte) {
	raw := make([]byte, op.Length)
	for i := range raw {
		raw[i] = c.Bus.Read(startPC + uint16(i))
	}
	fmt.Printf("%04X  % -9X %s\n", startPC, raw, op.Name)
}

// dumpState is a flat snapshot of everything a fault report needs. It
// exists so RegisterDump never hands go-spew the Cpu struct directly —
// that would walk into Bus and dump the VRAM/WRAM/HRAM arrays byte by
// byte, which is useless noise in a crash report.
type dumpState struct {
	PC, SP, AF, BC, DE, HL uint16
	A                      byte
	Flags                  struct{ Z, N, H, C bool }
	CycleCount             uint64
	InterruptsEnabled      bool
}

// RegisterDump renders the register file via go-spew, for use at a fatal
// Step error: the CLI prints this, then exits.
func (c *Cpu) RegisterDump() string {
	d := dumpState{
		PC:                c.PC.Read(),
		SP:                c.SP.Read(),
		AF:                c.AF.Read(),
		BC:                c.BC.Read(),
		DE:                c.DE.Read(),
		HL:                c.HL.Read(),
		A:                 c.AF.A(),
		CycleCount:        c.CycleCount,
		InterruptsEnabled: c.InterruptsEnabled,
	}
	d.Flags.Z, d.Flags.N, d.Flags.H, d.Flags.C = c.AF.Z(), c.AF.N(), c.AF.H(), c.AF.C()
	return spew.Sdump(d)
}

// model is the interactive single-step debugger: press space/j to execute
// one Step, q to quit. It's a thin wrapper over Cpu.Step, not a second
// execution path.
type model struct {
	cpu    *Cpu
	prevPC uint16
	err    error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.PC.Read()
			if err := m.cpu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// safeRead reads addr for display purposes, recovering from a bus fault
// (an unimplemented region under the cursor) into a placeholder rather
// than crashing the debugger.
func (m model) safeRead(addr uint16) (v byte, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return m.cpu.Bus.Read(addr), true
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := range uint16(16) {
		addr := start + i
		if b, ok := m.safeRead(addr); ok {
			if addr == m.cpu.PC.Read() {
				s += fmt.Sprintf("[%02x] ", b)
			} else {
				s += fmt.Sprintf(" %02x  ", b)
			}
		} else {
			s += "  --  "
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}
	pc := m.cpu.PC.Read()
	base := pc - pc%16
	rows := []string{header}
	for i := range uint16(5) {
		rows = append(rows, m.renderPage(base+16*i))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	flag := func(b bool, name string) string {
		if b {
			return name
		}
		return "-"
	}
	c := m.cpu
	return fmt.Sprintf(`
PC: %04x (was %04x)
SP: %04x
AF: %04x  A: %02x
BC: %04x
DE: %04x
HL: %04x
flags: %s %s %s %s
cycles: %d
`,
		c.PC.Read(), m.prevPC,
		c.SP.Read(),
		c.AF.Read(), c.AF.A(),
		c.BC.Read(),
		c.DE.Read(),
		c.HL.Read(),
		flag(c.AF.Z(), "Z"), flag(c.AF.N(), "N"), flag(c.AF.H(), "H"), flag(c.AF.C(), "C"),
		c.CycleCount,
	)
}

func (m model) View() string {
	var opLine string
	if op, ok := Opcodes[func() byte { v, _ := m.safeRead(m.cpu.PC.Read()); return v }()]; ok {
		opLine = spew.Sdump(op)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		opLine,
	)
}

// RunDebugger starts an interactive single-step TUI over c, starting at
// c.PC's current value.
func (c *Cpu) RunDebugger() error {
	m, err := tea.NewProgram(model{cpu: c}).Run()
	if err != nil {
		return err
	}
	if x := m.(model); x.err != nil {
		return x.err
	}
	return nil
}
