package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/newjenk/gridsystem/pkg/grid"
)

// inspectCommand opens the interactive cascade viewer.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		src     blockSource
		profile string
	)

	cmd := &cobra.Command{
		Use:   "inspect <block> [key=value...]",
		Short: "Step through the breakpoint cascade interactively",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			return completeBlockNames(args), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			k, attrs, err := src.load(args)
			if err != nil {
				return err
			}
			p, err := c.profileOr(profile)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(NewCascadeModel(k, attrs, p), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&src.file, "file", "", "read the block from a document")
	cmd.Flags().IntVar(&src.index, "index", 0, "block position in the document (pre-order)")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "initial emission profile: canonical, legacy")

	return cmd
}

// =============================================================================
// Key bindings
// =============================================================================

type cascadeKeys struct {
	Prev    key.Binding
	Next    key.Binding
	First   key.Binding
	Last    key.Binding
	Profile key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k cascadeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Profile, k.Help, k.Quit}
}

func (k cascadeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Profile, k.Help, k.Quit},
	}
}

var defaultCascadeKeys = cascadeKeys{
	Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "narrower")),
	Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "wider")),
	First:   key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "xs")),
	Last:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "xl")),
	Profile: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "toggle profile")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// =============================================================================
// CascadeModel
// =============================================================================

var (
	tabActive   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
	tabNormal   = lipgloss.NewStyle().Foreground(colorWhite)
	tabHidden   = lipgloss.NewStyle().Foreground(colorDim)
	tokenActive = lipgloss.NewStyle().Foreground(colorBlue).Bold(true).Reverse(true)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// CascadeModel is the bubbletea model of the inspect command. It shows one
// breakpoint at a time: the effective values there, where they came from,
// and the classes that breakpoint contributes.
type CascadeModel struct {
	Kind    *grid.Kind
	Attrs   grid.Attributes
	Profile grid.Profile
	Cursor  grid.Breakpoint

	res   grid.Resolution
	trace grid.Trace
	keys  cascadeKeys
	help  help.Model
}

// NewCascadeModel resolves attrs and starts at xs.
func NewCascadeModel(k *grid.Kind, attrs grid.Attributes, p grid.Profile) CascadeModel {
	m := CascadeModel{
		Kind:    k,
		Attrs:   attrs,
		Profile: p,
		Cursor:  grid.XS,
		keys:    defaultCascadeKeys,
		help:    help.New(),
	}
	m.res = grid.Resolve(k, attrs)
	m.trace = grid.Emit(k, attrs, p)
	return m
}

func (m CascadeModel) Init() tea.Cmd {
	return nil
}

func (m CascadeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			if prev, ok := m.Cursor.Prev(); ok {
				m.Cursor = prev
			}
		case key.Matches(msg, m.keys.Next):
			if m.Cursor < grid.XL {
				m.Cursor++
			}
		case key.Matches(msg, m.keys.First):
			m.Cursor = grid.XS
		case key.Matches(msg, m.keys.Last):
			m.Cursor = grid.XL
		case key.Matches(msg, m.keys.Profile):
			if m.Profile == grid.Canonical {
				m.Profile = grid.Legacy
			} else {
				m.Profile = grid.Canonical
			}
			m.trace = grid.Emit(m.Kind, m.Attrs, m.Profile)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m CascadeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Kind.BlockName()))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s profile", m.Profile)))
	b.WriteString("\n\n")

	// Breakpoint strip
	tabs := make([]string, 0, grid.NumBreakpoints)
	for _, bp := range grid.Breakpoints() {
		label := " " + bp.String() + " "
		switch {
		case bp == m.Cursor:
			tabs = append(tabs, tabActive.Render(label))
		case m.res.Hidden[bp]:
			tabs = append(tabs, tabHidden.Render(label))
		default:
			tabs = append(tabs, tabNormal.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, StyleDim.Render("│")))
	b.WriteString("\n")

	b.WriteString(panelStyle.Render(m.panel()))
	b.WriteString("\n\n")
	b.WriteString(m.classLine())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// panel describes the breakpoint under the cursor.
func (m CascadeModel) panel() string {
	var b strings.Builder
	r := grid.RangeOf(m.Cursor)
	b.WriteString(StyleValue.Render(r.Label))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(r.Help()))
	b.WriteString("\n\n")

	if m.Kind.Visibility && m.res.Hidden[m.Cursor] {
		b.WriteString(styleHidden.Render("hidden at this breakpoint"))
		b.WriteString("\n")
	}
	for _, p := range m.Kind.Properties {
		e, _ := m.res.Value(m.Cursor, p.Name)
		src := styleInherited.Render(e.Source())
		if e.Explicit {
			src = styleSet.Render(e.Source())
		}
		fmt.Fprintf(&b, "%-16s %-8s %s\n", p.Name, StyleValue.Render(e.Token), src)
	}
	if help := grid.SizeHelp(m.res, m.Cursor); help != "" {
		b.WriteString(StyleDim.Render(help))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	toks := m.trace.At(m.Cursor)
	if len(toks) == 0 {
		b.WriteString(StyleDim.Render("no classes at this breakpoint"))
		return b.String()
	}
	for i, tok := range toks {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s", StyleClass.Render(tok.Class), StyleDim.Render(tok.Reason.String()))
	}
	return b.String()
}

// classLine prints the full class string, highlighting the tokens of the
// breakpoint under the cursor.
func (m CascadeModel) classLine() string {
	parts := make([]string, len(m.trace.Tokens))
	for i, tok := range m.trace.Tokens {
		if tok.Reason != grid.ReasonStatic && tok.Breakpoint == m.Cursor {
			parts[i] = tokenActive.Render(tok.Class)
		} else {
			parts[i] = StyleClass.Render(tok.Class)
		}
	}
	return strings.Join(parts, " ")
}
