package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubetools/gocubing"
	"github.com/cubetools/gocubing/solver"
)

var (
	walkSize     int
	walkScramble string
)

var walkthroughCmd = &cobra.Command{
	Use:   "walkthrough [state]",
	Short: "Step through a solution interactively",
	Long: `Solve a cube and step through the solution stage by stage in an
interactive TUI.

Keyboard shortcuts:
  right/space/n - next stage
  left/p        - previous stage
  q/Esc         - quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWalkthrough,
}

func init() {
	walkthroughCmd.Flags().IntVar(&walkSize, "size", 3, "Cube size when using --scramble")
	walkthroughCmd.Flags().StringVar(&walkScramble, "scramble", "", "Scramble moves to apply to a solved cube")
	rootCmd.AddCommand(walkthroughCmd)
}

// Styles
var (
	walkTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	walkStageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	walkMoveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	walkHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// walkStep is one displayable step: the state after a stage ran.
type walkStep struct {
	name  string
	moves []string
	state string
}

type walkModel struct {
	size     int
	steps    []walkStep
	index    int
	quitting bool
}

func newWalkModel(start string, report *solver.Report) walkModel {
	steps := []walkStep{{name: "scrambled", state: start}}
	for _, st := range report.Stages {
		steps = append(steps, walkStep{name: st.Name, moves: st.Moves, state: st.State})
	}
	return walkModel{size: report.Size, steps: steps}
}

func (m walkModel) Init() tea.Cmd { return nil }

func (m walkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "right", " ", "n", "enter", "j":
			if m.index < len(m.steps)-1 {
				m.index++
			}
		case "left", "p", "k":
			if m.index > 0 {
				m.index--
			}
		}
	}
	return m, nil
}

func (m walkModel) View() string {
	if m.quitting {
		return ""
	}

	step := m.steps[m.index]

	var sb strings.Builder
	sb.WriteString(walkTitleStyle.Render(fmt.Sprintf("%dx%d walkthrough", m.size, m.size)))
	sb.WriteString("\n\n")
	sb.WriteString(walkStageStyle.Render(fmt.Sprintf("[%d/%d] %s", m.index, len(m.steps)-1, step.name)))
	sb.WriteString("\n")
	if len(step.moves) > 0 {
		sb.WriteString(walkMoveStyle.Render(strings.Join(step.moves, " ")))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if cube, err := gocubing.FromString(step.state); err == nil {
		sb.WriteString(RenderCube(cube))
	}

	sb.WriteString("\n")
	sb.WriteString(walkHelpStyle.Render("←/→ step through stages, q to quit"))
	sb.WriteString("\n")
	return sb.String()
}

func runWalkthrough(cmd *cobra.Command, args []string) error {
	var (
		cube *gocubing.Cube
		err  error
	)
	switch {
	case len(args) == 1:
		cube, err = cubeFromArg(args[0])
	case walkScramble != "":
		cube, err = cubeFromScramble(walkSize, walkScramble)
	default:
		return fmt.Errorf("need a state argument or --scramble")
	}
	if err != nil {
		return err
	}

	report, err := solver.SolveReport(cube)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newWalkModel(cube.String(), report))
	_, err = p.Run()
	return err
}
