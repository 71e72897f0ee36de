package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/venndial/venndial/pkg/diagram"
	"github.com/venndial/venndial/pkg/pipeline"
	"github.com/venndial/venndial/pkg/search"
)

// progressMsg carries one iteration's state from the search goroutine.
type progressMsg struct {
	iter int
	best *search.Result
}

// doneMsg carries the finished run (or its error).
type doneMsg struct {
	result *pipeline.SearchResult
	err    error
}

// searchModel is the bubbletea model for live search progress.
type searchModel struct {
	total  int
	iter   int
	best   *search.Result
	result *pipeline.SearchResult
	err    error
}

func newSearchModel(total int) searchModel {
	return searchModel{total: total}
}

func (m searchModel) Init() tea.Cmd {
	return nil
}

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case progressMsg:
		m.iter = msg.iter
		m.best = msg.best
	case doneMsg:
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m searchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Searching"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q quit"))
	b.WriteString("\n\n")

	b.WriteString(renderBar(m.iter+1, m.total, 40))
	fmt.Fprintf(&b, " %d/%d\n\n", m.iter+1, m.total)

	if m.best != nil {
		fmt.Fprintf(&b, "best fitness  %s\n", StyleValue.Render(fmt.Sprintf("%.4f", m.best.Fitness)))
		fmt.Fprintf(&b, "regions       %s\n", StyleValue.Render(fmt.Sprintf("%d", m.best.Metrics.RegionCount())))
		fmt.Fprintf(&b, "found at      %s\n", StyleDim.Render(fmt.Sprintf("iteration %d (%s)", m.best.Iteration, m.best.Phase)))
	} else {
		b.WriteString(StyleDim.Render("no valid candidate yet"))
		b.WriteString("\n")
	}

	return b.String()
}

// renderBar draws a fixed-width progress bar.
func renderBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	return StyleValue.Render(strings.Repeat("█", filled)) + StyleDim.Render(strings.Repeat("░", width-filled))
}

// searchWithTUI runs the search behind a live bubbletea progress view.
func (c *CLI) searchWithTUI(ctx context.Context, runner *pipeline.Runner, target diagram.Target, opts pipeline.Options) (*pipeline.SearchResult, error) {
	p := tea.NewProgram(newSearchModel(opts.Iterations), tea.WithContext(ctx))

	opts.Progress = func(iter int, best *search.Result) {
		p.Send(progressMsg{iter: iter, best: best})
	}

	go func() {
		result, err := runner.Search(ctx, target, opts)
		p.Send(doneMsg{result: result, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := final.(searchModel)
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		// Quit before completion counts as cancellation.
		return nil, context.Canceled
	}
	return m.result, nil
}
