package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Each grid cell is drawn two columns wide so it looks square.
const cellWidth = 2

// cellKind is what occupies a board cell.
type cellKind uint8

const (
	kindEmpty cellKind = iota
	kindFood
	kindBody
	kindHead
)

// Styles holds the lipgloss styles used for the board.
type Styles struct {
	Head   lipgloss.Style
	Body   lipgloss.Style
	Food   lipgloss.Style
	Empty  lipgloss.Style
	Board  lipgloss.Style
	Status lipgloss.Style
	Paused lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Head:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Body:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Food:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Board:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Paused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	}
}

// boardKinds lays the snapshot out as screen rows. Row 0 is the top of the
// grid (y = height-1) since +y is up in the simulation.
func boardKinds(snap snake.Snapshot) [][]cellKind {
	rows := make([][]cellKind, snap.Height)
	for r := range rows {
		rows[r] = make([]cellKind, snap.Width)
	}

	set := func(c snake.Cell, k cellKind) {
		if c.X < 0 || c.X >= snap.Width || c.Y < 0 || c.Y >= snap.Height {
			return
		}
		row := snap.Height - 1 - c.Y
		if rows[row][c.X] < k {
			rows[row][c.X] = k
		}
	}

	if snap.HasFood {
		set(snap.Food, kindFood)
	}
	for i, c := range snap.Snake {
		if i == 0 {
			set(c, kindHead)
		} else {
			set(c, kindBody)
		}
	}
	return rows
}

// RenderBoard draws the bordered grid.
func RenderBoard(snap snake.Snapshot, st Styles) string {
	glyphs := map[cellKind]string{
		kindEmpty: st.Empty.Render("· "),
		kindFood:  st.Food.Render("◆ "),
		kindBody:  st.Body.Render("▓▓"),
		kindHead:  st.Head.Render("██"),
	}

	var sb strings.Builder
	for r, row := range boardKinds(snap) {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for _, k := range row {
			sb.WriteString(glyphs[k])
		}
	}
	return st.Board.Render(sb.String())
}

// RenderStatus draws the one-line status under the board.
func RenderStatus(snap snake.Snapshot, paused bool, st Styles) string {
	status := st.Status.Render(fmt.Sprintf("Length %d  Eaten %d  Best %d  Deaths %d",
		len(snap.Snake), snap.Stats.Eaten, snap.Stats.Longest, snap.Stats.Deaths))
	if paused {
		status += "  " + st.Paused.Render("PAUSED")
	}
	return status
}

// RequiredSize returns the terminal size needed for a grid: the board,
// its border, the status line and the help line.
func RequiredSize(gridW, gridH int) (cols, rows int) {
	return gridW*cellWidth + 2, gridH + 2 + 2
}
