package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/verte-zerg/tuimul/internal/catalog"
	"github.com/verte-zerg/tuimul/internal/game"
)

const (
	markCorrect = "✓"
	markWrong   = "✗"
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorReset  = "\x1b[0m"
)

// RenderTables prints the questions of each table.
func RenderTables(w io.Writer, tables []catalog.Table) error {
	if len(tables) == 0 {
		_, err := fmt.Fprintln(w, "No tables.")
		return err
	}
	for i, table := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w, ""); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%d times table (%d questions)\n", table.Factor, len(table.Questions)); err != nil {
			return err
		}
		rows := make([][]string, 0, len(table.Questions))
		for n, q := range table.Questions {
			rows = append(rows, []string{strconv.Itoa(n + 1), q.Text, strconv.Itoa(q.Answer)})
		}
		lines := formatTable([]string{"#", "Question", "Answer"}, rows, map[int]bool{0: true, 2: true})
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReviewLines formats the answered questions of a session, one line per row.
func ReviewLines(attempts []game.Attempt) []string {
	if len(attempts) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(attempts))
	for _, a := range attempts {
		mark := markWrong
		if a.Correct {
			mark = markCorrect
		}
		rows = append(rows, []string{mark, a.Question.Text, strconv.Itoa(a.Given), strconv.Itoa(a.Question.Answer)})
	}
	return formatTable([]string{"", "Question", "Yours", "Answer"}, rows, map[int]bool{2: true, 3: true})
}

// RenderReview prints the per-question review, coloured when w is a terminal.
func RenderReview(w io.Writer, snap game.Snapshot) error {
	if _, err := fmt.Fprintf(w, "%d times table: %s correct\n", snap.TableFactor, snap.Score()); err != nil {
		return err
	}
	lines := ReviewLines(snap.Attempts)
	useColor := isTerminal(w)
	for i, line := range lines {
		if useColor && i > 0 {
			color := colorRed
			if snap.Attempts[i-1].Correct {
				color = colorGreen
			}
			line = color + line + colorReset
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
