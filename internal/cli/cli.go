// internal/cli/cli.go
//
// Terminal presentation and input loop.
// Responsibilities:
//   - Greeting, how-to-play text, difficulty selection (E/M/H).
//   - Render-prompt-execute loop over the board engine.
//   - Tile legend: `-` undug, `F` flagged, `M` mine, digits 0–8.
//   - Win/loss banners and the play-again prompt.
//
// All reads and writes go through injected io.Reader/io.Writer so the
// whole session can be driven from a test. Styling is lipgloss, which
// degrades to plain text on dumb terminals.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/olivegray/minesweeper/internal/command"
	"github.com/olivegray/minesweeper/internal/game"
)

const howToPlay = `
The goal of the game is to find where all mines in a minefield are located
without accidentally triggering one!
Dig (D): reveals an undug location (shown as '-').
	 Revealing a mine ('M') loses the game.
	 A revealed number is the count of mines in the 8 surrounding squares.
	 Revealing a zero automatically digs its mine-free surroundings.
Flag (F): marks an undug location as a suspected mine ('F').
	 Flagging a flagged location returns it to undug.
	 Flagged locations are protected and cannot be dug up.
Type the action letter followed by the row and column as displayed,
e.g. 'D 5 6' digs 5 rows down and 6 columns over. 'H' asks for a hint,
'Q' quits. To win, dig up every location that is not a mine!`

// Classic minesweeper number palette, indexed by adjacency count.
var numberColors = []string{"", "12", "10", "9", "4", "1", "6", "13", "8"}

var (
	undugStyle = lipgloss.NewStyle().Faint(true)
	flagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	mineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	zeroStyle  = lipgloss.NewStyle().Faint(true)
)

// CLI runs interactive game sessions over a line-based terminal.
type CLI struct {
	in  *bufio.Scanner
	out io.Writer
}

// New constructs a CLI reading moves from in and rendering to out.
func New(in io.Reader, out io.Writer) *CLI {
	return &CLI{in: bufio.NewScanner(in), out: out}
}

// Run plays games until the player declines a rematch, quits, or input
// runs out. The only errors surfaced are engine construction failures;
// everything the player can type wrong is handled with a reprompt.
func (c *CLI) Run() error {
	fmt.Fprintln(c.out, "Welcome to Minesweeper!")
	if yes, ok := c.askYesNo("Would you like to see how to play? (Y/N): "); ok && yes {
		fmt.Fprintln(c.out, howToPlay)
	}

	for {
		diff, ok := c.askDifficulty()
		if !ok {
			return nil
		}
		board, err := game.New(diff.Rows, diff.Cols, diff.Mines)
		if err != nil {
			return fmt.Errorf("cli: construct board: %w", err)
		}
		log.Debug().
			Str("difficulty", diff.Name).
			Int("rows", diff.Rows).
			Int("cols", diff.Cols).
			Int("mines", diff.Mines).
			Msg("new game")

		if quit := c.playOne(board); quit {
			return nil
		}
		again, ok := c.askYesNo("Would you like to play again? (Y/N): ")
		if !ok || !again {
			fmt.Fprintln(c.out, "Thanks for playing!")
			return nil
		}
	}
}

// playOne drives a single game to quit, win, or loss.
// Returns true when the player quit (or input ran out) mid-game.
func (c *CLI) playOne(board *game.Board) (quit bool) {
	for {
		fmt.Fprint(c.out, renderView(board.RenderView()))
		line, ok := c.readLine("Please input next move: ")
		if !ok {
			return true
		}
		cmd, err := command.Parse(line)
		if err != nil {
			if !errors.Is(err, command.ErrEmpty) {
				fmt.Fprintln(c.out, "Input not recognized. Try again! ("+trimPrefix(err)+")")
			}
			continue
		}

		switch cmd.Action {
		case command.Quit:
			return true

		case command.Hint:
			if row, col, ok := board.Hint(); ok {
				fmt.Fprintf(c.out, "Hint: row %d column %d is safe to dig.\n", row+1, col+1)
			} else {
				fmt.Fprintln(c.out, "No safe squares left to hint at!")
			}

		case command.Flag:
			if err := board.Flag(cmd.Row, cmd.Col); err != nil {
				fmt.Fprintln(c.out, "That location is out of bounds. Try again!")
			}

		case command.Dig:
			outcome, err := board.Dig(cmd.Row, cmd.Col)
			if err != nil {
				fmt.Fprintln(c.out, "That location is out of bounds. Try again!")
				continue
			}
			switch outcome {
			case game.Loss:
				fmt.Fprint(c.out, renderView(board.RenderView()))
				fmt.Fprintln(c.out, "BOOM! You hit a mine and have lost!")
				return false
			case game.Win:
				fmt.Fprint(c.out, renderView(board.RenderView()))
				fmt.Fprintln(c.out, "Congratulations! You have cleared the minefield!")
				return false
			}
		}
	}
}

// askDifficulty prompts until the player picks a preset; ok is false
// when input runs out first.
func (c *CLI) askDifficulty() (game.Difficulty, bool) {
	names := make([]string, len(game.Difficulties))
	for i, d := range game.Difficulties {
		names[i] = fmt.Sprintf("%s (%s)", d.Name, d.Name[:1])
	}
	prompt := "Please select a difficulty - " + strings.Join(names, ", ") + ": "
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return game.Difficulty{}, false
		}
		if d, found := game.DifficultyByName(strings.TrimSpace(line)); found {
			return d, true
		}
		fmt.Fprintln(c.out, "Input not recognized. Try again!")
	}
}

// askYesNo prompts until it gets a Y or N; ok is false when input runs
// out first.
func (c *CLI) askYesNo(prompt string) (yes bool, ok bool) {
	for {
		line, readOK := c.readLine(prompt)
		if !readOK {
			return false, false
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "Y", "YES":
			return true, true
		case "N", "NO":
			return false, true
		}
		fmt.Fprintln(c.out, "Input not recognized. Try again!")
	}
}

// readLine prints a prompt and reads one line; ok is false at EOF.
func (c *CLI) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		return "", false
	}
	return c.in.Text(), true
}

// renderView draws the board with 1-indexed rulers on all four sides,
// matching the coordinates the command grammar expects.
func renderView(v game.View) string {
	var sb strings.Builder

	ruler := "       "
	for col := 1; col <= v.Cols; col++ {
		ruler += fmt.Sprintf("%-3s", strconv.Itoa(col))
	}
	barrier := "   " + strings.Repeat("=", v.Cols*3+6)

	sb.WriteString(ruler + "\n" + barrier + "\n")
	for r, row := range v.Tiles {
		sb.WriteString(fmt.Sprintf("%-2d || ", r+1))
		for _, t := range row {
			sb.WriteString(" " + tileString(t) + " ")
		}
		sb.WriteString(fmt.Sprintf("|| %d\n", r+1))
	}
	sb.WriteString(barrier + "\n" + ruler + "\n")
	sb.WriteString(fmt.Sprintf("Mines remaining: %d\n", v.MinesRemaining))
	return sb.String()
}

// tileString maps one tile to its styled single-character legend.
func tileString(t game.Tile) string {
	switch t.Kind {
	case game.TileFlag:
		return flagStyle.Render("F")
	case game.TileMine:
		return mineStyle.Render("M")
	case game.TileNumber:
		if t.Number == 0 {
			return zeroStyle.Render("0")
		}
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(numberColors[t.Number])).
			Render(strconv.Itoa(t.Number))
	default:
		return undugStyle.Render("-")
	}
}

// trimPrefix strips the package prefix from parser errors before they
// reach the player.
func trimPrefix(err error) string {
	return strings.TrimPrefix(err.Error(), "command: ")
}
