package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSession plays a scripted session and returns everything printed.
func runSession(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	c := New(strings.NewReader(script), &out)
	require.NoError(t, c.Run())
	return out.String()
}

func TestQuitImmediately(t *testing.T) {
	// Decline the tutorial, pick Easy, quit on the first move.
	out := runSession(t, "N\nE\nQ\n")

	assert.Contains(t, out, "Welcome to Minesweeper!")
	assert.Contains(t, out, "Please select a difficulty")
	assert.Contains(t, out, "Please input next move: ")
	assert.Contains(t, out, "Mines remaining: 10")
	assert.NotContains(t, out, "goal of the game") // tutorial stayed closed
}

func TestHowToPlayAndBadInputReprompts(t *testing.T) {
	out := runSession(t, "Y\nX\nE\nblah\nD 1\nQ\n")

	assert.Contains(t, out, "goal of the game")
	// One reprompt for the bogus difficulty, two for the bogus moves.
	assert.GreaterOrEqual(t, strings.Count(out, "Input not recognized. Try again!"), 3)
}

func TestFlagOutOfBounds(t *testing.T) {
	out := runSession(t, "N\nE\nF 99 99\nQ\n")
	assert.Contains(t, out, "That location is out of bounds. Try again!")
}

func TestDigOutOfBounds(t *testing.T) {
	// "D 0 0" parses but lands off-grid after 1-index conversion.
	out := runSession(t, "N\nE\nD 0 0\nQ\n")
	assert.Contains(t, out, "That location is out of bounds. Try again!")
}

func TestHintNamesASafeSquare(t *testing.T) {
	out := runSession(t, "N\nE\nH\nQ\n")
	assert.Contains(t, out, "Hint: row ")
}

func TestFlagShowsOnBoard(t *testing.T) {
	out := runSession(t, "N\nE\nF 1 1\nQ\n")
	// The second render carries the flag marker.
	assert.Contains(t, out, "F")
	assert.Contains(t, out, "Mines remaining: 9")
}

func TestSessionEndsCleanlyOnEOF(t *testing.T) {
	for _, script := range []string{"", "N\n", "N\nE\n", "N\nE\nD 1 1\n"} {
		var out bytes.Buffer
		c := New(strings.NewReader(script), &out)
		assert.NoError(t, c.Run(), "script %q", script)
	}
}

func TestDifficultySelection(t *testing.T) {
	out := runSession(t, "N\nM\nQ\n")
	assert.Contains(t, out, "Mines remaining: 40")
	// Medium is 15 columns; the ruler reaches 15.
	assert.Contains(t, out, "15")
}
