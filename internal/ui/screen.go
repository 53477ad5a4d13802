// Package ui draws the board on a terminal and reads the player's input.
package ui

import (
	"log/slog"
	"sync"
	"unicode"

	"github.com/benbeisheim/chess-console/internal/boardgame"
	"github.com/benbeisheim/chess-console/internal/errors"
	"github.com/benbeisheim/chess-console/internal/model"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	boardTop    = 1
	boardLeft   = 3
	squareWidth = 3
	statusTop   = boardTop + 8 + 2
)

var (
	lightSquare  = tcell.StyleDefault.Background(tcell.ColorBurlyWood)
	darkSquare   = tcell.StyleDefault.Background(tcell.ColorSaddleBrown)
	markedSquare = tcell.StyleDefault.Background(tcell.ColorSteelBlue)
	labelStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	promptStyle  = tcell.StyleDefault.Bold(true)
)

// Screen renders matches on a tcell screen. It is not safe for concurrent use,
// except for Close.
type Screen struct {
	s         tcell.Screen
	glyphs    Glyphs
	promptY   int
	closeOnce sync.Once
	log       *slog.Logger
}

// NewScreen wraps an initialized tcell screen. ascii selects letters instead of
// chess symbols.
func NewScreen(s tcell.Screen, ascii bool) *Screen {
	glyphs := unicodeGlyphs
	if ascii {
		glyphs = asciiGlyphs
	}
	return &Screen{
		s:       s,
		glyphs:  glyphs,
		promptY: statusTop,
		log:     slog.Default().With("package", "ui"),
	}
}

// Close restores the terminal. A pending read returns ErrQuit. Only the first
// call has an effect, so Close may race with itself.
func (sc *Screen) Close() {
	sc.closeOnce.Do(sc.s.Fini)
}

// Glyphs draws pieces side by side with the screen's glyph set.
func (sc *Screen) Glyphs(pieces []*model.Piece) string {
	return sc.glyphs.String(pieces)
}

// Render clears the screen and draws the board, marking the squares in
// highlight, followed by the status lines.
func (sc *Screen) Render(pieces [][]*model.Piece, highlight boardgame.Mask, status []string) {
	sc.s.Clear()

	for row := range pieces {
		y := boardTop + row
		sc.drawText(1, y, labelStyle, string(rune('8'-row)))
		for column, piece := range pieces[row] {
			style := lightSquare
			if (row+column)%2 == 1 {
				style = darkSquare
			}
			if highlight.Has(boardgame.Position{Row: row, Column: column}) {
				style = markedSquare
			}
			if piece != nil {
				style = style.Foreground(pieceColor(piece.Color)).Bold(true)
			}
			x := boardLeft + column*squareWidth
			sc.s.SetContent(x, y, ' ', nil, style)
			sc.s.SetContent(x+1, y, sc.glyphs.Rune(piece), nil, style)
			sc.s.SetContent(x+2, y, ' ', nil, style)
		}
	}
	for column := 0; column < 8; column++ {
		sc.drawText(boardLeft+column*squareWidth+1, boardTop+len(pieces), labelStyle, string(rune('a'+column)))
	}

	for i, line := range status {
		sc.drawText(1, statusTop+i, tcell.StyleDefault, line)
	}
	sc.promptY = statusTop + len(status) + 1
	sc.s.Show()
}

// ReadChessPosition shows prompt and reads a square as two key strokes, such
// as e then 2.
func (sc *Screen) ReadChessPosition(prompt string) (model.ChessPosition, error) {
	input, err := sc.readKeys(prompt, 2)
	if err != nil {
		return model.ChessPosition{}, err
	}
	return model.ParseChessPosition(input)
}

// ReadPromotion reads the code of the piece a pawn is promoted to. The code is
// not checked here.
func (sc *Screen) ReadPromotion() (string, error) {
	return sc.readKeys("Promote to (B/N/R/Q): ", 1)
}

// ReadKey shows prompt and returns the next typed character.
func (sc *Screen) ReadKey(prompt string) (rune, error) {
	input, err := sc.readKeys(prompt, 1)
	if err != nil {
		return 0, err
	}
	return []rune(input)[0], nil
}

// readKeys echoes up to n printable characters after prompt. Esc and Ctrl-C
// abort with ErrQuit.
func (sc *Screen) readKeys(prompt string, n int) (string, error) {
	sc.clearLine(sc.promptY)
	x := sc.drawText(1, sc.promptY, promptStyle, prompt)
	sc.s.ShowCursor(x, sc.promptY)
	sc.s.Show()

	var input []rune
	for len(input) < n {
		switch ev := sc.s.PollEvent().(type) {
		case nil:
			return "", errors.ErrQuit
		case *tcell.EventResize:
			sc.s.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				sc.log.Debug("input aborted", "prompt", prompt)
				return "", errors.ErrQuit
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
					sc.s.SetContent(x+len(input), sc.promptY, ' ', nil, tcell.StyleDefault)
				}
			case tcell.KeyRune:
				r := ev.Rune()
				if !unicode.IsPrint(r) || unicode.IsSpace(r) {
					continue
				}
				sc.s.SetContent(x+len(input), sc.promptY, r, nil, tcell.StyleDefault)
				input = append(input, r)
			}
			sc.s.ShowCursor(x+len(input), sc.promptY)
			sc.s.Show()
		}
	}
	sc.s.HideCursor()
	return string(input), nil
}

func (sc *Screen) clearLine(y int) {
	width, _ := sc.s.Size()
	for x := 0; x < width; x++ {
		sc.s.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// drawText writes s from (x, y) and returns the column after it.
func (sc *Screen) drawText(x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		sc.s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func pieceColor(color model.PlayerColor) tcell.Color {
	if color == model.PlayerColorWhite {
		return tcell.ColorWhite
	}
	return tcell.ColorBlack
}
