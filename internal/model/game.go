package model

import (
	"fmt"
	"slices"

	"github.com/benbeisheim/chess-console/internal/boardgame"
	"github.com/benbeisheim/chess-console/internal/errors"
	"github.com/google/uuid"
)

// Match is one game of chess: the board, whose turn it is and everything the
// rules need to remember between plies. A Match is not safe for concurrent use.
type Match struct {
	ID string

	board               *Board
	turn                int
	currentPlayer       PlayerColor
	check               bool
	checkmate           bool
	stalemate           bool
	enPassantVulnerable *Piece
	promoted            *Piece
	promotionChosen     bool
	piecesOnTheBoard    []*Piece
	capturedPieces      []*Piece
	history             []Ply
}

// NewMatch returns a match in the standard starting position, white to move.
func NewMatch() *Match {
	m := newEmptyMatch()
	m.setupInitialPosition()
	return m
}

func newEmptyMatch() *Match {
	return &Match{
		ID:            uuid.NewString(),
		board:         newBoard(),
		turn:          1,
		currentPlayer: PlayerColorWhite,
	}
}

func (m *Match) Turn() int {
	return m.turn
}

func (m *Match) CurrentPlayer() PlayerColor {
	return m.currentPlayer
}

func (m *Match) Check() bool {
	return m.check
}

func (m *Match) Checkmate() bool {
	return m.checkmate
}

func (m *Match) Stalemate() bool {
	return m.stalemate
}

// Over reports whether the match has ended. No further moves are accepted.
func (m *Match) Over() bool {
	return m.checkmate || m.stalemate
}

// Winner returns the side that delivered checkmate.
func (m *Match) Winner() (PlayerColor, bool) {
	if !m.checkmate {
		return "", false
	}
	return m.currentPlayer, true
}

func (m *Match) EnPassantVulnerable() *Piece {
	return m.enPassantVulnerable
}

// Promoted returns the piece that replaced a pawn on the last ply, if any.
func (m *Match) Promoted() *Piece {
	return m.promoted
}

// PromotionPending reports whether the last ply auto-queened a pawn and no
// replacement has been chosen yet.
func (m *Match) PromotionPending() bool {
	return m.promoted != nil && !m.promotionChosen
}

// Pieces returns the board layout indexed [row][column]; empty squares are nil.
func (m *Match) Pieces() [][]*Piece {
	return m.board.Snapshot()
}

func (m *Match) OnBoard() []*Piece {
	return slices.Clone(m.piecesOnTheBoard)
}

func (m *Match) Captured() []*Piece {
	return slices.Clone(m.capturedPieces)
}

// CapturedBy lists the pieces color has taken from the opponent.
func (m *Match) CapturedBy(color PlayerColor) []*Piece {
	var out []*Piece
	for _, p := range m.capturedPieces {
		if p.Color != color {
			out = append(out, p)
		}
	}
	return out
}

func (m *Match) History() []Ply {
	return slices.Clone(m.history)
}

func (m *Match) context() MoveContext {
	return MoveContext{EnPassantVulnerable: m.enPassantVulnerable}
}

// PossibleMoves returns the destinations of the piece on source.
func (m *Match) PossibleMoves(source ChessPosition) (boardgame.Mask, error) {
	pos := source.ToPosition()
	piece, err := m.pieceAt(pos)
	if err != nil {
		return nil, err
	}
	mask := m.destinations(piece)
	if !mask.Any() {
		return nil, m.originError(pos, "there are no possible moves for the chosen piece")
	}
	return mask, nil
}

// PerformMove moves the piece on source to target and returns the captured
// piece, if any. On error the match is left exactly as it was.
func (m *Match) PerformMove(source, target ChessPosition) (*Piece, error) {
	if m.Over() {
		return nil, &errors.MoveError{Err: errors.ErrMatchOver, Turn: m.turn}
	}
	from, to := source.ToPosition(), target.ToPosition()
	if err := m.validateSourcePosition(from); err != nil {
		return nil, err
	}
	if err := m.validateTargetPosition(from, to); err != nil {
		return nil, err
	}

	ply := m.makeMove(from, to)
	if m.isKingInCheck(m.currentPlayer) {
		m.undoMove(ply)
		return nil, &errors.MoveError{Err: errors.ErrSelfCheck, Turn: m.turn, Square: target.String()}
	}

	m.promoted, m.promotionChosen = nil, false
	if ply.Piece.Type == Pawn && to.Row == ply.Piece.Color.promotionRow() {
		m.promoted = ply.Piece
		m.replacePromoted(Queen)
		ply.Promotion = Queen
	}

	m.history = append(m.history, *ply)
	m.settle(*ply)
	return ply.CapturedPiece, nil
}

// settle updates check, mate and turn bookkeeping after ply was committed by
// the side to move.
func (m *Match) settle(ply Ply) {
	opponent := m.currentPlayer.Opponent()

	m.enPassantVulnerable = nil
	if ply.isDoublePawnStep() {
		m.enPassantVulnerable = ply.Piece
	}

	m.check = m.isKingInCheck(opponent)
	m.checkmate, m.stalemate = false, false
	if !m.hasLegalMove(opponent) {
		if m.check {
			m.checkmate = true
		} else {
			m.stalemate = true
		}
		return
	}
	m.nextTurn()
}

func (m *Match) nextTurn() {
	m.turn++
	m.currentPlayer = m.currentPlayer.Opponent()
}

func (m *Match) pieceAt(pos boardgame.Position) (*Piece, error) {
	piece, err := m.board.Occupant(pos)
	if err != nil {
		return nil, err
	}
	if piece == nil {
		return nil, m.originError(pos, "there is no piece on the source position")
	}
	return piece, nil
}

func (m *Match) validateSourcePosition(pos boardgame.Position) error {
	piece, err := m.pieceAt(pos)
	if err != nil {
		return err
	}
	if piece.Color != m.currentPlayer {
		return m.originError(pos, "the chosen piece is not yours")
	}
	if !m.destinations(piece).Any() {
		return m.originError(pos, "there are no possible moves for the chosen piece")
	}
	return nil
}

func (m *Match) validateTargetPosition(source, target boardgame.Position) error {
	piece := m.board.At(source)
	if !m.destinations(piece).Has(target) {
		return &errors.MoveError{
			Err:    errors.ErrIllegalTarget,
			Turn:   m.turn,
			Square: squareName(target),
			Reason: fmt.Sprintf("the %s can't move there", piece.Type),
		}
	}
	return nil
}

func (m *Match) originError(pos boardgame.Position, reason string) error {
	return &errors.MoveError{Err: errors.ErrIllegalOrigin, Turn: m.turn, Square: squareName(pos), Reason: reason}
}

// destinations is the piece's own mask plus the castling squares for a king.
func (m *Match) destinations(piece *Piece) boardgame.Mask {
	mask := piece.LegalDestinations(m.board, m.context())
	if piece.Type == King {
		mask.Union(m.castlingDestinations(piece))
	}
	return mask
}

// makeMove applies a pseudo-legal move, compound effects included, and returns
// the record undoMove needs to revert it.
func (m *Match) makeMove(source, target boardgame.Position) *Ply {
	piece := m.lift(source)
	piece.increaseMoveCount()
	captured := m.lift(target)
	m.place(piece, target)

	ply := &Ply{Piece: piece, From: source, To: target}
	if captured != nil {
		ply.CapturedPiece = captured
		ply.CapturedAt = target
		ply.capturedIndex = m.capture(captured)
	}

	if piece.Type == King && abs(target.Column-source.Column) == 2 {
		rookFrom, rookTo := castlingRookSquares(source, target)
		rook := m.lift(rookFrom)
		m.place(rook, rookTo)
		rook.increaseMoveCount()
		ply.CastleRookMove = &CastleRookMove{From: rookFrom, To: rookTo}
	}

	if piece.Type == Pawn && source.Column != target.Column && captured == nil {
		pawnPosition := boardgame.Position{Row: source.Row, Column: target.Column}
		victim := m.lift(pawnPosition)
		ply.CapturedPiece = victim
		ply.CapturedAt = pawnPosition
		ply.EnPassant = true
		ply.capturedIndex = m.capture(victim)
	}
	return ply
}

// undoMove reverts makeMove exactly, roster order included.
func (m *Match) undoMove(ply *Ply) {
	piece := m.lift(ply.To)
	piece.decreaseMoveCount()
	m.place(piece, ply.From)

	if ply.CastleRookMove != nil {
		rook := m.lift(ply.CastleRookMove.To)
		rook.decreaseMoveCount()
		m.place(rook, ply.CastleRookMove.From)
	}

	if ply.CapturedPiece != nil {
		m.place(ply.CapturedPiece, ply.CapturedAt)
		m.restore(ply.CapturedPiece, ply.capturedIndex)
	}
}

// capture moves piece from the on-board roster to the captured roster and
// returns its former index.
func (m *Match) capture(piece *Piece) int {
	i := slices.Index(m.piecesOnTheBoard, piece)
	m.piecesOnTheBoard = slices.Delete(m.piecesOnTheBoard, i, i+1)
	m.capturedPieces = append(m.capturedPieces, piece)
	return i
}

func (m *Match) restore(piece *Piece, index int) {
	m.capturedPieces = m.capturedPieces[:len(m.capturedPieces)-1]
	m.piecesOnTheBoard = slices.Insert(m.piecesOnTheBoard, index, piece)
}

// lift and place only ever touch squares the engine has already validated, so
// a board error here means the match state is corrupt.
func (m *Match) lift(pos boardgame.Position) *Piece {
	piece, err := m.board.Remove(pos)
	if err != nil {
		panic(fmt.Sprintf("chess: corrupt board: %v", err))
	}
	return piece
}

func (m *Match) place(piece *Piece, pos boardgame.Position) {
	if err := m.board.Place(piece, pos); err != nil {
		panic(fmt.Sprintf("chess: corrupt board: %v", err))
	}
}

func (m *Match) king(color PlayerColor) *Piece {
	for _, p := range m.piecesOnTheBoard {
		if p.Color == color && p.Type == King {
			return p
		}
	}
	return nil
}

func (m *Match) isKingInCheck(color PlayerColor) bool {
	king := m.king(color)
	if king == nil {
		return false
	}
	pos, _ := king.Position()
	return isSquareAttacked(m.board, color.Opponent(), pos)
}

// hasLegalMove tries every destination of every piece of color and reports
// whether any of them leaves its king safe. The board is restored after each try.
func (m *Match) hasLegalMove(color PlayerColor) bool {
	for _, piece := range slices.Clone(m.piecesOnTheBoard) {
		if piece.Color != color {
			continue
		}
		from, _ := piece.Position()
		for _, to := range m.destinations(piece).Positions() {
			ply := m.makeMove(from, to)
			safe := !m.isKingInCheck(color)
			m.undoMove(ply)
			if safe {
				return true
			}
		}
	}
	return false
}
