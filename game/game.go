package game

import "fmt"

// Mode is what a selection on the board means during the current turn.
type Mode int

const (
	Placing Mode = iota
	Connecting
)

func (m Mode) String() string {
	if m == Connecting {
		return "connecting"
	}
	return "placing"
}

type Status int

const (
	InProgress Status = iota
	Won
	Surrendered
	Quit
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Surrendered:
		return "surrendered"
	case Quit:
		return "quit"
	default:
		return "in progress"
	}
}

type SelectionOutcome int

const (
	FirstEndpointRecorded SelectionOutcome = iota
	Completed
	Restarted
)

// Selection is the result of selecting a bridge endpoint.
type Selection struct {
	Outcome     SelectionOutcome
	From        Position
	To          Position   // second endpoint, only set when Completed
	Highlighted []Position // legal second endpoints for From
}

// TurnSummary describes the game after a turn boundary.
type TurnSummary struct {
	Player int  // seat to act next
	Side   Side // side of that seat
	Winner Side // NoSide unless the turn ended the game
}

// Snapshot is a read-only view of the game for presentation layers.
type Snapshot struct {
	Pegs   Grid
	Player int
	Side   Side
	Mode   Mode
	Status Status
	Winner Side
	Turns  int
}

// Game is the turn and placement state machine. It is the only writer of its
// board and performs no locking; hosts serialise actions per game.
type Game struct {
	board      *Board
	numPlayers int
	whoseTurn  int
	turns      int // completed turns

	// per turn
	mode      Mode
	selected  *Position // pending first bridge endpoint
	tentative *Position // piece placed this turn and not yet bridged
	locked    bool      // the piece placed this turn has been bridged

	called map[Side]bool
	status Status
	winner Side
}

// NewGame creates a game for 2, 3 or 4 players. The board is created lazily by
// the first action or by EnsureBoard.
func NewGame(numPlayers int) *Game {
	if numPlayers < 2 || numPlayers > 4 {
		panic(fmt.Sprintf("twixt needs 2 to 4 players, got %d", numPlayers))
	}
	return &Game{
		board:      &Board{},
		numPlayers: numPlayers,
		called:     map[Side]bool{},
	}
}

// EnsureBoard initializes the board if no action has done so yet.
func (g *Game) EnsureBoard() {
	g.ensureBoard()
}

func (g *Game) ensureBoard() *Board {
	if !g.board.Initialized() {
		g.board.Reset()
	}
	return g.board
}

// Board returns a copy of the board. The game is the only writer of its own board.
func (g *Game) Board() *Board {
	return g.ensureBoard().Clone()
}

func (g *Game) NumPlayers() int {
	return g.numPlayers
}

// Player returns the seat whose turn it is.
func (g *Game) Player() int {
	return g.whoseTurn
}

func (g *Game) Mode() Mode {
	return g.mode
}

func (g *Game) Turns() int {
	return g.turns
}

func (g *Game) Status() Status {
	return g.status
}

// Called reports whether the team playing side has used its call.
func (g *Game) Called(side Side) bool {
	return g.called[side]
}

// Tentative returns the piece placed this turn if it can still be replaced.
func (g *Game) Tentative() (Position, bool) {
	if g.tentative == nil {
		return Position{}, false
	}
	return *g.tentative, true
}

// IsGameOver returns the winning side once the game has ended. A quit game is
// over without a winner.
func (g *Game) IsGameOver() (Side, bool) {
	return g.winner, g.status != InProgress
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Pegs:   g.ensureBoard().Snapshot(),
		Player: g.whoseTurn,
		Side:   SideOf(g.whoseTurn),
		Mode:   g.mode,
		Status: g.status,
		Winner: g.winner,
		Turns:  g.turns,
	}
}

func (g *Game) checkTurn(player int) error {
	if g.status != InProgress {
		return ErrGameAlreadyOver
	}
	if player != g.whoseTurn {
		return fmt.Errorf("%w: player %d acted, player %d to move", ErrNotYourTurn, player, g.whoseTurn)
	}
	g.EnsureBoard()
	return nil
}

// ValidatePlacement checks whether side may put a new peg on p.
func ValidatePlacement(b *Board, side Side, p Position) error {
	if !p.InBounds() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if side.Opponent().OnHomeLine(p) {
		return fmt.Errorf("%w: %v", ErrOccupiedHomeRow, p)
	}
	if p.IsCorner() {
		return fmt.Errorf("%w: %v", ErrCornerCell, p)
	}
	if b.Owner(p) != NoSide {
		return fmt.Errorf("%w: %v", ErrCellOccupied, p)
	}
	return nil
}

// Place puts the acting side's piece for this turn on (row, col), replacing the
// piece placed earlier in the turn.
func (g *Game) Place(player, row, col int) error {
	if err := g.checkTurn(player); err != nil {
		return err
	}
	if g.locked {
		return fmt.Errorf("%w: the piece placed this turn is bridged", ErrPegLocked)
	}
	side := SideOf(player)
	p := Position{Row: row, Col: col}
	if err := ValidatePlacement(g.board, side, p); err != nil {
		return err
	}

	g.mode = Placing
	g.cancelSelection()
	if g.tentative != nil {
		mustApply(g.board.SetOwner(*g.tentative, NoSide))
	}
	mustApply(g.board.SetOwner(p, side))
	g.tentative = &p
	return nil
}

// SelectBridgeEndpoint handles a selection while connecting. The first selection
// records an owned peg and highlights its legal targets; the next one completes
// the bridge on a highlighted peg or restarts from another owned peg.
func (g *Game) SelectBridgeEndpoint(player, row, col int) (Selection, error) {
	if err := g.checkTurn(player); err != nil {
		return Selection{}, err
	}
	side := SideOf(player)
	p := Position{Row: row, Col: col}
	if !p.InBounds() {
		return Selection{}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	peg := g.board.at(p)

	if g.selected == nil {
		if peg.Owner != side {
			return Selection{}, fmt.Errorf("%w: %v", ErrNotOwner, p)
		}
		g.mode = Connecting
		return g.beginSelection(p, FirstEndpointRecorded), nil
	}

	from := *g.selected
	switch {
	case peg.Highlighted:
		if err := g.connect(side, from, p); err != nil {
			return Selection{}, err
		}
		return Selection{Outcome: Completed, From: from, To: p}, nil
	case peg.Owner == side:
		g.mode = Connecting
		return g.beginSelection(p, Restarted), nil
	default:
		return Selection{}, fmt.Errorf("%w: %v", ErrNotOwner, p)
	}
}

// Connect bridges two of the acting side's pegs directly.
func (g *Game) Connect(player int, from, to Position) error {
	if err := g.checkTurn(player); err != nil {
		return err
	}
	if err := g.connect(SideOf(player), from, to); err != nil {
		return err
	}
	g.mode = Connecting
	return nil
}

func (g *Game) connect(side Side, from, to Position) error {
	if g.board.Owner(from) != side {
		return fmt.Errorf("%w: %v", ErrNotOwner, from)
	}
	if err := CanPlaceBridge(g.board, from, to); err != nil {
		return err
	}
	mustApply(g.board.AddBridge(from, to))
	mustApply(g.board.MarkPermanent(from))
	mustApply(g.board.MarkPermanent(to))
	if g.tentative != nil && (*g.tentative == from || *g.tentative == to) {
		g.tentative = nil
		g.locked = true
	}
	g.cancelSelection()
	return nil
}

func (g *Game) beginSelection(p Position, outcome SelectionOutcome) Selection {
	g.board.ClearHighlights()
	targets := LegalBridgeTargets(g.board, p)
	for _, t := range targets {
		g.board.SetHighlighted(t, true)
	}
	g.selected = &p
	return Selection{Outcome: outcome, From: p, Highlighted: targets}
}

func (g *Game) cancelSelection() {
	g.selected = nil
	g.board.ClearHighlights()
}

// EndTurn locks in every peg, checks for a winner and passes the turn on.
func (g *Game) EndTurn() (TurnSummary, error) {
	if g.status != InProgress {
		return TurnSummary{}, ErrGameAlreadyOver
	}
	g.EnsureBoard()
	acting := g.whoseTurn
	g.finishTurn()
	g.whoseTurn = (acting + 1) % g.numPlayers
	g.checkWinner(SideOf(acting))
	return g.summary(), nil
}

// Call passes the turn straight to the caller's teammate. Each team may call
// once per game, and only in 4 player games.
func (g *Game) Call(player int) error {
	if err := g.checkTurn(player); err != nil {
		return err
	}
	if g.numPlayers != 4 {
		return ErrCallUnavailable
	}
	side := SideOf(player)
	if g.called[side] {
		return fmt.Errorf("%w: side %v", ErrDuplicateCall, side)
	}
	g.called[side] = true
	g.finishTurn()
	g.whoseTurn = teammate(player)
	g.checkWinner(side)
	return nil
}

func teammate(player int) int {
	switch player {
	case 3:
		return 1
	case 2:
		return 0
	default:
		return player + 2
	}
}

// Surrender ends the game in favour of the surrendering player's opponents.
func (g *Game) Surrender(player int) error {
	if err := g.checkSeat(player); err != nil {
		return err
	}
	g.status = Surrendered
	g.winner = SideOf(player).Opponent()
	return nil
}

// Quit suspends the game without a winner.
func (g *Game) Quit(player int) error {
	if err := g.checkSeat(player); err != nil {
		return err
	}
	g.status = Quit
	g.winner = NoSide
	return nil
}

func (g *Game) checkSeat(player int) error {
	if g.status != InProgress {
		return ErrGameAlreadyOver
	}
	if player < 0 || player >= g.numPlayers {
		return fmt.Errorf("%w: no seat %d", ErrNotYourTurn, player)
	}
	return nil
}

// Acknowledge resets the board and turn state of a finished game so that a new
// game can start. It does nothing while the game is in progress. Hosts call it
// when the seats agree to a rematch.
func (g *Game) Acknowledge() {
	if g.status == InProgress {
		return
	}
	g.board.Reset()
	g.whoseTurn = 0
	g.turns = 0
	g.resetTurnState()
	g.called = map[Side]bool{}
	g.status = InProgress
	g.winner = NoSide
}

// Apply dispatches an action to its entry point.
func (g *Game) Apply(a Action) error {
	switch a.Type {
	case PlaceAction:
		return g.Place(a.PlayerID, a.Row, a.Col)
	case SelectAction:
		_, err := g.SelectBridgeEndpoint(a.PlayerID, a.Row, a.Col)
		return err
	case EndTurnAction:
		if g.status == InProgress && a.PlayerID != g.whoseTurn {
			return fmt.Errorf("%w: player %d acted, player %d to move", ErrNotYourTurn, a.PlayerID, g.whoseTurn)
		}
		_, err := g.EndTurn()
		return err
	case CallAction:
		return g.Call(a.PlayerID)
	case SurrenderAction:
		return g.Surrender(a.PlayerID)
	case QuitAction:
		return g.Quit(a.PlayerID)
	default:
		panic(fmt.Sprintf("unknown action type %v", a.Type))
	}
}

func (g *Game) finishTurn() {
	g.board.MarkAllPermanent()
	g.board.ClearHighlights()
	g.resetTurnState()
	g.turns++
}

func (g *Game) resetTurnState() {
	g.mode = Placing
	g.selected = nil
	g.tentative = nil
	g.locked = false
}

func (g *Game) checkWinner(acting Side) {
	for _, side := range []Side{acting, acting.Opponent()} {
		if HasWinningPath(g.board, side) {
			g.status = Won
			g.winner = side
			return
		}
	}
}

func (g *Game) summary() TurnSummary {
	return TurnSummary{
		Player: g.whoseTurn,
		Side:   SideOf(g.whoseTurn),
		Winner: g.winner,
	}
}

// mustApply panics on board errors that validation has already ruled out.
func mustApply(err error) {
	if err != nil {
		panic(err)
	}
}
