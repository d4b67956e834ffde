package gamemaster

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"twixt/game"
	"twixt/meta"
)

func TestLocalEngineInit(t *testing.T) {
	engine := NewLocalEngine()
	snapshot, getUpdate := engine.Init(2)

	if snapshot.Player != 0 || snapshot.Side != game.SideA {
		t.Errorf("expected player 0 (side A) to start, got %d (%v)", snapshot.Player, snapshot.Side)
	}
	if snapshot.Status != game.InProgress {
		t.Errorf("expected a game in progress, got %v", snapshot.Status)
	}
	for i := range snapshot.Pegs {
		for j := range snapshot.Pegs[i] {
			if !snapshot.Pegs[i][j].IsEmpty() {
				t.Fatalf("expected an empty board, (%d,%d) is owned by %v", i, j, snapshot.Pegs[i][j].Owner)
			}
		}
	}

	// Check that getUpdate returns nothing if no actions have been played
	if u, ok := getUpdate(); ok {
		t.Errorf("expected no update yet, got %v", u.Action)
	}
}

func TestLocalEnginePlay_ValidAction(t *testing.T) {
	engine := NewLocalEngine()
	_, getUpdate := engine.Init(2)

	place := game.Action{PlayerID: 0, Type: game.PlaceAction, Row: 5, Col: 5}
	if err := engine.Play(place); err != nil {
		t.Fatalf("expected no error for a valid placement, got %v", err)
	}

	u, ok := getUpdate()
	if !ok {
		t.Fatal("expected an update after playing an action, got none")
	}
	if u.Action != place {
		t.Errorf("expected update for %v, got %v", place, u.Action)
	}
	if u.Snapshot.Pegs[5][5].Owner != game.SideA {
		t.Errorf("expected (5,5) to be owned by side A in the update")
	}

	if err := engine.Play(game.Action{PlayerID: 0, Type: game.EndTurnAction}); err != nil {
		t.Fatalf("expected no error ending the turn, got %v", err)
	}
	u, _ = getUpdate()
	if u.Snapshot.Player != 1 || !u.Snapshot.Pegs[5][5].Permanent {
		t.Errorf("expected player 1 to move with (5,5) locked in, got player %d", u.Snapshot.Player)
	}
}

func TestLocalEnginePlay_IllegalAction(t *testing.T) {
	engine := NewLocalEngine()
	if err := engine.Play(game.Action{Type: game.EndTurnAction}); err == nil {
		t.Error("expected error before Init, got none")
	}

	_, getUpdate := engine.Init(2)
	before := engine.Snapshot()

	// Side A may not place on column 0
	err := engine.Play(game.Action{PlayerID: 0, Type: game.PlaceAction, Row: 4, Col: 0})
	if !errors.Is(err, game.ErrOccupiedHomeRow) {
		t.Errorf("expected ErrOccupiedHomeRow, got %v", err)
	}
	err = engine.Play(game.Action{PlayerID: 1, Type: game.PlaceAction, Row: 4, Col: 4})
	if !errors.Is(err, game.ErrNotYourTurn) {
		t.Errorf("expected ErrNotYourTurn, got %v", err)
	}

	if !reflect.DeepEqual(before, engine.Snapshot()) {
		t.Error("expected rejected actions to leave the game unchanged")
	}
	if u, ok := getUpdate(); ok {
		t.Errorf("expected no update for rejected actions, got %v", u.Action)
	}
}

func TestLocalEnginePlay_GameOver(t *testing.T) {
	engine := NewLocalEngine()
	_, getUpdate := engine.Init(2)

	surrender := game.Action{PlayerID: 1, Type: game.SurrenderAction}
	if err := engine.Play(surrender); err != nil {
		t.Errorf("did not expect error on surrender, got %v", err)
	}

	// The final update is delivered, then the channel is closed
	u, ok := getUpdate()
	if !ok {
		t.Fatal("expected a final update before the game ends")
	}
	if u.Snapshot.Status != game.Surrendered || u.Snapshot.Winner != game.SideA {
		t.Errorf("expected side A to win by surrender, got %v %v", u.Snapshot.Status, u.Snapshot.Winner)
	}
	if u, ok := getUpdate(); ok {
		t.Errorf("expected no updates after game over, got %v", u.Action)
	}

	err := engine.Play(game.Action{PlayerID: 0, Type: game.EndTurnAction})
	if !errors.Is(err, game.ErrGameAlreadyOver) {
		t.Errorf("expected 'game is over' error, got %v", err)
	}
}

func TestLocalEngineRematch(t *testing.T) {
	engine := NewLocalEngine()
	if _, _, err := engine.Rematch(); err == nil {
		t.Error("expected an error for a rematch before Init")
	}

	engine.Init(4)
	if err := engine.Play(game.Action{PlayerID: 0, Type: game.PlaceAction, Row: 5, Col: 5}); err != nil {
		t.Fatalf("expected no error for a valid placement, got %v", err)
	}
	if _, _, err := engine.Rematch(); err == nil {
		t.Error("expected an error for a rematch during play")
	}
	if err := engine.Play(game.Action{PlayerID: 0, Type: game.CallAction}); err != nil {
		t.Fatalf("expected no error for a call, got %v", err)
	}
	if err := engine.Play(game.Action{PlayerID: 3, Type: game.QuitAction}); err != nil {
		t.Fatalf("expected no error for a quit, got %v", err)
	}

	snapshot, getUpdate, err := engine.Rematch()
	if err != nil {
		t.Fatalf("expected a rematch after the game ended, got %v", err)
	}
	if snapshot.Status != game.InProgress || snapshot.Player != 0 || snapshot.Turns != 0 {
		t.Errorf("expected a fresh game, got status %v, player %d, turns %d", snapshot.Status, snapshot.Player, snapshot.Turns)
	}
	if !snapshot.Pegs[5][5].IsEmpty() {
		t.Error("expected the acknowledged game's pegs to be cleared")
	}
	if u, ok := getUpdate(); ok {
		t.Errorf("expected no update yet, got %v", u.Action)
	}

	// The team that called last game may call again
	if err := engine.Play(game.Action{PlayerID: 0, Type: game.CallAction}); err != nil {
		t.Errorf("expected call flags to be cleared, got %v", err)
	}
	if _, ok := getUpdate(); !ok {
		t.Error("expected the new stream to publish updates")
	}
}

func TestLocalEngine_IdenticalInitStates(t *testing.T) {
	engine := NewLocalEngine()
	state1, _ := engine.Init(4)

	engine2 := NewLocalEngine()
	state2, _ := engine2.Init(4)

	if !reflect.DeepEqual(state1, state2) {
		t.Error("expected the same initial state configuration, got differences")
	}
}

func TestLocalEngine_BoardIsACopy(t *testing.T) {
	engine := NewLocalEngine()
	engine.Init(2)

	board := engine.Board()
	if err := board.SetOwner(game.Position{Row: 3, Col: 3}, game.SideB); err != nil {
		t.Fatal(err)
	}
	if engine.Snapshot().Pegs[3][3].Owner != game.NoSide {
		t.Error("expected changes to the returned board to stay local")
	}
}

func TestLocalEngine_ConcurrentSeats(t *testing.T) {
	engine := NewLocalEngine()
	_, getUpdate := engine.Init(2)

	// Both seats hammer the host; only the seat to move is accepted
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for seat := 0; seat < 2; seat++ {
		wg.Add(1)
		go func(seat int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if engine.Play(game.Action{PlayerID: seat, Type: game.EndTurnAction}) == nil {
					mu.Lock()
					accepted++
					mu.Unlock()
				}
			}
		}(seat)
	}
	wg.Wait()

	if got := engine.Snapshot().Turns; got != accepted {
		t.Errorf("expected %d turns, got %d", accepted, got)
	}
	received := 0
	for {
		if _, ok := getUpdate(); !ok {
			break
		}
		received++
	}
	want := accepted
	if want > meta.UPDATE_BUFFER {
		want = meta.UPDATE_BUFFER
	}
	if received != want {
		t.Errorf("expected %d updates, got %d", want, received)
	}
}
