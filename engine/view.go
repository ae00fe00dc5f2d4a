package engine

// View is a read-only projection of a GameState for one observer side.
// Its accessor methods are structurally incapable of returning the
// opponent's hand, deck contents, or unrevealed secrets; there is no
// method that exposes them, rather than a runtime-checked guard.
type View struct {
	state      *GameState
	viewerSide Side
}

// ViewFor builds the redacted projection state exposes to side.
func ViewFor(state *GameState, side Side) View {
	return View{state: state, viewerSide: side}
}

// ViewerSide returns the observer this View was built for.
func (v View) ViewerSide() Side { return v.viewerSide }

// CurrentSide returns whose turn it is (public information).
func (v View) CurrentSide() Side { return v.state.CurrentSide }

// TurnNumber returns the public turn counter.
func (v View) TurnNumber() uint32 { return v.state.TurnNumber }

// Winner reports the terminal winner, if any; ok is false pre-terminal.
func (v View) Winner() (side int8, ok bool) {
	if v.state.WinnerSide == winnerUndetermined {
		return 0, false
	}
	return v.state.WinnerSide, true
}

// Hero returns the public hero state for side (both heroes are public).
func (v View) Hero(side Side) Hero { return v.state.Players[side].Hero }

// Board returns the ordered, public board for side (both boards are
// public; board minions are never hidden information).
func (v View) Board(side Side) []Minion { return v.state.Players[side].Board }

// OwnHand returns the viewer's own hand contents.
func (v View) OwnHand() []CardID { return v.state.Players[v.viewerSide].Hand }

// OpponentHandSize returns only the *count* of the opponent's hand; its
// contents are never exposed through View.
func (v View) OpponentHandSize() int { return len(v.state.Players[v.viewerSide.Other()].Hand) }

// DeckSize returns the count of cards left in side's deck (contents
// hidden for both sides; the real deck order is simulator-private even
// for the owner, since future draws must stay random).
func (v View) DeckSize(side Side) int { return len(v.state.Players[side].deck) }

// GraveyardSize returns the public graveyard count for side.
func (v View) GraveyardSize(side Side) int32 { return v.state.Players[side].GraveyardSize }

// ManaCrystals / ManaAvailable are public.
func (v View) ManaCrystals(side Side) int32  { return v.state.Players[side].ManaCrystals }
func (v View) ManaAvailable(side Side) int32 { return v.state.Players[side].ManaAvailable }

// Secrets returns side's secrets redacted to what the viewer may see: a
// secret not owned by the viewer and not yet revealed exposes only its
// presence (a slot), never its identity.
func (v View) Secrets(side Side) []SecretView {
	raw := v.state.Players[side].Secrets
	out := make([]SecretView, len(raw))
	for i, sec := range raw {
		visible := side == v.viewerSide || sec.Revealed
		out[i] = SecretView{Hidden: !visible}
		if visible {
			out[i].Card = sec.Card
		}
	}
	return out
}

// SecretView is the redacted projection of a Secret.
type SecretView struct {
	Hidden bool
	Card   CardID // zero value if Hidden
}

// Fingerprint computes a deterministic structural digest over every
// observable field of this View. Equal fingerprints are treated as
// equivalent positions for tree-reuse purposes.
func (v View) Fingerprint() Fingerprint {
	return fingerprintOf(v)
}
