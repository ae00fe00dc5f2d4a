package engine

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is a 128-bit board digest: two 64-bit hashes over a
// canonical encoding of a View, wide enough that a collision corrupting
// credit assignment is not a practical concern.
type Fingerprint [2]uint64

// fingerprintOf canonically encodes every observable field of v (board
// minions ordered with stats/flags, heroes, weapons, mana crystals, hand
// card-ids visible to the viewer, deck counts, graveyard counts, current
// player, turn number) and hashes it twice with distinct seeds to
// produce a wide digest.
func fingerprintOf(v View) Fingerprint {
	buf := make([]byte, 0, 256)
	buf = appendCanonical(buf, v)

	h1 := xxhash.NewWithSeed(0xC0FFEE)
	h1.Write(buf)
	h2 := xxhash.NewWithSeed(0x51DEC0DE)
	h2.Write(buf)
	return Fingerprint{h1.Sum64(), h2.Sum64()}
}

func appendU8(b []byte, v uint8) []byte   { return append(b, v) }
func appendBool(b []byte, v bool) []byte {
	if v {
		return append(b, 1)
	}
	return append(b, 0)
}
func appendI32(b []byte, v int32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(v))
	return append(b, tmp[:]...)
}
func appendU32(b []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(b, tmp[:]...)
}

func appendHero(b []byte, h Hero) []byte {
	b = appendI32(b, int32(h.Card))
	b = appendI32(b, h.Health)
	b = appendI32(b, h.Armor)
	b = appendBool(b, h.PowerUsedThisTurn)
	if h.Weapon != nil {
		b = appendBool(b, true)
		b = appendI32(b, int32(h.Weapon.Card))
		b = appendI32(b, h.Weapon.Attack)
		b = appendI32(b, h.Weapon.Durability)
	} else {
		b = appendBool(b, false)
	}
	return b
}

func appendMinion(b []byte, m Minion) []byte {
	b = appendI32(b, int32(m.Card))
	b = appendI32(b, m.Attack)
	b = appendI32(b, m.Health)
	b = appendU8(b, m.AttacksLeft)
	b = appendBool(b, m.Taunt)
	b = appendBool(b, m.DivineShield)
	b = appendBool(b, m.Windfury)
	b = appendBool(b, m.Silenced)
	return b
}

// appendCanonical writes every side in a fixed order (first, then second)
// so the same board always produces the same bytes regardless of which
// side is "current".
func appendCanonical(b []byte, v View) []byte {
	b = appendU8(b, uint8(v.CurrentSide()))
	b = appendU32(b, v.TurnNumber())

	for _, side := range [2]Side{SideFirst, SideSecond} {
		b = appendHero(b, v.Hero(side))

		board := v.Board(side)
		b = appendU32(b, uint32(len(board)))
		for _, m := range board {
			b = appendMinion(b, m)
		}

		b = appendI32(b, v.ManaCrystals(side))
		b = appendI32(b, v.ManaAvailable(side))
		b = appendI32(b, v.GraveyardSize(side))
		b = appendU32(b, uint32(v.DeckSize(side)))

		if side == v.viewerSide {
			hand := v.OwnHand()
			b = appendU32(b, uint32(len(hand)))
			for _, c := range hand {
				b = appendI32(b, int32(c))
			}
		} else {
			b = appendU32(b, uint32(v.OpponentHandSize()))
		}

		secrets := v.Secrets(side)
		b = appendU32(b, uint32(len(secrets)))
		for _, s := range secrets {
			if s.Hidden {
				b = appendBool(b, true)
			} else {
				b = appendBool(b, false)
				b = appendI32(b, int32(s.Card))
			}
		}
	}
	return b
}
