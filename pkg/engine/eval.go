package engine

import (
	"github.com/gambitchess/gambit/pkg/uci"
)

// Score is a tapered midgame/endgame pair in centipawns.
type Score struct {
	Mg, Eg int
}

const (
	Pawn = iota
	Knight
	Bishop
	Rook
	Queen
	pieceNb
)

// Base values before option scaling.
var materialBase = [pieceNb]Score{
	{82, 94},
	{337, 281},
	{365, 297},
	{477, 512},
	{1025, 936},
}

var mobilityBase = [pieceNb]Score{
	{0, 0},
	{4, 4},
	{3, 3},
	{2, 4},
	{1, 2},
}

var pawnStructureBase = Score{12, 18}
var kingSafetyBase = Score{9, 3}

// evalWeights holds the term weights actually used during evaluation.
// The catalog exposes each family as a pair of percent spins; 100 means
// the base value unchanged.
type evalWeights struct {
	material      [pieceNb]Score
	mobility      [pieceNb]Score
	pawnStructure Score
	kingSafety    Score
}

func (w *evalWeights) init(o *uci.Options) {
	var scalePair = func(base Score, mgName, egName string) Score {
		return Score{
			Mg: base.Mg * o.Find(mgName).Int() / 100,
			Eg: base.Eg * o.Find(egName).Int() / 100,
		}
	}
	for piece := Pawn; piece < pieceNb; piece++ {
		w.material[piece] = scalePair(materialBase[piece], "Material(mg)", "Material(eg)")
		w.mobility[piece] = scalePair(mobilityBase[piece], "Mobility(mg)", "Mobility(eg)")
	}
	w.pawnStructure = scalePair(pawnStructureBase, "PawnStructure(mg)", "PawnStructure(eg)")
	w.kingSafety = scalePair(kingSafetyBase, "KingSafety(mg)", "KingSafety(eg)")
}
