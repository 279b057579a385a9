package engine

// stage orders MoveKind into the picker's five stages (0-4), in the order
// moves should be tried: hash move first, then queen promotions together
// with captures that don't lose material, then killers and counter-moves,
// then everything else quiet, then losing captures last.
func stageOf(k MoveKind) int {
	switch k {
	case KindHash:
		return 0
	case KindQueenPromotion:
		return 1
	case KindWinningOrEqualCapture:
		return 1
	case KindKiller:
		return 2
	case KindCounterMove:
		return 2
	case KindOther:
		return 3
	case KindLosingCapture:
		return 4
	default:
		return 3
	}
}

// MovePicker yields moves for a node, stage by stage. It wraps an already
// classified MoveInfo slice (see evaluator.go), which NewMovePicker sorts
// in full up front, by stage then by descending node allocation within a
// stage.
type MovePicker struct {
	infos []MoveInfo
	index int
	isQS  bool
}

// NewMovePicker builds a picker over pre-classified moves. isQS restricts
// iteration to the hash move and non-losing captures/queen promotions,
// matching quiescence search's narrower move set.
func NewMovePicker(infos []MoveInfo, isQS bool) *MovePicker {
	sortByStage(infos)
	return &MovePicker{infos: infos, isQS: isQS}
}

func sortByStage(infos []MoveInfo) {
	// Insertion sort: move lists are short enough (rarely >40) that this
	// beats the overhead of sort.Slice, and it's stable within a stage.
	for i := 1; i < len(infos); i++ {
		j := i
		for j > 0 && less(infos[j], infos[j-1]) {
			infos[j], infos[j-1] = infos[j-1], infos[j]
			j--
		}
	}
}

func less(a, b MoveInfo) bool {
	sa, sb := stageOf(a.Kind), stageOf(b.Kind)
	if sa != sb {
		return sa < sb
	}
	return a.NodeAllocation > b.NodeAllocation
}

// Next returns the next move and its info, or false when the picker is
// exhausted (or, in quiescence mode, once the capture stages are done).
func (mp *MovePicker) Next() (MoveInfo, bool) {
	for mp.index < len(mp.infos) {
		info := mp.infos[mp.index]
		mp.index++
		if mp.isQS && stageOf(info.Kind) > 1 {
			return MoveInfo{}, false
		}
		return info, true
	}
	return MoveInfo{}, false
}
