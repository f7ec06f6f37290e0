package reconcile

// Key dispatch is a pure mapping from a single key press to an action,
// decoupled from any rendering surface. Unrecognized keys resolve to
// ActionNone and are ignored by the engine.

func (m *MatchMode) ResolveKey(key rune, hasCandidate bool) Action {
	switch key {
	case '1', 'm':
		return ActionMatch
	case '2', 'd':
		// dismiss only applies to a focused candidate; with nothing
		// focused the key restarts the fetch instead
		if hasCandidate {
			return ActionDismiss
		}
		return ActionRestart
	case '3', 'c':
		return ActionCreate
	case '4', 's':
		return ActionSkip
	case '5', 'u':
		return ActionUndo
	}
	return ActionNone
}

func (m *MatchMode) Legend() []Keybind {
	return []Keybind{
		{Keys: "1/m", Label: "match selected candidate"},
		{Keys: "2/d", Label: "dismiss (or restart without a candidate)"},
		{Keys: "3/c", Label: "create new location"},
		{Keys: "4/s", Label: "skip"},
		{Keys: "5/u", Label: "undo last decision"},
	}
}

func (m *MergeMode) ResolveKey(key rune, hasCandidate bool) Action {
	switch key {
	case '1', 'r':
		return ActionMergeFirst
	case '2', 'b':
		return ActionMergeSecond
	case '3', 'd':
		return ActionNotDuplicate
	case '4', 's':
		return ActionSkip
	}
	return ActionNone
}

func (m *MergeMode) Legend() []Keybind {
	return []Keybind{
		{Keys: "1/r", Label: "first location wins merge"},
		{Keys: "2/b", Label: "second location wins merge"},
		{Keys: "3/d", Label: "not a duplicate"},
		{Keys: "4/s", Label: "skip"},
	}
}
