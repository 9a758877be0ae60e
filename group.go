package holdings

import "github.com/etnz/holdings/date"

// runState is the state of the grouper: either no run is open, or a run of
// a given account is being buffered.
type runState int

const (
	noRun runState = iota
	inRun
)

// grouper splits an ordered sequence of transactions into account runs: maximal
// blocks of consecutive transactions sharing one account.
type grouper struct {
	cutoff  date.Date
	state   runState
	account string        // account of the open run, when state == inRun
	run     []Transaction // buffered transactions of the open run
	folders map[string]*Folder
	out     map[string]Holdings
}

func newGrouper(cutoff date.Date) *grouper {
	return &grouper{
		cutoff:  cutoff,
		folders: make(map[string]*Folder),
		out:     make(map[string]Holdings),
	}
}

// push consumes the next transaction.
func (g *grouper) push(t Transaction) {
	switch g.state {
	case noRun:
		g.open(t.Account())
	case inRun:
		if t.Account() != g.account {
			g.close()
			g.open(t.Account())
		}
	}
	g.run = append(g.run, t)
}

func (g *grouper) open(account string) {
	g.state = inRun
	g.account = account
	g.run = g.run[:0]
}

// close folds the open run and emits the holdings of its account. An
// account seen in an earlier run continues from that run's state.
func (g *grouper) close() {
	if g.state != inRun {
		return
	}
	f, ok := g.folders[g.account]
	if !ok {
		f = NewFolder(g.cutoff)
		g.folders[g.account] = f
	}
	for _, t := range g.run {
		f.Apply(t)
	}
	g.out[g.account] = f.Holdings()
	g.state = noRun
	g.account = ""
	g.run = g.run[:0]
}

// Group folds every account run of txns and returns the holdings of each
// account as of cutoff. Transactions of one account are expected to be
// contiguous.
func Group(txns []Transaction, cutoff date.Date) map[string]Holdings {
	g := newGrouper(cutoff)
	for _, t := range txns {
		g.push(t)
	}
	// end of input: the last run has no following account change to close it.
	g.close()
	return g.out
}
