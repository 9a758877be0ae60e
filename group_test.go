package holdings

import (
	"testing"

	"github.com/etnz/holdings/date"
	"github.com/google/go-cmp/cmp"
)

func TestGroup(t *testing.T) {
	testCases := []struct {
		name   string
		lines  []string
		cutoff string
		want   map[string]Holdings
	}{
		{
			name: "no transaction",
			want: map[string]Holdings{},
		},
		{
			name:  "a single account is flushed at the end",
			lines: []string{"A,20200101,DEP,100,1,CASH"},
			want:  map[string]Holdings{"A": H("CASH", 100)},
		},
		{
			name: "last run is emitted without a trailing transaction",
			lines: []string{
				"A,20200101,DEP,100,1,CASH",
				"A,20200102,DEP,50,1,CASH",
				"B,20200101,DEP,7,1,CASH",
			},
			want: map[string]Holdings{
				"A": H("CASH", 150),
				"B": H("CASH", 7),
			},
		},
		{
			name: "runs do not share state",
			lines: []string{
				"A,20200102,BOT,10,5,X",
				"B,20200103,SLD,10,6,X",
				"C,20200103,DIV,1,3,X",
			},
			want: map[string]Holdings{
				"A": H("CASH", -50, "X", 10),
				"B": H("CASH", 0),
				"C": H("CASH", 0),
			},
		},
		{
			name: "transactions after the cutoff do not count",
			lines: []string{
				"A,20200101,DEP,100,1,CASH",
				"A,20200201,DEP,100,1,CASH",
				"B,20200201,DEP,100,1,CASH",
			},
			cutoff: "20200131",
			want: map[string]Holdings{
				"A": H("CASH", 100),
				"B": H("CASH", 0),
			},
		},
		{
			name: "an account seen again continues where it stopped",
			lines: []string{
				"A,20200102,BOT,10,5,X",
				"B,20200101,DEP,1,1,CASH",
				"A,20200103,SLD,10,6,X",
			},
			want: map[string]Holdings{
				"A": H("CASH", 10),
				"B": H("CASH", 1),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			on := cutoff
			if tc.cutoff != "" {
				on = date.MustParse(tc.cutoff)
			}
			got := Group(mustParse(t, tc.lines...), on)
			if diff := cmp.Diff(tc.want, got, quantityEqual); diff != "" {
				t.Errorf("Group() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGrouper_States(t *testing.T) {
	g := newGrouper(cutoff)
	if g.state != noRun {
		t.Fatalf("initial state = %v, want noRun", g.state)
	}
	txns := mustParse(t, "A,20200101,DEP,1,1,CASH", "B,20200101,DEP,2,1,CASH")

	g.push(txns[0])
	if g.state != inRun || g.account != "A" {
		t.Errorf("after A: state = %v account = %q, want inRun A", g.state, g.account)
	}
	g.push(txns[1])
	if g.account != "B" {
		t.Errorf("after B: account = %q, want B", g.account)
	}
	if _, ok := g.out["A"]; !ok {
		t.Errorf("run A was not emitted on account change")
	}
	if _, ok := g.out["B"]; ok {
		t.Errorf("run B was emitted before the end of input")
	}

	g.close()
	if g.state != noRun {
		t.Errorf("after close: state = %v, want noRun", g.state)
	}
	if _, ok := g.out["B"]; !ok {
		t.Errorf("run B was not emitted by the final close")
	}
	// a second close has nothing to flush.
	g.close()
	if len(g.out) != 2 {
		t.Errorf("len(out) = %d, want 2", len(g.out))
	}
}
