package holdings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/etnz/holdings/date"
	"github.com/google/go-cmp/cmp"
)

var scenario = []string{
	"A,20200101,DEP,100,1,CASH",
	"A,20200102,BOT,10,5,X",
	"A,20200103,SLD,10,6,X",
}

func TestCalculate_Scenarios(t *testing.T) {
	testCases := []struct {
		name   string
		lines  []string
		cutoff string
		want   map[string]Holdings
	}{
		{
			name:   "position closed by the sale",
			lines:  scenario,
			cutoff: "20200103",
			want:   map[string]Holdings{"A": H("CASH", 110)},
		},
		{
			name:   "sale after the cutoff",
			lines:  scenario,
			cutoff: "20200102",
			want:   map[string]Holdings{"A": H("CASH", 50, "X", 10)},
		},
		{
			name: "two accounts",
			lines: []string{
				"A,20200101,DEP,100,1,CASH",
				"A,20200102,DEP,20,1,CASH",
				"B,20200101,DEP,5,1,CASH",
			},
			cutoff: "20200103",
			want: map[string]Holdings{
				"A": H("CASH", 120),
				"B": H("CASH", 5),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Calculate(tc.lines, date.MustParse(tc.cutoff))
			if len(res.Rejections) != 0 {
				t.Errorf("Rejections = %v, want none", res.Rejections)
			}
			if diff := cmp.Diff(tc.want, res.Holdings, quantityEqual); diff != "" {
				t.Errorf("Holdings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculate_Rejections(t *testing.T) {
	lines := []string{
		"A,20200101,DEP,100,1,CASH",
		"A,20200102,BOT,10,5",
		"",
		"A,20200103,BOT,1,1,Y\r",
		"C,20200103,XXX,1,1,Y",
	}
	res := Calculate(lines, date.MustParse("20200103"))

	want := map[string]Holdings{"A": H("CASH", 99, "Y", 1)}
	if diff := cmp.Diff(want, res.Holdings, quantityEqual); diff != "" {
		t.Errorf("Holdings mismatch (-want +got):\n%s", diff)
	}

	if len(res.Rejections) != 2 {
		t.Fatalf("len(Rejections) = %d, want 2: %v", len(res.Rejections), res.Rejections)
	}
	if r := res.Rejections[0]; r.Line != 2 || !errors.Is(r.Err, ErrMalformedLine) {
		t.Errorf("Rejections[0] = line %d %v, want line 2 %v", r.Line, r.Err, ErrMalformedLine)
	}
	if r := res.Rejections[1]; r.Line != 5 || r.Reason().Kind != ErrUnknownType || r.Reason().Value != "XXX" {
		t.Errorf("Rejections[1] = line %d %v, want line 5 %v", r.Line, r.Err, ErrUnknownType)
	}
	if _, ok := res.Holdings["C"]; ok {
		t.Errorf("account C has holdings, but its only line was rejected")
	}
}

func TestCalculateReader(t *testing.T) {
	r := strings.NewReader(strings.Join(scenario, "\n") + "\n")
	res, err := CalculateReader(r, date.MustParse("20200103"))
	if err != nil {
		t.Fatalf("CalculateReader() returned unexpected error: %v", err)
	}
	assertHoldings(t, res.Holdings["A"], H("CASH", 110))
}

func TestCalculate_OutOfRangeQuantity(t *testing.T) {
	res := Calculate([]string{
		"A,20200101,BOT,1e2000000000,1,X",
		"B,20200101,DEP,20,1,CASH",
	}, cutoff)
	assertHoldings(t, res.Holdings["B"], H("CASH", 20))
	if len(res.Rejections) != 1 || !errors.Is(res.Rejections[0].Err, ErrInvalidUnits) {
		t.Errorf("Calculate() rejections = %v, want one %v", res.Rejections, ErrInvalidUnits)
	}
}

func TestCalculateReader_LongLine(t *testing.T) {
	input := "A,20200101,DEP,100,1,CASH\n" +
		"A,20200101,DEP," + strings.Repeat("1", 70*1024) + ",1,CASH\n" +
		"B,20200101,DEP,20,1,CASH\n"
	res, err := CalculateReader(strings.NewReader(input), cutoff)
	if err != nil {
		t.Fatalf("CalculateReader() returned unexpected error: %v", err)
	}
	assertHoldings(t, res.Holdings["A"], H("CASH", 100))
	assertHoldings(t, res.Holdings["B"], H("CASH", 20))
	if len(res.Rejections) != 1 {
		t.Fatalf("CalculateReader() rejected %d lines, want 1", len(res.Rejections))
	}
	if got := res.Rejections[0].Line; got != 2 {
		t.Errorf("CalculateReader() rejected line %d, want 2", got)
	}
	if !errors.Is(res.Rejections[0].Err, ErrInvalidUnits) {
		t.Errorf("CalculateReader() rejection = %v, want %v", res.Rejections[0].Err, ErrInvalidUnits)
	}
}

func TestReadLines(t *testing.T) {
	long := strings.Repeat("x", 100*1024)
	got, err := ReadLines(strings.NewReader("a\r\n\n" + long + "\nlast"))
	if err != nil {
		t.Fatalf("ReadLines() returned unexpected error: %v", err)
	}
	want := []string{"a", "", long, "last"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculateReader_Unreadable(t *testing.T) {
	boom := errors.New("boom")
	res, err := CalculateReader(iotest.ErrReader(boom), cutoff)
	if !errors.Is(err, ErrUnreadableInput) {
		t.Errorf("CalculateReader() error = %v, want %v", err, ErrUnreadableInput)
	}
	if !errors.Is(err, boom) {
		t.Errorf("CalculateReader() error = %v, want it to wrap %v", err, boom)
	}
	if res.Holdings != nil {
		t.Errorf("CalculateReader() returned a partial result: %v", res.Holdings)
	}
}

func TestCalculateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	if err := os.WriteFile(path, []byte(strings.Join(scenario, "\r\n")), 0644); err != nil {
		t.Fatal(err)
	}
	res, err := CalculateFile(path, date.MustParse("20200102"))
	if err != nil {
		t.Fatalf("CalculateFile() returned unexpected error: %v", err)
	}
	assertHoldings(t, res.Holdings["A"], H("CASH", 50, "X", 10))

	_, err = CalculateFile(filepath.Join(t.TempDir(), "missing.txt"), cutoff)
	if !errors.Is(err, ErrUnreadableInput) {
		t.Errorf("CalculateFile(missing) error = %v, want %v", err, ErrUnreadableInput)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	if err := os.WriteFile(path, []byte("A,20200101,DEP,100,1,CASH\n\nB\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() returned unexpected error: %v", err)
	}
	want := []string{"A,20200101,DEP,100,1,CASH", "", "B"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadFile() mismatch (-want +got):\n%s", diff)
	}

	if _, err := ReadFile(t.TempDir()); !errors.Is(err, ErrUnreadableInput) {
		t.Errorf("ReadFile(directory) error = %v, want %v", err, ErrUnreadableInput)
	}
}
