package cmd

import "testing"

func TestCompletion(t *testing.T) {
	root := Completion()
	for _, c := range Commands {
		if root.Sub[c.Name()] == nil {
			t.Errorf("command %q has no completion", c.Name())
		}
	}

	h := root.Sub["holdings"]
	for _, name := range []string{"d", "f", "o", "format", "c", "q"} {
		if h.Flags[name] == nil {
			t.Errorf("holdings flag -%s has no completion", name)
		}
	}
	got := h.Flags["format"].Predict("")
	if len(got) != 3 {
		t.Errorf("holdings -format predicts %v, want the 3 formats", got)
	}
	if root.Flags["config"] == nil || root.Flags["v"] == nil {
		t.Errorf("global flags completion = %v", root.Flags)
	}
}
