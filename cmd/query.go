package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// jsonQuery evaluates a JSONPath expression on a JSON document and returns
// the selected value as JSON. Numbers keep their exact decimal text.
func jsonQuery(data []byte, path string) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("could not decode report: %w", err)
	}
	selected, err := jsonpath.Get(path, v)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate %q: %w", path, err)
	}
	return json.Marshal(selected)
}
