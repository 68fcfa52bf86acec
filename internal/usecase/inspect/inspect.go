// Package inspect runs JSONPath queries against a saved event bucket.
package inspect

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Result is the outcome of one query.
type Result struct {
	Expr    string `json:"expr"`
	OK      bool   `json:"ok"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message,omitempty"`
}

// Apply evaluates each expression against body in the order given.
// A body that is not JSON fails every query; a failing query does not
// stop the others. Each Result echoes its argument as given.
func Apply(body []byte, exprs []string) []Result {
	out := make([]Result, 0, len(exprs))
	if len(exprs) == 0 {
		return out
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		for _, e := range exprs {
			out = append(out, Result{Expr: e, Message: "bucket is not valid JSON"})
		}
		return out
	}

	for _, raw := range exprs {
		r := query(doc, strings.TrimSpace(raw))
		r.Expr = raw
		out = append(out, r)
	}
	return out
}

func query(doc any, expr string) Result {
	if expr == "" {
		return Result{Expr: expr, Message: "empty jsonpath expression"}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return Result{Expr: expr, Message: fmt.Sprintf("jsonpath error: %v", err)}
	}
	if isEmptyValue(val) {
		return Result{Expr: expr, Message: "no value found"}
	}

	s, err := toString(val)
	if err != nil {
		return Result{Expr: expr, Message: fmt.Sprintf("cannot render value: %v", err)}
	}
	return Result{Expr: expr, OK: true, Value: s}
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// Index and filter expressions yield slices; unwrap a single hit.
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		return toString(arr[0])
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
