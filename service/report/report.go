package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viant/lockor/service/intake"
)

// EmptyToken stands in for blank cells so they show up in the frequency
// counts.
const EmptyToken = "<EMPTY>"

// DefaultMaxValues caps how many distinct values are listed per column.
const DefaultMaxValues = 30

// Value is one distinct cell value and its occurrence count.
type Value struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// Column summarises one column of a table.
type Column struct {
	Name   string  `json:"name"`
	Unique int     `json:"unique"`
	Values []Value `json:"values,omitempty"`
}

// Summary is the frequency report of a single table.
type Summary struct {
	URL     string   `json:"url"`
	Rows    int      `json:"rows"`
	Columns []Column `json:"columns,omitempty"`
}

// Analyze builds the frequency summary of a table. maxValues <= 0 falls back
// to DefaultMaxValues.
func Analyze(table *intake.Table, maxValues int) *Summary {
	if maxValues <= 0 {
		maxValues = DefaultMaxValues
	}
	ret := &Summary{URL: table.URL, Rows: len(table.Rows)}
	for _, name := range table.Columns {
		counts := map[string]int{}
		var order []string
		for _, row := range table.Rows {
			value := strings.TrimSpace(row[name])
			if value == "" {
				value = EmptyToken
			}
			if _, seen := counts[value]; !seen {
				order = append(order, value)
			}
			counts[value]++
		}

		column := Column{Name: name, Unique: len(counts)}
		// Most common first; ties keep first-seen order.
		sort.SliceStable(order, func(i, j int) bool {
			return counts[order[i]] > counts[order[j]]
		})
		for i, value := range order {
			if i >= maxValues {
				break
			}
			column.Values = append(column.Values, Value{Text: value, Count: counts[value]})
		}
		ret.Columns = append(ret.Columns, column)
	}
	return ret
}

// Format renders the summary as indented text, one block per column.
func (s *Summary) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "File: %s\n", s.URL)
	fmt.Fprintf(&b, "  Rows: %d\n", s.Rows)
	for _, column := range s.Columns {
		fmt.Fprintf(&b, "  Column: %s\n", column.Name)
		fmt.Fprintf(&b, "    Unique values: %d\n", column.Unique)
		for _, value := range column.Values {
			fmt.Fprintf(&b, "    - %s (%d)\n", value.Text, value.Count)
		}
		if more := column.Unique - len(column.Values); more > 0 {
			fmt.Fprintf(&b, "    ... and %d more\n", more)
		}
	}
	return b.String()
}
