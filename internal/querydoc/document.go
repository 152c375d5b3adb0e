// Package querydoc loads bindq queries from YAML documents.
//
// A document names a base statement and a list of filters. Filters whose
// value is absent are skipped, so one document can describe a search form
// where any field may be left blank:
//
//	base: select * from orders
//	filters:
//	  - column: status
//	    op: text
//	    value: open
//	  - column: id
//	    op: in
//	    type: numeric
//	    values: [1, 2, 3]
//	order_by: [created_at desc]
//	limit: 20
package querydoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a query.
type Document struct {
	// Base is the SQL the conditions are appended to.
	Base string `yaml:"base"`

	// Filters become comparisons, in order.
	Filters []Filter `yaml:"filters,omitempty"`

	// Where clauses are added verbatim and joined with "and".
	Where []string `yaml:"where,omitempty"`

	// AnyOf clauses are joined with "or" into one condition.
	AnyOf []string `yaml:"any_of,omitempty"`

	// Binds are explicitly named variables referenced from Where or AnyOf.
	Binds []Bind `yaml:"binds,omitempty"`

	OrderBy []string `yaml:"order_by,omitempty"`
	Limit   *uint    `yaml:"limit,omitempty"`
	Offset  *uint    `yaml:"offset,omitempty"`

	// Debug logs the interpolated statement on render.
	Debug bool `yaml:"debug,omitempty"`
}

// Filter describes one comparison.
type Filter struct {
	Column string `yaml:"column"`

	// Op is one of =, !=, <, <=, >, >=, in, text, bool, not_null,
	// is_null, is_not_null.
	Op string `yaml:"op"`

	// Type is numeric, text or uuid. Defaults to text.
	Type string `yaml:"type,omitempty"`

	// Value is the single value. A missing or null value skips the filter.
	Value any `yaml:"value,omitempty"`

	// Values is the list for op "in". A missing list skips the filter; an
	// empty list matches nothing.
	Values []any `yaml:"values,omitempty"`

	// ColumnFuncs and ValueFuncs name SQL functions, innermost first.
	// lower and trim are built in; any other name is called as is.
	ColumnFuncs []string `yaml:"column_funcs,omitempty"`
	ValueFuncs  []string `yaml:"value_funcs,omitempty"`
}

// Bind is an explicitly named bind variable.
type Bind struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type,omitempty"`
	Value any    `yaml:"value,omitempty"`
}

// Load reads and parses a document file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query document: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes a document and checks required fields. Unknown keys are
// rejected.
func Parse(r io.Reader) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: empty document")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate(&doc); err != nil {
		return nil, fmt.Errorf("invalid query document: %w", err)
	}
	return &doc, nil
}

func validate(doc *Document) error {
	if doc.Base == "" {
		return fmt.Errorf("base is required")
	}
	for i, f := range doc.Filters {
		if f.Column == "" {
			return fmt.Errorf("filter %d: column is required", i)
		}
		if _, ok := ops[f.Op]; !ok {
			return fmt.Errorf("filter %d (%s): unknown op %q", i, f.Column, f.Op)
		}
		if !validType(f.Type) {
			return fmt.Errorf("filter %d (%s): unknown type %q", i, f.Column, f.Type)
		}
	}
	for i, b := range doc.Binds {
		if b.Name == "" {
			return fmt.Errorf("bind %d: name is required", i)
		}
		if !validType(b.Type) {
			return fmt.Errorf("bind %d (%s): unknown type %q", i, b.Name, b.Type)
		}
	}
	return nil
}

// Value types.
const (
	TypeText    = "text"
	TypeNumeric = "numeric"
	TypeUUID    = "uuid"
)

func validType(t string) bool {
	switch t {
	case "", TypeText, TypeNumeric, TypeUUID:
		return true
	default:
		return false
	}
}
