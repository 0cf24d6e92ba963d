package query

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Condition represents a WHERE clause condition.
type Condition interface {
	// SQL returns the fragment and its arguments. argIndex is the number of
	// the first placeholder the fragment may use ($argIndex).
	SQL(argIndex int) (string, []any)
}

type cmpCondition struct {
	field string
	op    string
	value any
	cast  string
}

func (c *cmpCondition) SQL(argIndex int) (string, []any) {
	return fmt.Sprintf("%s %s $%d%s", c.field, c.op, argIndex, c.cast), []any{c.value}
}

// Eq creates an equality condition: Eq("category", "Shoes") renders "category = $1".
func Eq(field string, value any) Condition {
	return &cmpCondition{field: field, op: "=", value: value}
}

// Ne creates an inequality condition.
func Ne(field string, value any) Condition {
	return &cmpCondition{field: field, op: "<>", value: value}
}

// NumericGte compares a NUMERIC column against a decimal. The value is sent
// as text and cast server-side so no precision is lost on the way.
func NumericGte(field string, value decimal.Decimal) Condition {
	return &cmpCondition{field: field, op: ">=", value: value.String(), cast: "::text::numeric"}
}

// NumericLte is the upper-bound counterpart of NumericGte.
func NumericLte(field string, value decimal.Decimal) Condition {
	return &cmpCondition{field: field, op: "<=", value: value.String(), cast: "::text::numeric"}
}

type inCondition struct {
	field  string
	values []string
}

// In matches a text column against a set: In("brand", []string{"Nike"})
// renders "brand = ANY($1)".
func In(field string, values []string) Condition {
	return &inCondition{field: field, values: values}
}

func (c *inCondition) SQL(argIndex int) (string, []any) {
	return fmt.Sprintf("%s = ANY($%d)", c.field, argIndex), []any{c.values}
}

type isTrueCondition struct {
	field string
}

// IsTrue matches rows where a boolean column is true.
func IsTrue(field string) Condition {
	return &isTrueCondition{field: field}
}

func (c *isTrueCondition) SQL(argIndex int) (string, []any) {
	return c.field + " IS TRUE", nil
}
