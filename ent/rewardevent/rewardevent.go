// Code generated by ent, DO NOT EDIT.

package rewardevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rewardevent type in the database.
	Label = "reward_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEvaluationID holds the string denoting the evaluation_id field in the database.
	FieldEvaluationID = "evaluation_id"
	// FieldXpTotal holds the string denoting the xp_total field in the database.
	FieldXpTotal = "xp_total"
	// FieldCoinTotal holds the string denoting the coin_total field in the database.
	FieldCoinTotal = "coin_total"
	// FieldXpBreakdown holds the string denoting the xp_breakdown field in the database.
	FieldXpBreakdown = "xp_breakdown"
	// FieldCoinBreakdown holds the string denoting the coin_breakdown field in the database.
	FieldCoinBreakdown = "coin_breakdown"
	// FieldStreakFrozen holds the string denoting the streak_frozen field in the database.
	FieldStreakFrozen = "streak_frozen"
	// Table holds the table name of the rewardevent in the database.
	Table = "reward_events"
)

// Columns holds all SQL columns for rewardevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldEvaluationID,
	FieldXpTotal,
	FieldCoinTotal,
	FieldXpBreakdown,
	FieldCoinBreakdown,
	FieldStreakFrozen,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// EvaluationIDValidator is a validator for the "evaluation_id" field. It is called by the builders before save.
	EvaluationIDValidator func(string) error
	// DefaultStreakFrozen holds the default value on creation for the "streak_frozen" field.
	DefaultStreakFrozen bool
)

// OrderOption defines the ordering options for the RewardEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByEvaluationID orders the results by the evaluation_id field.
func ByEvaluationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluationID, opts...).ToFunc()
}

// ByXpTotal orders the results by the xp_total field.
func ByXpTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpTotal, opts...).ToFunc()
}

// ByCoinTotal orders the results by the coin_total field.
func ByCoinTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoinTotal, opts...).ToFunc()
}

// ByStreakFrozen orders the results by the streak_frozen field.
func ByStreakFrozen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakFrozen, opts...).ToFunc()
}
