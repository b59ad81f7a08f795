// Code generated by ent, DO NOT EDIT.

package evaluationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the evaluationevent type in the database.
	Label = "evaluation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEvaluationID holds the string denoting the evaluation_id field in the database.
	FieldEvaluationID = "evaluation_id"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldExpectedAnswer holds the string denoting the expected_answer field in the database.
	FieldExpectedAnswer = "expected_answer"
	// FieldUserAnswer holds the string denoting the user_answer field in the database.
	FieldUserAnswer = "user_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldEquivalenceMethod holds the string denoting the equivalence_method field in the database.
	FieldEquivalenceMethod = "equivalence_method"
	// FieldIsClose holds the string denoting the is_close field in the database.
	FieldIsClose = "is_close"
	// FieldSkipped holds the string denoting the skipped field in the database.
	FieldSkipped = "skipped"
	// FieldMisconceptionIds holds the string denoting the misconception_ids field in the database.
	FieldMisconceptionIds = "misconception_ids"
	// FieldCatalogVersion holds the string denoting the catalog_version field in the database.
	FieldCatalogVersion = "catalog_version"
	// FieldHintsUsed holds the string denoting the hints_used field in the database.
	FieldHintsUsed = "hints_used"
	// FieldTimeSpentSeconds holds the string denoting the time_spent_seconds field in the database.
	FieldTimeSpentSeconds = "time_spent_seconds"
	// Table holds the table name of the evaluationevent in the database.
	Table = "evaluation_events"
)

// Columns holds all SQL columns for evaluationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldEvaluationID,
	FieldQuestionType,
	FieldDifficulty,
	FieldExpectedAnswer,
	FieldUserAnswer,
	FieldCorrect,
	FieldEquivalenceMethod,
	FieldIsClose,
	FieldSkipped,
	FieldMisconceptionIds,
	FieldCatalogVersion,
	FieldHintsUsed,
	FieldTimeSpentSeconds,
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
	// QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	QuestionTypeValidator func(string) error
	// ExpectedAnswerValidator is a validator for the "expected_answer" field. It is called by the builders before save.
	ExpectedAnswerValidator func(string) error
	// EquivalenceMethodValidator is a validator for the "equivalence_method" field. It is called by the builders before save.
	EquivalenceMethodValidator func(string) error
	// DefaultIsClose holds the default value on creation for the "is_close" field.
	DefaultIsClose bool
	// DefaultSkipped holds the default value on creation for the "skipped" field.
	DefaultSkipped bool
	// DefaultCatalogVersion holds the default value on creation for the "catalog_version" field.
	DefaultCatalogVersion string
	// DefaultHintsUsed holds the default value on creation for the "hints_used" field.
	DefaultHintsUsed int
	// DefaultTimeSpentSeconds holds the default value on creation for the "time_spent_seconds" field.
	DefaultTimeSpentSeconds float64
)

// OrderOption defines the ordering options for the EvaluationEvent queries.
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

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByExpectedAnswer orders the results by the expected_answer field.
func ByExpectedAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedAnswer, opts...).ToFunc()
}

// ByUserAnswer orders the results by the user_answer field.
func ByUserAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByEquivalenceMethod orders the results by the equivalence_method field.
func ByEquivalenceMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEquivalenceMethod, opts...).ToFunc()
}

// ByIsClose orders the results by the is_close field.
func ByIsClose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsClose, opts...).ToFunc()
}

// BySkipped orders the results by the skipped field.
func BySkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipped, opts...).ToFunc()
}

// ByCatalogVersion orders the results by the catalog_version field.
func ByCatalogVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCatalogVersion, opts...).ToFunc()
}

// ByHintsUsed orders the results by the hints_used field.
func ByHintsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintsUsed, opts...).ToFunc()
}

// ByTimeSpentSeconds orders the results by the time_spent_seconds field.
func ByTimeSpentSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSeconds, opts...).ToFunc()
}
