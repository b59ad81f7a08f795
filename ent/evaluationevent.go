// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/evaluationevent"
)

// EvaluationEvent is the model entity for the EvaluationEvent schema.
type EvaluationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event ledger, shared across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time the event was appended
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the evaluation; links to RewardEvent
	EvaluationID string `json:"evaluation_id,omitempty"`
	// multiple-choice, free-form, numeric, or step-by-step
	QuestionType string `json:"question_type,omitempty"`
	// Question difficulty 1-10 as supplied by the caller
	Difficulty int `json:"difficulty,omitempty"`
	// The canonical correct answer (steps joined for step-by-step)
	ExpectedAnswer string `json:"expected_answer,omitempty"`
	// What the learner entered; empty when skipped
	UserAnswer string `json:"user_answer,omitempty"`
	// The engine's overall verdict
	Correct bool `json:"correct,omitempty"`
	// exact, numeric, algebraic, or none
	EquivalenceMethod string `json:"equivalence_method,omitempty"`
	// Numeric near miss inside the widened tolerance band
	IsClose bool `json:"is_close,omitempty"`
	// Skipped holds the value of the "skipped" field.
	Skipped bool `json:"skipped,omitempty"`
	// Catalog IDs of detected misconceptions, in detection order
	MisconceptionIds []string `json:"misconception_ids,omitempty"`
	// Misconception catalog semver the event was evaluated under
	CatalogVersion string `json:"catalog_version,omitempty"`
	// HintsUsed holds the value of the "hints_used" field.
	HintsUsed int `json:"hints_used,omitempty"`
	// TimeSpentSeconds holds the value of the "time_spent_seconds" field.
	TimeSpentSeconds float64 `json:"time_spent_seconds,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationevent.FieldMisconceptionIds:
			values[i] = new([]byte)
		case evaluationevent.FieldCorrect, evaluationevent.FieldIsClose, evaluationevent.FieldSkipped:
			values[i] = new(sql.NullBool)
		case evaluationevent.FieldTimeSpentSeconds:
			values[i] = new(sql.NullFloat64)
		case evaluationevent.FieldID, evaluationevent.FieldSequence, evaluationevent.FieldDifficulty, evaluationevent.FieldHintsUsed:
			values[i] = new(sql.NullInt64)
		case evaluationevent.FieldEvaluationID, evaluationevent.FieldQuestionType, evaluationevent.FieldExpectedAnswer, evaluationevent.FieldUserAnswer, evaluationevent.FieldEquivalenceMethod, evaluationevent.FieldCatalogVersion:
			values[i] = new(sql.NullString)
		case evaluationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationEvent fields.
func (_m *EvaluationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case evaluationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case evaluationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case evaluationevent.FieldEvaluationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation_id", values[i])
			} else if value.Valid {
				_m.EvaluationID = value.String
			}
		case evaluationevent.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case evaluationevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case evaluationevent.FieldExpectedAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expected_answer", values[i])
			} else if value.Valid {
				_m.ExpectedAnswer = value.String
			}
		case evaluationevent.FieldUserAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_answer", values[i])
			} else if value.Valid {
				_m.UserAnswer = value.String
			}
		case evaluationevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case evaluationevent.FieldEquivalenceMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field equivalence_method", values[i])
			} else if value.Valid {
				_m.EquivalenceMethod = value.String
			}
		case evaluationevent.FieldIsClose:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_close", values[i])
			} else if value.Valid {
				_m.IsClose = value.Bool
			}
		case evaluationevent.FieldSkipped:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field skipped", values[i])
			} else if value.Valid {
				_m.Skipped = value.Bool
			}
		case evaluationevent.FieldMisconceptionIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field misconception_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MisconceptionIds); err != nil {
					return fmt.Errorf("unmarshal field misconception_ids: %w", err)
				}
			}
		case evaluationevent.FieldCatalogVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field catalog_version", values[i])
			} else if value.Valid {
				_m.CatalogVersion = value.String
			}
		case evaluationevent.FieldHintsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hints_used", values[i])
			} else if value.Valid {
				_m.HintsUsed = int(value.Int64)
			}
		case evaluationevent.FieldTimeSpentSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_seconds", values[i])
			} else if value.Valid {
				_m.TimeSpentSeconds = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EvaluationEvent.
// Note that you need to call EvaluationEvent.Unwrap() before calling this method if this EvaluationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationEvent) Update() *EvaluationEventUpdateOne {
	return NewEvaluationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationEvent) Unwrap() *EvaluationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("evaluation_id=")
	builder.WriteString(_m.EvaluationID)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("expected_answer=")
	builder.WriteString(_m.ExpectedAnswer)
	builder.WriteString(", ")
	builder.WriteString("user_answer=")
	builder.WriteString(_m.UserAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("equivalence_method=")
	builder.WriteString(_m.EquivalenceMethod)
	builder.WriteString(", ")
	builder.WriteString("is_close=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsClose))
	builder.WriteString(", ")
	builder.WriteString("skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skipped))
	builder.WriteString(", ")
	builder.WriteString("misconception_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.MisconceptionIds))
	builder.WriteString(", ")
	builder.WriteString("catalog_version=")
	builder.WriteString(_m.CatalogVersion)
	builder.WriteString(", ")
	builder.WriteString("hints_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintsUsed))
	builder.WriteString(", ")
	builder.WriteString("time_spent_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSeconds))
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationEvents is a parsable slice of EvaluationEvent.
type EvaluationEvents []*EvaluationEvent
