// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Seminarkurs-Lernapp-Mathematik/slam-backend/ent/rewardevent"
)

// RewardEvent is the model entity for the RewardEvent schema.
type RewardEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global event ledger, shared across all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// UTC time the event was appended
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the evaluation this reward belongs to
	EvaluationID string `json:"evaluation_id,omitempty"`
	// XpTotal holds the value of the "xp_total" field.
	XpTotal int `json:"xp_total,omitempty"`
	// CoinTotal holds the value of the "coin_total" field.
	CoinTotal int `json:"coin_total,omitempty"`
	// Itemized XP components as returned by the scoring engine
	XpBreakdown map[string]interface{} `json:"xp_breakdown,omitempty"`
	// Coin base, multiplier, and named bonuses
	CoinBreakdown map[string]interface{} `json:"coin_breakdown,omitempty"`
	// A streak freeze suppressed the streak loss
	StreakFrozen bool `json:"streak_frozen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RewardEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rewardevent.FieldXpBreakdown, rewardevent.FieldCoinBreakdown:
			values[i] = new([]byte)
		case rewardevent.FieldStreakFrozen:
			values[i] = new(sql.NullBool)
		case rewardevent.FieldID, rewardevent.FieldSequence, rewardevent.FieldXpTotal, rewardevent.FieldCoinTotal:
			values[i] = new(sql.NullInt64)
		case rewardevent.FieldEvaluationID:
			values[i] = new(sql.NullString)
		case rewardevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RewardEvent fields.
func (_m *RewardEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rewardevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case rewardevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case rewardevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case rewardevent.FieldEvaluationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation_id", values[i])
			} else if value.Valid {
				_m.EvaluationID = value.String
			}
		case rewardevent.FieldXpTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_total", values[i])
			} else if value.Valid {
				_m.XpTotal = int(value.Int64)
			}
		case rewardevent.FieldCoinTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field coin_total", values[i])
			} else if value.Valid {
				_m.CoinTotal = int(value.Int64)
			}
		case rewardevent.FieldXpBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field xp_breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.XpBreakdown); err != nil {
					return fmt.Errorf("unmarshal field xp_breakdown: %w", err)
				}
			}
		case rewardevent.FieldCoinBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field coin_breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CoinBreakdown); err != nil {
					return fmt.Errorf("unmarshal field coin_breakdown: %w", err)
				}
			}
		case rewardevent.FieldStreakFrozen:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field streak_frozen", values[i])
			} else if value.Valid {
				_m.StreakFrozen = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RewardEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RewardEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RewardEvent.
// Note that you need to call RewardEvent.Unwrap() before calling this method if this RewardEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RewardEvent) Update() *RewardEventUpdateOne {
	return NewRewardEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RewardEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RewardEvent) Unwrap() *RewardEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RewardEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RewardEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RewardEvent(")
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
	builder.WriteString("xp_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpTotal))
	builder.WriteString(", ")
	builder.WriteString("coin_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoinTotal))
	builder.WriteString(", ")
	builder.WriteString("xp_breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpBreakdown))
	builder.WriteString(", ")
	builder.WriteString("coin_breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoinBreakdown))
	builder.WriteString(", ")
	builder.WriteString("streak_frozen=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakFrozen))
	builder.WriteByte(')')
	return builder.String()
}

// RewardEvents is a parsable slice of RewardEvent.
type RewardEvents []*RewardEvent
