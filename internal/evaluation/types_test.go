package evaluation

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestRawAnswerUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"string", `"1/2"`, []string{"1/2"}},
		{"array", `["2x", "x=3"]`, []string{"2x", "x=3"}},
		{"indexed object", `{"1": "x=3", "0": "2x"}`, []string{"2x", "x=3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a RawAnswer
			if err := json.Unmarshal([]byte(tt.in), &a); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := a.Steps(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Steps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRawAnswerUnmarshalRejectsBadShapes(t *testing.T) {
	for _, in := range []string{`42`, `{"a": "1"}`, `[1, 2]`} {
		var a RawAnswer
		if err := json.Unmarshal([]byte(in), &a); err == nil {
			t.Errorf("unmarshal(%s) should fail", in)
		}
	}
}

func TestRawAnswerSingle(t *testing.T) {
	if got := NewAnswer("42").Single(); got != "42" {
		t.Errorf("Single() = %q", got)
	}
	if got := NewStepAnswers([]string{"a", "b"}).Single(); got != "a" {
		t.Errorf("Single() = %q, want first step", got)
	}
	if got := NewAnswer("").Steps(); got != nil {
		t.Errorf("Steps() = %v, want nil for empty answer", got)
	}
}

func TestRequestJSONRoundTrip(t *testing.T) {
	in := `{
		"questionType": "step-by-step",
		"difficulty": 5,
		"steps": ["2x", "x=3"],
		"userAnswer": ["2x", "x=4"],
		"hintsUsed": 1,
		"timeSpentSeconds": 42.5,
		"correctStreak": 3,
		"isFirstQuestionToday": true,
		"tolerance": 0.01
	}`

	var req Request
	if err := json.Unmarshal([]byte(in), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.QuestionType != TypeStepByStep || req.Difficulty != 5 {
		t.Errorf("request = %+v", req)
	}
	if !reflect.DeepEqual(req.UserAnswer.Steps(), []string{"2x", "x=4"}) {
		t.Errorf("user answer = %v", req.UserAnswer.Steps())
	}
	if !req.FirstQuestionToday || req.Tolerance != 0.01 {
		t.Errorf("request = %+v", req)
	}
}
