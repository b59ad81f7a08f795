package evaluation

import "fmt"

// RequestError reports an invalid evaluation request. These surface to
// the caller as client errors and are never retried or defaulted away.
type RequestError struct {
	Field   string
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("invalid evaluation request: %s: %s", e.Field, e.Message)
}

// validate checks required fields and declared ranges. Optional fields
// are not touched here; their defaults are documented at point of use.
func validate(req *Request) error {
	switch req.QuestionType {
	case "":
		return &RequestError{Field: "questionType", Message: "required"}
	case TypeMultipleChoice, TypeFreeForm, TypeNumeric:
		if req.ExpectedAnswer == "" {
			return &RequestError{Field: "expectedAnswer", Message: fmt.Sprintf("required for %s questions", req.QuestionType)}
		}
	case TypeStepByStep:
		if len(req.Steps) == 0 {
			return &RequestError{Field: "steps", Message: "required for step-by-step questions"}
		}
		for i, s := range req.Steps {
			if s == "" {
				return &RequestError{Field: "steps", Message: fmt.Sprintf("step %d has no expected answer", i+1)}
			}
		}
	default:
		return &RequestError{Field: "questionType", Message: fmt.Sprintf("unknown type %q", req.QuestionType)}
	}

	if req.Tolerance < 0 || req.Tolerance > 1 {
		return &RequestError{Field: "tolerance", Message: "must be in [0, 1]"}
	}

	return nil
}
