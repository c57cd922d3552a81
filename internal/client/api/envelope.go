package api

import "encoding/json"

// envelope is the uniform wrapper every backend response arrives in:
// {success, message?, data?, errors?}. It is decoded once, here, so that
// nothing downstream ever re-checks success ad hoc.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []fieldError    `json:"errors"`
}

// fieldError is one validation failure. Different backend routes emit the
// text under either "message" or "msg"; both are accepted.
type fieldError struct {
	Message string
}

func (f *fieldError) UnmarshalJSON(b []byte) error {
	var raw struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	f.Message = raw.Message
	if f.Message == "" {
		f.Message = raw.Msg
	}
	return nil
}

func (e *envelope) fieldMessages() []string {
	if len(e.Errors) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if fe.Message != "" {
			msgs = append(msgs, fe.Message)
		}
	}
	return msgs
}
