// Package result implements the uniform response envelope used by every API
// response: success carrying a payload, success without one, or failure with a
// message. Envelopes are built through constructors only, so a success that
// carries an error message (or the reverse) cannot be represented.
package result

import "encoding/json"

// Result is the envelope for responses that carry a payload on success.
type Result[T any] struct {
	success bool
	data    T
	hasData bool
	errMsg  string
}

// Ok returns a successful envelope wrapping data.
func Ok[T any](data T) Result[T] {
	return Result[T]{success: true, data: data, hasData: true}
}

// Err returns a failed envelope with the given message.
func Err[T any](msg string) Result[T] {
	return Result[T]{errMsg: msg}
}

// Success reports whether the envelope represents a successful operation.
func (r Result[T]) Success() bool {
	return r.success
}

// Data returns the payload and whether one is present.
func (r Result[T]) Data() (T, bool) {
	return r.data, r.hasData
}

// Message returns the error message of a failed envelope, empty on success.
func (r Result[T]) Message() string {
	return r.errMsg
}

type resultJSON[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// MarshalJSON implements [json.Marshaler].
func (r Result[T]) MarshalJSON() ([]byte, error) {
	raw := resultJSON[T]{Success: r.success}
	if r.hasData {
		raw.Data = &r.data
	}
	if r.errMsg != "" {
		raw.Error = &r.errMsg
	}
	return json.Marshal(raw)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (r *Result[T]) UnmarshalJSON(b []byte) error {
	var raw resultJSON[T]
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = Result[T]{success: raw.Success}
	if raw.Success && raw.Data != nil {
		r.data = *raw.Data
		r.hasData = true
	}
	if !raw.Success && raw.Error != nil {
		r.errMsg = *raw.Error
	}
	return nil
}

// Void is the envelope for responses without a payload, such as update and
// delete confirmations.
type Void struct {
	success bool
	errMsg  string
}

// OkVoid returns a successful payload-free envelope.
func OkVoid() Void {
	return Void{success: true}
}

// Fail returns a failed payload-free envelope with the given message.
func Fail(msg string) Void {
	return Void{errMsg: msg}
}

// Success reports whether the envelope represents a successful operation.
func (v Void) Success() bool {
	return v.success
}

// Message returns the error message of a failed envelope, empty on success.
func (v Void) Message() string {
	return v.errMsg
}

type voidJSON struct {
	Success bool    `json:"success"`
	Error   *string `json:"error,omitempty"`
}

// MarshalJSON implements [json.Marshaler].
func (v Void) MarshalJSON() ([]byte, error) {
	raw := voidJSON{Success: v.success}
	if v.errMsg != "" {
		raw.Error = &v.errMsg
	}
	return json.Marshal(raw)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (v *Void) UnmarshalJSON(b []byte) error {
	var raw voidJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*v = Void{success: raw.Success}
	if !raw.Success && raw.Error != nil {
		v.errMsg = *raw.Error
	}
	return nil
}
