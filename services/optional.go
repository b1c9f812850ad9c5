package services

import "encoding/json"

// Opt marks a field of an upstream response that may be absent. A JSON
// null counts as absent.
type Opt[T any] struct {
	Value T
	Set   bool
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

// Or returns the value when present and def otherwise.
func (o Opt[T]) Or(def T) T {
	if o.Set {
		return o.Value
	}
	return def
}
