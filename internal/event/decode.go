package event

import "encoding/json"

// DecodePayload converts an event payload into T. Payloads published in-process already have
// the concrete type; payloads read back from the dead-letter file are generic maps and take
// the JSON path.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	if p, ok := input.(*T); ok && p != nil {
		return *p, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
