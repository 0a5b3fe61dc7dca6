package event

import "encoding/json"

// DecodePayload decodes an event payload into T, trying a direct type
// assertion first. Events published through the in-process MemoryBus
// still carry the original payload struct; payloads that went through
// serialization (dead-letter replay) fall back to a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
