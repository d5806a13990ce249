package lidio

import (
	"bytes"

	"github.com/goccy/go-json"
)

// WireRequest is a finalized request body. Keys keep the order in which they were emitted.
type WireRequest struct {
	keys   []string
	values map[string]any
}

func newWireRequest() *WireRequest {
	return &WireRequest{values: make(map[string]any)}
}

func (w *WireRequest) set(key string, value any) {
	if _, exists := w.values[key]; !exists {
		w.keys = append(w.keys, key)
	}
	w.values[key] = value
}

func (w *WireRequest) Keys() []string {
	keys := make([]string, len(w.keys))
	copy(keys, w.keys)
	return keys
}

func (w *WireRequest) Get(key string) (any, bool) {
	value, ok := w.values[key]
	return value, ok
}

func (w *WireRequest) Len() int {
	return len(w.keys)
}

func (w *WireRequest) ToMap() map[string]any {
	result := make(map[string]any, len(w.keys))
	for _, key := range w.keys {
		result[key] = w.values[key]
	}
	return result
}

func (w *WireRequest) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range w.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')

		encodedValue, err := json.Marshal(w.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
