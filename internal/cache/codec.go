package cache

import (
	"encoding/json"
	"strconv"
)

// JSONCodec stores values as JSON documents.
type JSONCodec[T any] struct{}

func (JSONCodec[T]) Marshal(v T) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec[T]) Unmarshal(data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

// IntCodec stores integers as decimal strings so they stay readable in redis-cli.
type IntCodec struct{}

func (IntCodec) Marshal(v int) ([]byte, error) {
	return []byte(strconv.Itoa(v)), nil
}

func (IntCodec) Unmarshal(data []byte) (int, error) {
	return strconv.Atoi(string(data))
}
