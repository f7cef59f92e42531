package handlers

import (
	"encoding/json"
	"testing"

	"cloverfield-server/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithPayload(t *testing.T) {
	var got api.SelectToolPayload
	h := WithPayload(func(ctx Context, p api.SelectToolPayload) (Result, error) {
		got = p
		return Info("ok"), nil
	})

	// 1. Корректный payload доходит до хендлера
	res, err := h(Context{}, json.RawMessage(`{"slot":3}`))
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Msg)
	assert.Equal(t, 3, got.Slot)

	// 2. Битый JSON
	_, err = h(Context{}, json.RawMessage(`{"slot":`))
	assert.ErrorContains(t, err, "invalid payload format")

	// 3. Невалидное значение до хендлера не доходит
	got = api.SelectToolPayload{}
	_, err = h(Context{}, json.RawMessage(`{"slot":9}`))
	assert.ErrorContains(t, err, "validation failed")
	assert.Zero(t, got.Slot)
}

func TestWithEmptyPayload(t *testing.T) {
	called := false
	h := WithEmptyPayload(func(ctx Context) (Result, error) {
		called = true
		return EmptyResult(), nil
	})

	_, err := h(Context{}, json.RawMessage(`garbage`))
	require.NoError(t, err)
	assert.True(t, called)
}
