package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.35, Round2(2.345))
	assert.Equal(t, 2.34, Round2(2.344))
	assert.Equal(t, -1.5, Round2(-1.499999))
	assert.Equal(t, 0.0, Round2(0))
}

func TestRound4(t *testing.T) {
	assert.Equal(t, 0.1235, Round4(0.12345))
	assert.Equal(t, 1.0, Round4(0.99999))
}

func TestNewRequestID(t *testing.T) {
	id := NewRequestID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewRequestID())
}

func TestNowMillis(t *testing.T) {
	assert.Greater(t, NowMillis(), int64(0))
}
