package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())
	assert.False(s.Full())

	assert.NoError(s.Push(0x202))
	assert.False(s.Empty())
	assert.Equal(1, s.Sp)
	assert.Equal(uint16(0x202), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.NoError(s.Push(0x202))
	assert.NoError(s.Push(0x356))

	val, err := s.Pop()
	assert.NoError(err)
	assert.Equal(uint16(0x356), val)
	assert.Equal(1, s.Sp)

	val, err = s.Pop()
	assert.NoError(err)
	assert.Equal(uint16(0x202), val)
	assert.Equal(0, s.Sp)
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, err := s.Pop()
	assert.ErrorIs(err, ErrStackEmpty)
	assert.Equal(uint16(0), val)
	assert.Equal(0, s.Sp)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.NoError(s.Push(0x202))
	assert.NoError(s.Push(0x356))

	val, err := s.Peek()
	assert.NoError(err)
	assert.Equal(uint16(0x356), val)
	assert.Equal(2, s.Sp)
}

func TestStack_Peek_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	_, err := s.Peek()
	assert.ErrorIs(err, ErrStackEmpty)
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	for i := range STACK_LIMIT {
		assert.False(s.Full())
		assert.NoError(s.Push(uint16(i)))
	}

	assert.True(s.Full())
	assert.ErrorIs(s.Push(0xfff), ErrStackFull)
	assert.Equal(STACK_LIMIT, s.Sp)
	assert.Equal(uint16(STACK_LIMIT-1), s.Data[STACK_LIMIT-1])
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.NoError(s.Push(0x202))
	assert.NoError(s.Push(0x356))

	s.Reset()
	assert.True(s.Empty())
	assert.Equal(Stack{}, *s)
}
