package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog_Append_RecordsInOrder(t *testing.T) {
	l := NewLog()
	l.Append(1, "first", LevelInfo)
	l.Append(2, "second", LevelSuccess)

	records := l.Records()
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, Record{Tick: 1, Message: "first", Level: LevelInfo}, records[0])
	assert.Equal(t, Record{Tick: 2, Message: "second", Level: LevelSuccess}, records[1])
}

func TestLog_Records_ReturnsSnapshot(t *testing.T) {
	l := NewLog()
	l.Append(1, "original", LevelInfo)

	snapshot := l.Records()
	snapshot[0].Message = "mutated"

	assert.Equal(t, "original", l.Records()[0].Message)
}

func TestLog_Tail_ReturnsSuffix(t *testing.T) {
	l := NewLog()
	for i := int64(1); i <= 5; i++ {
		l.Append(i, "entry", LevelInfo)
	}

	tail := l.Tail(2)
	assert.Len(t, tail, 2)
	assert.Equal(t, int64(4), tail[0].Tick)
	assert.Equal(t, int64(5), tail[1].Tick)
}

func TestLog_Tail_ShortHistoryAndNonPositive(t *testing.T) {
	l := NewLog()
	l.Append(1, "only", LevelWarning)

	assert.Len(t, l.Tail(10), 1)
	assert.Nil(t, l.Tail(0))
}
