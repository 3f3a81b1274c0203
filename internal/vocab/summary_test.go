package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/hanyu/internal/annotate"
)

func linguistic(surface string, level int) annotate.Word {
	return annotate.Word{Surface: surface, Transcription: "x", Gloss: "y", Level: level, IsLinguistic: true}
}

func punct(surface string) annotate.Word {
	return annotate.Word{Surface: surface, Transcription: surface, Gloss: surface}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Empty(t, s.Unique)
	assert.NotNil(t, s.Unique)
	assert.Zero(t, s.TokenCount)
	assert.Zero(t, s.LinguisticCount)
	assert.Zero(t, s.UniqueCount)
	assert.Zero(t, s.CharacterCount)
	assert.Empty(t, s.LevelCounts)
}

func TestSummarize_Greeting(t *testing.T) {
	words := []annotate.Word{linguistic("你好", 1), punct("，"), linguistic("世界", 3)}

	s := Summarize(words)

	assert.Equal(t, 3, s.TokenCount)
	assert.Equal(t, 2, s.LinguisticCount)
	assert.Equal(t, 2, s.UniqueCount)
	assert.Equal(t, 4, s.CharacterCount)
	assert.Equal(t, map[int]int{1: 1, 3: 1}, s.LevelCounts)
}

func TestSummarize_FirstOccurrenceWins(t *testing.T) {
	first := linguistic("朋友", 1)
	first.Gloss = "vriend"
	later := linguistic("朋友", 1)
	later.Gloss = "?"

	s := Summarize([]annotate.Word{first, punct("。"), later, linguistic("我", 1)})

	require.Len(t, s.Unique, 2)
	assert.Equal(t, "vriend", s.Unique[0].Gloss)
	assert.Equal(t, "我", s.Unique[1].Surface)

	// Duplicates still count towards the totals
	assert.Equal(t, 3, s.LinguisticCount)
	assert.Equal(t, 5, s.CharacterCount)
	assert.Equal(t, map[int]int{1: 2}, s.LevelCounts)
}

func TestSummarize_Invariants(t *testing.T) {
	inputs := [][]annotate.Word{
		{},
		{punct("！"), punct("Hello")},
		{linguistic("你好", 1), linguistic("你好", 1), linguistic("2023年", 0)},
		{linguistic("学习", 1), linguistic("散步", 4), linguistic("学习", 1), punct("，"), linguistic("亲爱", 0), linguistic("散步", 4)},
	}

	for _, words := range inputs {
		s := Summarize(words)

		assert.LessOrEqual(t, s.UniqueCount, s.LinguisticCount)

		sum := 0
		for _, n := range s.LevelCounts {
			sum += n
		}
		assert.Equal(t, s.UniqueCount, sum)
		assert.Equal(t, len(words), s.TokenCount)
	}
}

func TestCountLevels(t *testing.T) {
	s := Summarize([]annotate.Word{
		linguistic("我", 1),
		linguistic("喜欢", 1),
		linguistic("已经", 2),
		linguistic("世界", 3),
		linguistic("龙舟", 0),
	})

	assert.Equal(t, 3, s.CountLevels(1, 2))
	assert.Equal(t, 1, s.CountLevels(0))
	assert.Zero(t, s.CountLevels(6))
	assert.Zero(t, s.CountLevels())
	assert.Equal(t, []int{0, 1, 2, 3}, s.Levels())
}
