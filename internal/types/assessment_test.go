package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{"easy", Easy, false},
		{"Medium", Medium, false},
		{" HARD ", Hard, false},
		{"expert", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDifficulty(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown difficulty")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDifficulties_Order(t *testing.T) {
	assert.Equal(t, []Difficulty{Easy, Medium, Hard}, Difficulties)
	for _, d := range Difficulties {
		assert.True(t, d.Valid())
	}
	assert.False(t, Difficulty("expert").Valid())
}

func TestQuestion_CorrectOption(t *testing.T) {
	q := Question{Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2}
	assert.Equal(t, "c", q.CorrectOption())

	q.CorrectIndex = 7
	assert.Equal(t, "", q.CorrectOption())
}

func TestClassification_Top(t *testing.T) {
	var empty *Classification
	_, ok := empty.Top()
	assert.False(t, ok)

	c := &Classification{Categories: []CategoryMatch{{Category: "Data Scientist"}, {Category: "QA Engineer"}}}
	top, ok := c.Top()
	require.True(t, ok)
	assert.Equal(t, "Data Scientist", top.Category)
}
