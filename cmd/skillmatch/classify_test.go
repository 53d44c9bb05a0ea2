package main

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/skill-match/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Skills(t *testing.T) {
	resetFlags(t)
	classifySkills = []string{"figma", "sketch", "prototyping"}
	classifyTop = 1

	out, err := runInProcess(t, runClassify, "")
	require.NoError(t, err)
	assert.Contains(t, out, "#1  UI/UX Designer")
	assert.Contains(t, out, "Match: 30.0%  Confidence: 60.0%")
	assert.Contains(t, out, "... and 9 more categories")
}

func TestClassify_FileJSON(t *testing.T) {
	resetFlags(t)
	classifyFile = writeFile(t, "resume.txt", "Kubernetes, Terraform, Ansible and Jenkins pipelines on Linux")
	classifyJSON = true

	out, err := runInProcess(t, runClassify, "")
	require.NoError(t, err)

	var c types.Classification
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	require.Len(t, c.Categories, 10)

	top, ok := c.Top()
	require.True(t, ok)
	assert.Equal(t, "DevOps Engineer", top.Category)
	assert.Equal(t, 5, top.TotalMatches)
}

func TestClassify_NoSkillsScoresZero(t *testing.T) {
	resetFlags(t)
	classifySkills = []string{"cobol"}
	classifyJSON = true

	out, err := runInProcess(t, runClassify, "")
	require.NoError(t, err)

	var c types.Classification
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	for _, m := range c.Categories {
		assert.Zero(t, m.MatchPercentage, m.Category)
		assert.Empty(t, m.MatchedSkills)
	}
	// Ties keep declaration order
	assert.Equal(t, "Backend Developer", c.Categories[0].Category)
}
