package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelfUpdateCmd(t *testing.T) {
	selfUpdateCmd := newSelfUpdateCmd(&rootOptions{})

	assert.Equal(t, "self-update", selfUpdateCmd.Use)
	assert.NotEmpty(t, selfUpdateCmd.Short)
	assert.NotEmpty(t, selfUpdateCmd.Long)
	assert.NotNil(t, selfUpdateCmd.RunE)
}

func TestRunSelfUpdateWithDevVersion(t *testing.T) {
	for _, version := range []string{"dev", ""} {
		t.Run("version="+version, func(t *testing.T) {
			var out bytes.Buffer
			err := runSelfUpdate(context.Background(), &out, version, githubRepoSlug)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "cannot self-update a development version")
			assert.Empty(t, out.String(), "nothing is checked for dev builds")
		})
	}
}

func TestSelfUpdateCommandHelp(t *testing.T) {
	selfUpdateCmd := newSelfUpdateCmd(&rootOptions{})
	var buf bytes.Buffer
	selfUpdateCmd.SetOut(&buf)
	selfUpdateCmd.SetErr(&buf)
	selfUpdateCmd.SetArgs([]string{"--help"})

	require.NoError(t, selfUpdateCmd.Execute())
	assert.Contains(t, buf.String(), "Checks for the latest release")
	assert.Contains(t, buf.String(), "self-update")
}

func TestGithubRepoSlug(t *testing.T) {
	assert.Equal(t, "huectl/huectl", githubRepoSlug)
}

// The update itself needs network access and would replace the test
// binary, so only the guard paths are covered here.
