// Copyright easylive1989, 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingTransport fails every request while counting attempts, so a
// test can assert that a code path never reached the network.
type countingTransport struct{ calls int }

func (c *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	c.calls++
	return nil, fmt.Errorf("network access not expected")
}

// interceptNetwork routes all default-transport traffic through a counter
// for the duration of the test.
func interceptNetwork(t *testing.T) *countingTransport {
	t.Helper()
	orig := http.DefaultTransport
	ct := &countingTransport{}
	http.DefaultTransport = ct
	t.Cleanup(func() { http.DefaultTransport = orig })
	return ct
}

// withoutCredentials clears the given env vars and points the secrets
// fallback at an empty directory.
func withoutCredentials(t *testing.T, envVars ...string) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
	}
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatal(err)
		}
	})
	loadedSecrets = nil
	t.Cleanup(func() { loadedSecrets = nil })
}

func TestRolloverMissingCredentialMakesNoCalls(t *testing.T) {
	ct := interceptNetwork(t)
	withoutCredentials(t, "NOTION_SECRET")

	viper.Set("ledger.database_id", "db-ledger")
	viper.Set("ledger.results_database_id", "db-results")
	t.Cleanup(viper.Reset)

	err := runRollover(rolloverCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTION_SECRET")
	assert.Equal(t, 0, ct.calls)
}

func TestPublishFileMissingCredentialMakesNoCalls(t *testing.T) {
	ct := interceptNetwork(t)
	withoutCredentials(t, "MEDIUM_TOKEN", "MEDIUM_USER_ID")

	err := runPublishFile(publishFileCmd, []string{"note.md"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MEDIUM_TOKEN")
	assert.Equal(t, 0, ct.calls)
}

func TestTranscribeMissingCredentialMakesNoCalls(t *testing.T) {
	ct := interceptNetwork(t)
	withoutCredentials(t, "OPENAI_API_KEY")

	err := runTranscribe(transcribeCmd, []string{"memo.mp3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	assert.Equal(t, 0, ct.calls)
}
