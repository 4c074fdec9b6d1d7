package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kit678/blaide-bolt/pkg/email"
)

func TestDevSender_SavesEmailToDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(dir)

	id, err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "user@example.com",
		ReplyTo:  "submitter@example.com",
		Subject:  "New Contact Form Submission: Hello",
		BodyHTML: "<h1>Hello</h1>",
		Tag:      "contact-admin",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id, "dev sender should return a stand-in message id")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2, "one HTML and one JSON file should be written")

	var htmlFile, jsonFile string
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".html":
			htmlFile = e.Name()
		case ".json":
			jsonFile = e.Name()
		}
	}
	require.NotEmpty(t, htmlFile)
	require.NotEmpty(t, jsonFile)
	assert.True(t, strings.HasPrefix(htmlFile, id), "files should share the returned id as basename")

	html, err := os.ReadFile(filepath.Join(dir, htmlFile))
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hello</h1>", string(html))

	raw, err := os.ReadFile(filepath.Join(dir, jsonFile))
	require.NoError(t, err)
	var meta map[string]any
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, "user@example.com", meta["send_to"])
	assert.Equal(t, "submitter@example.com", meta["reply_to"])
	assert.Equal(t, "contact-admin", meta["tag"])
}

func TestDevSender_RejectsInvalidParams(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(dir)

	_, err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo: "not-an-address",
	})
	require.ErrorIs(t, err, email.ErrInvalidParams)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing should be written for invalid params")
}
