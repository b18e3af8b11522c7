package testutils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

// RenderMessage flattens a composed message to its wire form so tests can
// assert on headers and body together.
func RenderMessage(t *testing.T, msg *mail.Msg) string {
	t.Helper()

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)

	return buf.String()
}
