package version

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/YoshitsuguKoike/hellolib/internal/buildinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()
	require.NotNil(t, cmd)

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short description should not be empty")
	assert.NotEmpty(t, cmd.Long, "Long description should not be empty")
	assert.NotNil(t, cmd.Run, "Run function should not be nil")
}

func TestVersionCommand_Output(t *testing.T) {
	orig := buildinfo.Version
	t.Cleanup(func() { buildinfo.Version = orig })
	buildinfo.Version = "v9.9.9"

	var out bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	got := out.String()
	assert.Contains(t, got, "hello version v9.9.9\n")
	assert.Contains(t, got, runtime.Version())
	assert.Contains(t, got, runtime.GOOS+"/"+runtime.GOARCH)
	assert.Contains(t, got, runtime.Compiler)
}
