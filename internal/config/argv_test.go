package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgv(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr string
	}{
		{name: "empty", input: "", want: nil},
		{name: "bare command", input: "audacity", want: []string{"audacity"}},
		{name: "flatpak launch", input: "flatpak run org.audacityteam.Audacity", want: []string{"flatpak", "run", "org.audacityteam.Audacity"}},
		{name: "tab separated", input: "audacity\t--new", want: []string{"audacity", "--new"}},
		{name: "double quoted path", input: `audacity --settings "/tmp/My Settings"`, want: []string{"audacity", "--settings", "/tmp/My Settings"}},
		{name: "single quoted env", input: `env 'AUDACITY_HOME=/opt/my audacity' audacity`, want: []string{"env", "AUDACITY_HOME=/opt/my audacity", "audacity"}},
		{name: "escaped space", input: `/opt/audio\ tools/audacity`, want: []string{"/opt/audio tools/audacity"}},
		{name: "escaped quote inside quotes", input: `audacity "a \"b\" c"`, want: []string{"audacity", `a "b" c`}},
		{name: "adjacent quoted segment", input: `audacity --config="/etc/aud conf"`, want: []string{"audacity", "--config=/etc/aud conf"}},
		{name: "commented out", input: `# audacity`, want: nil},
		{name: "unterminated quote", input: `audacity "oops`, wantErr: "unterminated quote"},
		{name: "unterminated escape", input: `audacity trailing\`, wantErr: "unterminated escape"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseArgv(tc.input)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMustParseArgvPanicsOnInvalidInput(t *testing.T) {
	require.Panics(t, func() {
		_ = mustParseArgv(`audacity "unterminated`)
	})
}
