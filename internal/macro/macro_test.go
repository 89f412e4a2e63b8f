package macro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatBareName(t *testing.T) {
	require.Equal(t, "New", Format("New", nil))
}

func TestFormatPairsInOrder(t *testing.T) {
	got := Format("OpenProject2", []Pair{
		{Key: "Filename", Value: "x.proj"},
		{Key: "AddToHistory", Value: "False"},
	})
	require.Equal(t, `OpenProject2: Filename="x.proj" AddToHistory="False"`, got)
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string verbatim", value: "Square, no alias", want: "Square, no alias"},
		{name: "bool true", value: true, want: "True"},
		{name: "bool false", value: false, want: "False"},
		{name: "int", value: 440, want: "440"},
		{name: "whole float", value: float64(1320), want: "1320"},
		{name: "fractional float", value: 0.8, want: "0.8"},
		{name: "negative float", value: -23.0, want: "-23"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatValue(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatValueRejectsUnframeableStrings(t *testing.T) {
	for _, value := range []string{`has "quotes"`, "line\nbreak", "carriage\rreturn", "nul\x00byte"} {
		_, err := FormatValue(value)
		require.Error(t, err, value)
	}
}

func TestFormatValueRejectsUnknownTypes(t *testing.T) {
	_, err := FormatValue([]string{"x"})
	require.Error(t, err)
}
