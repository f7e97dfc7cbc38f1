package adapters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMicrodata = "DOEID,REGIONC,LPXBTU,TOTALBTU\n" +
	"10001,4,91.33,62464\n" +
	"10002,3,91.33,57040\n" +
	"10003,3,91.33,\n"

func TestMicrodataLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hc_raw.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleMicrodata), 0644))

	frame, err := NewMicrodataCSVAdapter().Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, frame.Len())
	assert.Equal(t, []string{"DOEID", "REGIONC", "LPXBTU", "TOTALBTU"}, frame.Columns)

	value, err := frame.Float("LPXBTU", 0)
	require.NoError(t, err)
	assert.Equal(t, 91.33, value)

	ids, err := frame.Column("DOEID")
	require.NoError(t, err)
	assert.Equal(t, []string{"10001", "10002", "10003"}, ids)

	_, err = frame.Float("TOTALBTU", 2)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = frame.Column("KWH")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestMicrodataDetectsDelimiter(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "semicolon", input: "DOEID;LPXBTU\n10001;91.33\n"},
		{name: "tab", input: "DOEID\tLPXBTU\n10001\t91.33\n"},
		{name: "byte order mark", input: "\ufeffDOEID,LPXBTU\r\n10001,91.33\r\n"},
		{name: "quoted header", input: "\"DOEID\",\"LPXBTU\"\n10001,91.33\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := NewMicrodataCSVAdapter().Read(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.True(t, frame.HasColumn("DOEID"))
			value, err := frame.Float("LPXBTU", 0)
			require.NoError(t, err)
			assert.Equal(t, 91.33, value)
		})
	}
}

func TestMicrodataErrors(t *testing.T) {
	_, err := NewMicrodataCSVAdapter().Read(strings.NewReader(""))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = NewMicrodataCSVAdapter().Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
