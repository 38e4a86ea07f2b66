package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ie "github.com/voidshard/cavatica/pkg/errors"
	"github.com/voidshard/cavatica/pkg/structs"
)

func TestParseFields(t *testing.T) {
	cases := []struct {
		Name   string
		In     []string
		Expect structs.Fields
		Err    error
	}{
		{"Empty", nil, structs.Fields{}, nil},
		{"String", []string{"name=my-file.txt"}, structs.Fields{"name": "my-file.txt"}, nil},
		{"Bool", []string{"overwrite=true"}, structs.Fields{"overwrite": true}, nil},
		{"Number", []string{"parts=3"}, structs.Fields{"parts": float64(3)}, nil},
		{
			"Object",
			[]string{`properties={"sse_algorithm":"AES256"}`},
			structs.Fields{"properties": map[string]interface{}{"sse_algorithm": "AES256"}},
			nil,
		},
		{"EqualsInValue", []string{"q=a=b"}, structs.Fields{"q": "a=b"}, nil},
		{"LastWins", []string{"a=1", "a=x"}, structs.Fields{"a": "x"}, nil},
		{"NoEquals", []string{"overwrite"}, nil, ie.ErrInvalidArg},
		{"NoKey", []string{"=true"}, nil, ie.ErrInvalidArg},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			result, err := parseFields(c.In)

			assert.True(t, errors.Is(err, c.Err), err)
			assert.Equal(t, c.Expect, result)
		})
	}
}

func writeJobFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestExportRequestFromJobFile(t *testing.T) {
	path := writeJobFile(t, "export.yaml", `
source_file: file-1
destination_volume: vol
destination_location: out/a.txt
optional_fields:
  overwrite: true
`)

	c := &optsExport{DestinationLocation: "out/b.txt"}
	c.JobFile = path
	c.Fields = []string{"name=b.txt"}

	req, err := c.request()

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"source":      map[string]interface{}{"file": "file-1"},
		"destination": map[string]interface{}{"volume": "vol", "location": "out/b.txt"},
		"overwrite":   true,
		"name":        "b.txt",
	}, req.Payload())
}

func TestImportRequestFromFlags(t *testing.T) {
	c := &optsImport{SourceVolume: "vol", SourceLocation: "in/a.txt", DestinationParent: "folder-1"}
	c.Fields = []string{"overwrite=false"}

	req, err := c.request()

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"source":      map[string]interface{}{"volume": "vol", "location": "in/a.txt"},
		"destination": map[string]interface{}{"parent": "folder-1"},
		"overwrite":   false,
	}, req.Payload())
}

func TestJobFileMissing(t *testing.T) {
	c := &optsImport{}
	c.JobFile = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := c.request()

	assert.ErrorIs(t, err, ie.ErrInvalidArg)
}
