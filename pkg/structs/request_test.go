package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportPayload(t *testing.T) {
	cases := []struct {
		Name   string
		Given  Fields
		Expect map[string]interface{}
	}{
		{
			Name:  "NoOptionalFields",
			Given: nil,
			Expect: map[string]interface{}{
				"source":      map[string]interface{}{"file": "f1"},
				"destination": map[string]interface{}{"volume": "vol/folder", "location": "/bams/a.bam"},
			},
		},
		{
			Name:  "AddsOptionalField",
			Given: Fields{"overwrite": true},
			Expect: map[string]interface{}{
				"source":      map[string]interface{}{"file": "f1"},
				"destination": map[string]interface{}{"volume": "vol/folder", "location": "/bams/a.bam"},
				"overwrite":   true,
			},
		},
		{
			Name:  "OptionalFieldReplacesRequired",
			Given: Fields{"source": "X"},
			Expect: map[string]interface{}{
				"source":      "X",
				"destination": map[string]interface{}{"volume": "vol/folder", "location": "/bams/a.bam"},
			},
		},
		{
			Name:  "NestedOptionalFieldIsNotMerged",
			Given: Fields{"destination": map[string]interface{}{"volume": "other"}},
			Expect: map[string]interface{}{
				"source":      map[string]interface{}{"file": "f1"},
				"destination": map[string]interface{}{"volume": "other"},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			req := NewExportRequest("f1", "vol/folder", "/bams/a.bam", c.Given)

			result := req.Payload()

			assert.Equal(t, c.Expect, result)
			assert.Equal(t, len(c.Expect), len(result))
		})
	}
}

func TestImportPayload(t *testing.T) {
	req := NewImportRequest("vol", "/bams/a.bam", "parent-1", Fields{"overwrite": true, "name": "b.bam"})

	result := req.Payload()

	assert.Equal(t, map[string]interface{}{
		"source":      map[string]interface{}{"volume": "vol", "location": "/bams/a.bam"},
		"destination": map[string]interface{}{"parent": "parent-1"},
		"overwrite":   true,
		"name":        "b.bam",
	}, result)
}

func TestRequestsDoNotShareOptionalFields(t *testing.T) {
	shared := Fields{"overwrite": true}

	a := NewExportRequest("f1", "v", "l", shared)
	b := NewExportRequest("f2", "v", "l", shared)
	a.OptionalFields["sse_algorithm"] = "AES256"
	shared["extra"] = 1

	assert.Equal(t, Fields{"overwrite": true}, b.OptionalFields)
	assert.NotContains(t, a.OptionalFields, "extra")

	c := NewImportRequest("v", "l", "p", nil)
	d := NewImportRequest("v", "l", "p", nil)
	c.OptionalFields["overwrite"] = true

	assert.Empty(t, d.OptionalFields)
}
