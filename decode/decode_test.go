// Copyright 2024 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModes(t *testing.T) {
	assert.Len(t, modeNames, numModes)
	assert.Len(t, Modes(), numModes)
	modes := Modes()
	assert.Equal(t, Text, modes[Text])
	assert.Equal(t, Bytes, modes[Bytes])
	assert.Equal(t, Blob, modes[Blob])
	assert.Equal(t, Document, modes[Document])
	assert.Equal(t, JSON, modes[JSON])
}

func TestMode_Name(t *testing.T) {
	assert.Equal(t, "Text", Text.Name())
	assert.Equal(t, "Bytes", Bytes.Name())
	assert.Equal(t, "Blob", Blob.Name())
	assert.Equal(t, "Document", Document.Name())
	assert.Equal(t, "JSON", JSON.Name())
	assert.Equal(t, "JSON", JSON.String())
}

func TestApply(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		for _, m := range Modes() {
			t.Run(m.Name(), func(t *testing.T) {
				_, ok := Apply(m, "", nil)
				assert.False(t, ok)
				_, ok = Apply(m, "text/plain", []byte{})
				assert.False(t, ok)
			})
		}
	})
	t.Run("text", func(t *testing.T) {
		v, ok := Apply(Text, "", []byte("hello!"))
		require.True(t, ok)
		assert.Equal(t, Text, v.Mode())
		s, ok := v.Text()
		assert.True(t, ok)
		assert.Equal(t, "hello!", s)
		_, ok = v.Bytes()
		assert.False(t, ok)
		_, ok = v.JSON()
		assert.False(t, ok)
	})
	t.Run("bytes", func(t *testing.T) {
		v, ok := Apply(Bytes, "", []byte{0x01, 0x02})
		require.True(t, ok)
		b, ok := v.Bytes()
		assert.True(t, ok)
		assert.Equal(t, []byte{0x01, 0x02}, b)
		_, ok = v.Text()
		assert.False(t, ok)
	})
	t.Run("blob", func(t *testing.T) {
		v, ok := Apply(Blob, "image/png", []byte{0x89, 0x50})
		require.True(t, ok)
		b, ok := v.Blob()
		require.True(t, ok)
		assert.Equal(t, "image/png", b.ContentType)
		assert.Equal(t, []byte{0x89, 0x50}, b.Data)
	})
	t.Run("document", func(t *testing.T) {
		v, ok := Apply(Document, "text/html", []byte("<html><body><p>hi</p></body></html>"))
		require.True(t, ok)
		doc, ok := v.Document()
		assert.True(t, ok)
		assert.NotNil(t, doc)
	})
	t.Run("json", func(t *testing.T) {
		v, ok := Apply(JSON, "application/json", []byte(`{"ham":["eggs","spam"]}`))
		require.True(t, ok)
		j, ok := v.JSON()
		require.True(t, ok)
		m, isMap := j.(map[string]interface{})
		require.True(t, isMap)
		assert.Equal(t, []interface{}{"eggs", "spam"}, m["ham"])
	})
	t.Run("json null is a value", func(t *testing.T) {
		v, ok := Apply(JSON, "application/json", []byte("null"))
		require.True(t, ok)
		j, ok := v.JSON()
		assert.True(t, ok)
		assert.Nil(t, j)
	})
	t.Run("malformed json", func(t *testing.T) {
		_, ok := Apply(JSON, "application/json", []byte(`{"ham":`))
		assert.False(t, ok)
	})
}
