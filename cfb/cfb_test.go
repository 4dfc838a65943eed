package cfb

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	c := NewContainer()
	c.Put("FileHeader", bytes.Repeat([]byte{0xAA}, 256))
	c.Put("DocInfo", []byte{1, 2, 3, 4, 5})
	c.Put("BodyText/Section0", bytes.Repeat([]byte{0x11}, 4096)) // forces multi-sector
	c.Put("BinData/BIN0001.png", []byte{0x89, 'P', 'N', 'G'})

	out, err := Write(c)
	require.NoError(t, err)

	got, err := Read(bytes.NewReader(out))
	require.NoError(t, err)

	for _, path := range []string{"FileHeader", "DocInfo", "BodyText/Section0", "BinData/BIN0001.png"} {
		want, err := c.Stream(path)
		require.NoError(t, err)
		data, err := got.Stream(path)
		require.NoError(t, err, "missing stream %s", path)
		assert.Equal(t, want, data, "stream %s mismatch", path)
	}
}

func TestWriteReadEmptyStream(t *testing.T) {
	c := NewContainer()
	c.Put("FileHeader", []byte{})

	out, err := Write(c)
	require.NoError(t, err)

	got, err := Read(bytes.NewReader(out))
	require.NoError(t, err)
	data, err := got.Stream("FileHeader")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestReadMissingStream(t *testing.T) {
	c := NewContainer()
	_, err := c.Stream("DoesNotExist")
	require.Error(t, err)
}

func TestReadBadSignature(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not a cfb file at all")))
	require.Error(t, err)
}

func TestDirectorySiblingOrderingIsRedBlackValid(t *testing.T) {
	var children []*dirNode
	for i := 0; i < 9; i++ {
		children = append(children, &dirNode{name: fmt.Sprintf("Stream%d", i), isStream: true, data: []byte{byte(i)}})
	}
	treeRoot := linkSiblings(children)
	require.NotNil(t, treeRoot)
	assert.NotEqual(t, -1, blackHeight(treeRoot))
}

func TestBuildTreeNestsPathsIntoStorages(t *testing.T) {
	c := NewContainer()
	c.Put("FileHeader", []byte{1})
	c.Put("BodyText/Section0", []byte{2})
	c.Put("BodyText/Section1", []byte{3})
	c.Put("BinData/BIN0001.png", []byte{4})

	root := buildTree(c)
	require.Len(t, root.children, 3) // FileHeader, BodyText, BinData

	var bodyText *dirNode
	for _, ch := range root.children {
		if ch.name == "BodyText" {
			bodyText = ch
		}
	}
	require.NotNil(t, bodyText)
	assert.False(t, bodyText.isStream)
	assert.Len(t, bodyText.children, 2)
}

func TestCfbNameLessShorterFirstCaseInsensitive(t *testing.T) {
	assert.True(t, cfbNameLess("Abc", "abcd"))
	assert.True(t, cfbNameLess("ABC", "abd"))
	assert.False(t, cfbNameLess("abd", "ABC"))
}
