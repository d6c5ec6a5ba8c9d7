package collect

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestBlockWriterFormats(t *testing.T) {
	var buf bytes.Buffer
	out := newBlockWriter(&buf)

	require.NoError(t, out.writeBlock("pom.xml", "<project/>", false))
	require.NoError(t, out.writeErrorBlock("src/bad.bin", errors.New("boom"), true))
	require.NoError(t, out.writeBlock("src/A.java", "class A {}", true))
	require.NoError(t, out.flush())

	want := "--- pom.xml ---\n<project/>\n" +
		"\n--- ERROR READING src/bad.bin ---\nError: boom\n\n" +
		"\n--- src/A.java ---\nclass A {}\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), out.written())
}

func TestBlockWriterManifestErrorBlock(t *testing.T) {
	var buf bytes.Buffer
	out := newBlockWriter(&buf)

	require.NoError(t, out.writeErrorBlock("pom.xml", errors.New("denied"), false))
	require.NoError(t, out.flush())
	assert.Equal(t, "--- ERROR READING pom.xml ---\nError: denied\n", buf.String())
}

func TestBlockWriterSurfacesWriteErrors(t *testing.T) {
	diskFull := errors.New("no space left on device")
	out := newBlockWriter(failingWriter{err: diskFull})

	// Small blocks sit in the buffer; the failure shows up on flush.
	require.NoError(t, out.writeBlock("src/A.java", "class A {}", true))
	err := out.flush()
	require.Error(t, err)
	assert.ErrorIs(t, err, diskFull)

	// The buffered writer keeps the error, so later writes fail too.
	err = out.writeBlock("src/B.java", "class B {}", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, diskFull)
}
