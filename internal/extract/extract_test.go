package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"redguard/internal/util"

	"github.com/stretchr/testify/require"
)

func TestTextTxtPassthrough(t *testing.T) {
	got, err := Text("contract.txt", []byte("This agreement is made between the parties."))
	require.NoError(t, err)
	require.Equal(t, "This agreement is made between the parties.", got)
}

func TestTextUnsupportedExtension(t *testing.T) {
	_, err := Text("contract.xyz", []byte("anything"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestTextNoExtension(t *testing.T) {
	_, err := Text("contract", []byte("anything"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestTextEmptyTxt(t *testing.T) {
	_, err := Text("blank.txt", []byte("  \n\t "))
	require.ErrorIs(t, err, util.ErrNoExtractableText)
}

func TestTextTxtStripsControlCharacters(t *testing.T) {
	got, err := Text("contract.txt", []byte("ab\x00cd\x01\nxy"))
	require.NoError(t, err)
	require.Equal(t, "abcd\nxy", got)
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	fw, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = fw.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestTextDocxParagraphs(t *testing.T) {
	data := buildDocx(t, `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Section 1.</w:t></w:r><w:r><w:t xml:space="preserve"> Liability is unlimited.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Section 2. Payment terms.</w:t></w:r></w:p>
  </w:body>
</w:document>`)

	got, err := Text("contract.docx", data)
	require.NoError(t, err)
	require.Equal(t, "Section 1. Liability is unlimited.\nSection 2. Payment terms.", got)
}

func TestTextDocMapsToDocxParser(t *testing.T) {
	data := buildDocx(t, `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>legacy upload</w:t></w:r></w:p></w:body></w:document>`)
	got, err := Text("contract.doc", data)
	require.NoError(t, err)
	require.Equal(t, "legacy upload", got)
}

func TestTextDocxMissingDocumentPart(t *testing.T) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	fw, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = fw.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Text("contract.docx", buf.Bytes())
	require.Error(t, err)
}

func TestTextDocxNotAZip(t *testing.T) {
	_, err := Text("contract.docx", []byte("plainly not a zip archive"))
	require.Error(t, err)
}
