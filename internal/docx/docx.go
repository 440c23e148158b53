// Package docx reads paragraph text out of Microsoft Word .docx files.
//
// A .docx file is a ZIP archive whose main body lives in word/document.xml.
// The reader streams that entry through encoding/xml and collects the
// character data of each <w:p> paragraph. Pure Go, CGO_ENABLED=0 compatible.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const documentEntry = "word/document.xml"

// Paragraphs returns the non-empty paragraphs of the document body, in
// order. Formatting, tables and headers/footers are ignored; only the text
// runs of body paragraphs are collected.
func Paragraphs(path string) ([]string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == documentEntry {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("%s: %s not found in archive", path, documentEntry)
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", documentEntry, err)
	}
	defer rc.Close()

	return decodeParagraphs(rc)
}

// ExtractText returns the full body text with paragraphs joined by newlines.
func ExtractText(path string) (string, error) {
	paras, err := Paragraphs(path)
	if err != nil {
		return "", err
	}
	return strings.Join(paras, "\n"), nil
}

func decodeParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", documentEntry, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				// Text run inside a paragraph.
				inText = inParagraph
			case "tab":
				if inParagraph {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if inParagraph {
					current.WriteByte('\n')
				}
			}

		case xml.CharData:
			if inText {
				current.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inParagraph {
					inParagraph = false
					if text := current.String(); strings.TrimSpace(text) != "" {
						paragraphs = append(paragraphs, text)
					}
				}
			}
		}
	}

	return paragraphs, nil
}
