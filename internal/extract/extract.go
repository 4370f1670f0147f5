// Package extract turns uploaded résumé documents into plain text for analysis.
package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resume-feedback/internal/shared/storage/object"
)

const (
	MimeText = "text/plain"
	MimeHTML = "text/html"
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeZip  = "application/zip"
)

// ErrUnsupportedType is returned for documents that cannot be converted to text.
var ErrUnsupportedType = errors.New("unsupported document type")

// SupportedExtensions lists the upload extensions accepted by ExtractTextFromBytes.
var SupportedExtensions = []string{".txt", ".pdf", ".docx", ".html", ".htm"}

var extensionTypes = map[string]string{
	".txt":  MimeText,
	".pdf":  MimePDF,
	".docx": MimeDOCX,
	".html": MimeHTML,
	".htm":  MimeHTML,
}

// ExtractText reads a stored object, extracts its text and stores the text
// next to it under object.DerivedKey.
func ExtractText(ctx context.Context, store object.Store, key, mimeType, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := store.Open(ctx, key)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s mime=%s: %w", key, mimeType, err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s mime=%s: read: %w", key, mimeType, err)
	}

	text, err := ExtractTextFromBytes(ctx, raw, mimeType, fileName)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s mime=%s: %w", key, mimeType, err)
	}

	if _, err := store.Put(ctx, object.DerivedKey(key), "text/plain; charset=utf-8", strings.NewReader(text)); err != nil {
		return "", fmt.Errorf("extract text key=%s: save derived: %w", key, err)
	}
	return text, nil
}

// ExtractTextFromBytes extracts text from an in-memory payload.
func ExtractTextFromBytes(ctx context.Context, data []byte, mimeType, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch normalized := DetectType(mimeType, fileName, data); normalized {
	case MimeText:
		return extractPlain(data)
	case MimeHTML:
		return extractHTML(data)
	case MimePDF:
		return extractPDF(data)
	case MimeDOCX:
		return extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, normalized)
	}
}

// DetectType resolves the effective document type from the declared mime
// type, the file extension and, for zip containers, the archive contents.
func DetectType(mimeType, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	ext := strings.ToLower(filepath.Ext(fileName))

	switch clean {
	case MimeText, MimeHTML, MimePDF, MimeDOCX:
		return clean
	case mimeZip:
		if isDocxArchive(data) {
			return MimeDOCX
		}
		return clean
	}
	if t, ok := extensionTypes[ext]; ok && (clean == "" || clean == "application/octet-stream" || strings.HasPrefix(clean, "text/")) {
		return t
	}
	if clean == "" {
		return "application/octet-stream"
	}
	return clean
}

// Supported reports whether fileName has an accepted extension.
func Supported(fileName string) bool {
	_, ok := extensionTypes[strings.ToLower(filepath.Ext(fileName))]
	return ok
}

func extractPlain(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", ErrUnsupportedType)
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}

// extractPDF converts parser panics on malformed input into errors.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("read pdf: %v", r)
		}
	}()
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML keeps character data and turns paragraph ends into blank
// lines so paragraph statistics survive extraction.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.StartElement:
			if t.Name.Local == "tab" {
				buf.WriteString("\t")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				buf.WriteString("\n\n")
			case "br":
				buf.WriteString("\n")
			}
		}
	}
	return tidyLines(buf.String())
}

const blockSelector = "p, div, li, tr, section, article, header, footer, h1, h2, h3, h4, h5, h6"

func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript, nav, template").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		return tidyLines(doc.Text()), nil
	}
	return tidyLines(body.Text()), nil
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// tidyLines trims spaces around each line and collapses runs of blank lines.
func tidyLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(strings.TrimLeft(line, " "), " \t\r")
	}
	return strings.TrimSpace(blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}

func isDocxArchive(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}
