package services

import (
	"bytes"
	"fmt"
	"html"
	"mime"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MIMETypePDF  = "application/pdf"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMETypeText = "text/plain"
)

var extensionMIMETypes = map[string]string{
	".pdf":  MIMETypePDF,
	".docx": MIMETypeDOCX,
	".txt":  MIMETypeText,
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br[^>]*/>|<w:cr[^>]*/>`)
	docxTab          = regexp.MustCompile(`<w:tab[^>]*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

type DocumentParserService interface {
	ExtractText(data []byte, mimeType string) (string, error)
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

// ExtractText converts an uploaded document into plain text. Failures are
// always reported as *ParseError.
func (p *documentParserService) ExtractText(data []byte, mimeType string) (string, error) {
	var (
		text   string
		format string
		err    error
	)

	switch mimeType {
	case MIMETypePDF:
		format = FormatPDF
		text, err = extractPDFText(data)
	case MIMETypeDOCX:
		format = FormatDOCX
		text, err = extractDocxText(data)
	case MIMETypeText:
		format = FormatText
		text, err = extractPlainText(data)
	default:
		return "", &ParseError{Format: FormatUnsupported, Err: fmt.Errorf("%q", mimeType)}
	}

	if err != nil {
		return "", &ParseError{Format: format, Err: err}
	}

	text = CleanText(text)
	if text == "" {
		return "", &ParseError{Format: format, Err: ErrEmptyDocument}
	}

	return text, nil
}

// ResolveMIMEType picks a supported MIME type from the upload's Content-Type
// header, falling back to the file extension when the header is missing or
// generic.
func ResolveMIMEType(contentType, filename string) string {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case MIMETypePDF, MIMETypeDOCX, MIMETypeText:
			return mediaType
		}
	}

	if byExt, ok := extensionMIMETypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return byExt
	}

	return contentType
}

func extractPDFText(data []byte) (text string, err error) {
	// the pdf package panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("corrupt PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			// Unreadable pages are skipped, the rest of the document still counts
			continue
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText strips WordprocessingML markup, keeping paragraph breaks.
func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}

func extractPlainText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("text document is not valid UTF-8")
	}
	return string(data), nil
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
