// Package export encodes interview question sets into the five supported
// output encodings: plain text, CSV, spreadsheet binary, JSON, and an HTML
// table.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/interview-forge/internal/types"
)

// Format selects one of the supported output encodings.
type Format string

const (
	FormatTXT  Format = "txt"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// baseName is the suggested file name stem for every encoding.
const baseName = "interview-questions"

// header is the column order shared by the tabular encodings.
var header = []string{"Role", "Industry", "Question 1", "Question 2", "Question 3", "Question 4", "Question 5"}

// ParseFormat resolves a format query value. An absent value defaults to
// HTML; an unrecognized value is an error. The asymmetry is deliberate and
// mirrors how callers link to exports without a format parameter.
func ParseFormat(value string) (Format, error) {
	switch value {
	case "":
		return FormatHTML, nil
	case string(FormatTXT), string(FormatCSV), string(FormatXLSX), string(FormatJSON), string(FormatHTML):
		return Format(value), nil
	default:
		return "", &ValidationError{Message: fmt.Sprintf("unknown format %q", value)}
	}
}

// Inline reports whether the encoding is meant to be viewed in place rather
// than downloaded as an attachment.
func (f Format) Inline() bool {
	return f == FormatJSON || f == FormatHTML
}

// ContentType returns the MIME type served for the encoding.
func (f Format) ContentType() string {
	switch f {
	case FormatTXT:
		return "text/plain; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatJSON:
		return "application/json"
	default:
		return "text/html; charset=utf-8"
	}
}

// Document is an encoded export: the payload, its MIME type, and the
// suggested file name.
type Document struct {
	Name        string
	ContentType string
	Data        []byte
}

// Encode renders the records in the requested encoding. At least one record
// is required regardless of format.
func Encode(records []types.Interview, format Format) (*Document, error) {
	if len(records) == 0 {
		return nil, &ValidationError{Message: "at least one record required"}
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatTXT:
		data = encodeDelimited(records, "\t")
	case FormatCSV:
		data = encodeDelimited(records, ",")
	case FormatXLSX:
		data, err = encodeXLSX(records)
	case FormatJSON:
		data, err = json.Marshal(records)
	case FormatHTML:
		data, err = encodeHTML(records)
	default:
		return nil, &ValidationError{Message: fmt.Sprintf("unknown format %q", format)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s export: %w", format, err)
	}

	return &Document{
		Name:        baseName + "." + string(format),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

// row flattens one record into the shared column order.
func row(in types.Interview) []string {
	return []string{in.Role, in.Industry, in.QuestionOne, in.QuestionTwo, in.QuestionThree, in.QuestionFour, in.QuestionFive}
}

// quote wraps a field in double quotes, doubling any embedded quotes.
// Every field is quoted, not just the ones that need it, so generated files
// survive commas and newlines inside questions.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func encodeDelimited(records []types.Interview, sep string) []byte {
	var buf bytes.Buffer
	writeLine := func(fields []string) {
		quoted := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = quote(f)
		}
		buf.WriteString(strings.Join(quoted, sep))
		buf.WriteString("\n")
	}

	writeLine(header)
	for _, rec := range records {
		writeLine(row(rec))
	}
	return buf.Bytes()
}

func encodeXLSX(records []types.Interview) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Interview Questions"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, err
		}
	}
	for i, rec := range records {
		for col, value := range row(rec) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var htmlTemplate = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Interview Questions</title>
<style>
table { border-collapse: collapse; font-family: sans-serif; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; vertical-align: top; }
th { background: #f4f4f4; }
</style>
</head>
<body>
<table>
<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
</body>
</html>
`))

func encodeHTML(records []types.Interview) ([]byte, error) {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, row(rec))
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, struct {
		Header []string
		Rows   [][]string
	}{Header: header, Rows: rows}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
