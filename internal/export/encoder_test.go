package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/interview-forge/internal/types"
)

func sampleRecords() []types.Interview {
	return []types.Interview{
		{
			Role:          "PM",
			Industry:      "Tech",
			QuestionOne:   "a",
			QuestionTwo:   "b",
			QuestionThree: "c",
			QuestionFour:  "d",
			QuestionFive:  "e",
		},
		{
			Role:          "Designer",
			Industry:      "E-commerce",
			QuestionOne:   `What does "good" look like?`,
			QuestionTwo:   "q2",
			QuestionThree: "q3",
			QuestionFour:  "q4",
			QuestionFive:  "q5",
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		value   string
		want    Format
		wantErr bool
	}{
		{"txt", FormatTXT, false},
		{"csv", FormatCSV, false},
		{"xlsx", FormatXLSX, false},
		{"json", FormatJSON, false},
		{"html", FormatHTML, false},
		{"", FormatHTML, false}, // absent defaults to HTML
		{"pdf", "", true},       // unrecognized errors
		{"CSV", "", true},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			got, err := ParseFormat(tt.value)
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode_EmptyRecords(t *testing.T) {
	for _, format := range []Format{FormatTXT, FormatCSV, FormatXLSX, FormatJSON, FormatHTML} {
		t.Run(string(format), func(t *testing.T) {
			_, err := Encode(nil, format)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Message, "at least one record")
		})
	}
}

func TestEncode_CSV(t *testing.T) {
	doc, err := Encode(sampleRecords(), FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "interview-questions.csv", doc.Name)
	assert.Equal(t, "text/csv; charset=utf-8", doc.ContentType)

	body := string(doc.Data)
	assert.Contains(t, body, `"PM"`)
	assert.Contains(t, body, `"Role","Industry"`)
	// Embedded quotes are doubled, CSV style.
	assert.Contains(t, body, `"What does ""good"" look like?"`)
}

func TestEncode_TXT(t *testing.T) {
	doc, err := Encode(sampleRecords(), FormatTXT)
	require.NoError(t, err)

	assert.Equal(t, "interview-questions.txt", doc.Name)
	lines := strings.Split(strings.TrimRight(string(doc.Data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"PM"`, strings.Split(lines[1], "\t")[0])
}

func TestEncode_JSONRoundTrip(t *testing.T) {
	records := sampleRecords()
	doc, err := Encode(records, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", doc.ContentType)

	var decoded []types.Interview
	require.NoError(t, json.Unmarshal(doc.Data, &decoded))
	assert.Equal(t, records, decoded)
}

func TestEncode_HTML(t *testing.T) {
	doc, err := Encode(sampleRecords(), FormatHTML)
	require.NoError(t, err)

	assert.Equal(t, "text/html; charset=utf-8", doc.ContentType)
	body := string(doc.Data)
	assert.Contains(t, body, "<table>")
	assert.Contains(t, body, "<td>PM</td>")
	// Template escaping keeps markup in questions inert.
	assert.Contains(t, body, "&#34;good&#34;")
}

func TestEncode_XLSX(t *testing.T) {
	doc, err := Encode(sampleRecords(), FormatXLSX)
	require.NoError(t, err)

	assert.Equal(t, "interview-questions.xlsx", doc.Name)

	f, err := excelize.OpenReader(bytes.NewReader(doc.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Interview Questions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Role", rows[0][0])
	assert.Equal(t, "PM", rows[1][0])
	assert.Equal(t, "Tech", rows[1][1])
}

func TestFormat_Inline(t *testing.T) {
	assert.True(t, FormatJSON.Inline())
	assert.True(t, FormatHTML.Inline())
	assert.False(t, FormatTXT.Inline())
	assert.False(t, FormatCSV.Inline())
	assert.False(t, FormatXLSX.Inline())
}
