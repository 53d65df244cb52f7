package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-forge/internal/types"
)

func exportBody() types.ExportRequest {
	return types.ExportRequest{
		Interviews: []types.Interview{
			{
				Role:          "PM",
				Industry:      "Tech",
				QuestionOne:   "a",
				QuestionTwo:   "b",
				QuestionThree: "c",
				QuestionFour:  "d",
				QuestionFive:  "e",
			},
		},
	}
}

func TestExport_CSV(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/export/interviews?format=csv", exportBody())
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="interview-questions.csv"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), `"PM"`)
}

func TestExport_NoFormatDefaultsToHTML(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/export/interviews", exportBody())
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "inline")
	assert.Contains(t, w.Body.String(), "<td>PM</td>")
}

func TestExport_UnknownFormat(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/export/interviews?format=pdf", exportBody())
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "unknown format")
}

func TestExport_EmptyRecords(t *testing.T) {
	ts := newTestServer(t)

	for _, format := range []string{"txt", "csv", "xlsx", "json", "html"} {
		w := ts.do(t, http.MethodPost, "/export/interviews?format="+format, types.ExportRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code, "format %s", format)
		assert.Contains(t, w.Body.String(), "at least one record", "format %s", format)
	}
}

func TestExport_NonListBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/export/interviews?format=csv",
		bytes.NewReader([]byte(`{"interviews": "not a list"}`)))
	req.RemoteAddr = "10.0.0.1:50000"
	w := httptest.NewRecorder()
	ts.httpServer.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be a list")
}

func TestExport_XLSXAttachment(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/export/interviews?format=xlsx", exportBody())
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, `attachment; filename="interview-questions.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestExport_JSONInline(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/export/interviews?format=json", exportBody())
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var decoded []types.Interview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	assert.Equal(t, exportBody().Interviews, decoded)
}
