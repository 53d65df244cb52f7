package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() Profile {
	return Profile{
		Role:             "Product Manager",
		Industry:         "Fintech",
		ExperienceRange:  "2-5",
		CompanySizeRange: "51-200",
		DesiredCount:     10,
	}
}

func TestProfile_Validate(t *testing.T) {
	p := validProfile()
	require.NoError(t, p.Validate())
}

func TestProfile_Validate_DesiredCountBounds(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr bool
	}{
		{"zero", 0, true},
		{"below minimum", 4, true},
		{"minimum", 5, false},
		{"maximum", 20, false},
		{"above maximum", 21, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			p.DesiredCount = tt.count
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfile_Validate_RangePatterns(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"simple range", "1-3", false},
		{"large range", "201-1000", false},
		{"missing dash", "15", true},
		{"trailing text", "2-5 years", true},
		{"letters", "two-five", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			p.ExperienceRange = tt.value
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckoutRequest_Validate(t *testing.T) {
	req := CheckoutRequest{Profile: validProfile(), ReturnURL: "https://app.example.com/"}
	require.NoError(t, req.Validate())

	req.ReturnURL = "not a url"
	assert.Error(t, req.Validate())

	req.ReturnURL = ""
	assert.Error(t, req.Validate())
}

func TestStartJobRequest_Validate(t *testing.T) {
	req := StartJobRequest{SessionID: "cs_test_123"}
	require.NoError(t, req.Validate())

	req.SessionID = ""
	assert.Error(t, req.Validate())
}

func TestJobStatus_Terminal(t *testing.T) {
	assert.False(t, JobStatusPending.Terminal())
	assert.True(t, JobStatusCompleted.Terminal())
	assert.True(t, JobStatusFailed.Terminal())
}

func TestJob_JSONShape(t *testing.T) {
	job := Job{
		ID:       "7f9c0a6e-0001-4b2b-8f55-000000000001",
		Status:   JobStatusPending,
		Progress: 40,
	}

	data, err := json.Marshal(job)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"pending"`)
	assert.Contains(t, string(data), `"progress":40`)
	assert.NotContains(t, string(data), `"data"`)
	assert.NotContains(t, string(data), `"error"`)
}

func TestInterview_JSONRoundTrip(t *testing.T) {
	in := Interview{
		Role:          "PM",
		Industry:      "Tech",
		QuestionOne:   "a",
		QuestionTwo:   "b",
		QuestionThree: "c",
		QuestionFour:  "d",
		QuestionFive:  "e",
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"question_one":"a"`)

	var out Interview
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
