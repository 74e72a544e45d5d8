package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_Validate(t *testing.T) {
	tests := []struct {
		name    string
		source  Source
		wantErr bool
	}{
		{
			name: "valid source",
			source: Source{
				Name:            "Press Information Bureau",
				URL:             "https://pib.gov.in/rss.aspx",
				DefaultCategory: "Policy News",
			},
			wantErr: false,
		},
		{
			name: "missing name",
			source: Source{
				URL:             "https://pib.gov.in/rss.aspx",
				DefaultCategory: "Policy News",
			},
			wantErr: true,
		},
		{
			name: "missing category",
			source: Source{
				Name: "Press Information Bureau",
				URL:  "https://pib.gov.in/rss.aspx",
			},
			wantErr: true,
		},
		{
			name: "bad url",
			source: Source{
				Name:            "Broken",
				URL:             "not-a-url",
				DefaultCategory: "Policy News",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.source.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSource_Validate_WrapsErrValidationFailed(t *testing.T) {
	s := Source{URL: "https://pib.gov.in/rss.aspx", DefaultCategory: "Policy News"}
	err := s.Validate()
	assert.True(t, errors.Is(err, ErrValidationFailed))
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve.Field)
}

func TestIsGovernmentSource(t *testing.T) {
	tests := []struct {
		name, url string
		want      bool
	}{
		{"Press Information Bureau", "https://pib.gov.in/allRel.aspx", true},
		{"Ministry of Electronics and IT", "https://meity.gov.in/feed", true},
		{"The Hindu", "https://www.thehindu.com/news/national/feeder/default.rss", false},
		{"PRS Legislative Research", "https://prsindia.org/rss", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsGovernmentSource(tt.name, tt.url), tt.name)
	}
}
