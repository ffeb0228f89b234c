package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramonankersmit/vlier-planner-sub001/internal/dto"
	"github.com/ramonankersmit/vlier-planner-sub001/internal/models"
	appErrors "github.com/ramonankersmit/vlier-planner-sub001/pkg/errors"
)

type mockOverviewProvider struct {
	response *dto.OverviewResponse
	requests []dto.OverviewRequest
}

func (m *mockOverviewProvider) Overview(ctx context.Context, req dto.OverviewRequest) (*dto.OverviewResponse, error) {
	m.requests = append(m.requests, req)
	return m.response, nil
}

func exportFixture() *dto.OverviewResponse {
	return &dto.OverviewResponse{
		Subjects: []string{"wiskunde"},
		Weeks: []dto.OverviewWeek{{
			Week: models.WeekInfo{ID: models.WeekID{ISOYear: 2025, Nr: 46}, ISOYear: 2025, Nr: 46},
			Subjects: map[string]models.SubjectWeekData{
				"wiskunde": {
					Lesstof:  []string{"hoofdstuk 1"},
					Huiswerk: []string{"opgave 1", "opgave 2"},
				},
			},
		}},
	}
}

func TestExportCSV(t *testing.T) {
	provider := &mockOverviewProvider{response: exportFixture()}
	svc := NewExportService(provider, nil)

	result, err := svc.Export(context.Background(), dto.OverviewRequest{Vak: "wiskunde"}, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "weekoverzicht.csv", result.Filename)

	body := string(result.Content)
	assert.True(t, strings.HasPrefix(body, "Week,Vak,Lesstof,Huiswerk,Deadlines,Opmerkingen"))
	assert.Contains(t, body, "2025-W46,wiskunde,hoofdstuk 1,opgave 1; opgave 2")
	require.Len(t, provider.requests, 1)
	assert.Equal(t, "wiskunde", provider.requests[0].Vak)
}

func TestExportDefaultsToCSV(t *testing.T) {
	svc := NewExportService(&mockOverviewProvider{response: exportFixture()}, nil)

	result, err := svc.Export(context.Background(), dto.OverviewRequest{}, "")
	require.NoError(t, err)
	assert.Equal(t, "weekoverzicht.csv", result.Filename)
}

func TestExportPDF(t *testing.T) {
	svc := NewExportService(&mockOverviewProvider{response: exportFixture()}, nil)

	result, err := svc.Export(context.Background(), dto.OverviewRequest{}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "weekoverzicht.pdf", result.Filename)
	assert.True(t, strings.HasPrefix(string(result.Content), "%PDF"))
}

func TestExportUnknownFormat(t *testing.T) {
	svc := NewExportService(&mockOverviewProvider{response: exportFixture()}, nil)

	_, err := svc.Export(context.Background(), dto.OverviewRequest{}, "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
