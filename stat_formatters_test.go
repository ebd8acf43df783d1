package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pivolan/healthcare_analyzer/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSummaryTable(t *testing.T) {
	result := GenerateSummaryTable(models.Summary{
		TotalRevenue:        300,
		MostCommonDiagnosis: "Flu",
		TopDepartment:       "ER",
		TopRegion:           "North",
	}, "₹")

	assert.Contains(t, result, "Total Revenue (₹)")
	assert.Contains(t, result, "Most Common Diagnosis")
	assert.Contains(t, result, "300.00")
	assert.Contains(t, result, "Flu")
	assert.Contains(t, result, "North")
}

func TestGenerateAgeGroupTable(t *testing.T) {
	result := GenerateAgeGroupTable([]models.ValueCount{
		{Value: "Child", Count: 1, Percent: 50},
		{Value: "Teen", Count: 0},
	})

	assert.Equal(t, `+-----------+----------+----------+
| Age Group | Patients | Share, % |
+-----------+----------+----------+
| Child     |        1 | 50.00    |
| Teen      |        0 | 0.00     |
+-----------+----------+----------+`, result)
}

func TestGenerateNumberStatsTable(t *testing.T) {
	assert.Equal(t, "no values", GenerateNumberStatsTable(nil))

	result := GenerateNumberStatsTable(AnalyzeNumbers([]float64{100, 200}))
	for _, measure := range []string{"Count", "Average", "Median", "Q1 (25%)", "99th percentile", "Outliers"} {
		assert.Contains(t, result, measure)
	}
	assert.Contains(t, result, "150.00")
}

func TestWriteReport(t *testing.T) {
	in, err := Aggregate([]models.Patient{
		{BillAmount: 100, Diagnosis: "Flu", Department: "ER", Region: "North", Age: 10},
		{BillAmount: 200, Diagnosis: "Flu", Department: "ER", Region: "South", Age: 40},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, in, "₹"))
	out := buf.String()

	insights := strings.Index(out, insightsTitle)
	age := strings.Index(out, ageTitle)
	bill := strings.Index(out, billTitle)
	assert.True(t, insights >= 0 && insights < age && age < bill, "sections out of order:\n%s", out)
	assert.Contains(t, out, "Young Adult")
}
