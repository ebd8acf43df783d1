package main

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pivolan/healthcare_analyzer/domain/models"
)

var (
	ErrEmptyDataset = errors.New("dataset is empty after cleaning")
	ErrNotNumeric   = errors.New("value is not numeric")
)

// BuildPatients reads the expected columns of a cleaned table into typed records.
func BuildPatients(t *models.Table) ([]models.Patient, error) {
	idx := make(map[string]int, len(requiredColumns))
	for _, col := range requiredColumns {
		i := t.Index(col)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
		idx[col] = i
	}

	patients := make([]models.Patient, 0, len(t.Rows))
	for n, row := range t.Rows {
		bill, err := parseNumber(row[idx[ColumnBillAmount]])
		if err != nil {
			return nil, fmt.Errorf("row %d column %s: %w", n+1, ColumnBillAmount, err)
		}
		age, err := parseNumber(row[idx[ColumnAge]])
		if err != nil {
			return nil, fmt.Errorf("row %d column %s: %w", n+1, ColumnAge, err)
		}
		patients = append(patients, models.Patient{
			BillAmount: bill,
			Diagnosis:  row[idx[ColumnDiagnosis]].Value,
			Department: row[idx[ColumnDepartment]].Value,
			Region:     row[idx[ColumnRegion]].Value,
			Age:        age,
		})
	}
	return patients, nil
}

func parseNumber(cell models.Cell) (float64, error) {
	if cell.Null {
		return 0, fmt.Errorf("%w: missing value", ErrNotNumeric)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, cell.Value)
	}
	return v, nil
}

// AgeGroupFor bins an age into its group. Boundaries belong to the upper
// group (12 is Teen, 60 is Senior); ages outside (0, 90] are not classified.
func AgeGroupFor(age float64) (models.AgeGroup, bool) {
	switch {
	case math.IsNaN(age) || age <= 0 || age > 90:
		return "", false
	case age < 12:
		return models.AgeGroupChild, true
	case age < 18:
		return models.AgeGroupTeen, true
	case age < 35:
		return models.AgeGroupYoungAdult, true
	case age < 60:
		return models.AgeGroupAdult, true
	default:
		return models.AgeGroupSenior, true
	}
}

// AssignAgeGroups returns a copy of patients with AgeGroup filled in.
func AssignAgeGroups(patients []models.Patient) []models.Patient {
	out := make([]models.Patient, len(patients))
	for i, p := range patients {
		p.AgeGroup, _ = AgeGroupFor(p.Age)
		out[i] = p
	}
	return out
}

// CountValues counts occurrences, most frequent first. Equal counts are
// ordered by value so the first entry is a deterministic mode.
func CountValues(values []string) []models.ValueCount {
	counts := make(map[string]int64)
	for _, v := range values {
		counts[v]++
	}

	result := make([]models.ValueCount, 0, len(counts))
	for v, c := range counts {
		result = append(result, models.ValueCount{
			Value:   v,
			Count:   c,
			Percent: roundToTwo(float64(c) / float64(len(values)) * 100),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})
	return result
}

func mode(counts []models.ValueCount) string {
	if len(counts) == 0 {
		return ""
	}
	return counts[0].Value
}

// AgeDistribution counts patients per age group in group order, empty
// groups included. Unclassified ages are not counted.
func AgeDistribution(patients []models.Patient) []models.ValueCount {
	counts := make(map[models.AgeGroup]int64, len(models.AgeGroups))
	var classified int64
	for _, p := range patients {
		if p.AgeGroup == "" {
			continue
		}
		counts[p.AgeGroup]++
		classified++
	}

	result := make([]models.ValueCount, 0, len(models.AgeGroups))
	for _, g := range models.AgeGroups {
		vc := models.ValueCount{Value: string(g), Count: counts[g]}
		if classified > 0 {
			vc.Percent = roundToTwo(float64(counts[g]) / float64(classified) * 100)
		}
		result = append(result, vc)
	}
	return result
}

// RevenueByDepartment sums bill amounts per department, ordered by name.
func RevenueByDepartment(patients []models.Patient) []models.GroupSum {
	sums := make(map[string]float64)
	for _, p := range patients {
		sums[p.Department] += p.BillAmount
	}

	result := make([]models.GroupSum, 0, len(sums))
	for dep, sum := range sums {
		result = append(result, models.GroupSum{Group: dep, Sum: sum})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Group < result[j].Group
	})
	return result
}

func TotalRevenue(patients []models.Patient) float64 {
	var total float64
	for _, p := range patients {
		total += p.BillAmount
	}
	return total
}

// Aggregate computes every summary the report and the charts use.
func Aggregate(patients []models.Patient) (*models.Insights, error) {
	if len(patients) == 0 {
		return nil, ErrEmptyDataset
	}
	patients = AssignAgeGroups(patients)

	diagnoses := make([]string, len(patients))
	departments := make([]string, len(patients))
	regions := make([]string, len(patients))
	bills := make([]float64, len(patients))
	for i, p := range patients {
		diagnoses[i] = p.Diagnosis
		departments[i] = p.Department
		regions[i] = p.Region
		bills[i] = p.BillAmount
	}

	in := &models.Insights{
		Diagnoses:           CountValues(diagnoses),
		Departments:         CountValues(departments),
		Regions:             CountValues(regions),
		AgeDistribution:     AgeDistribution(patients),
		RevenueByDepartment: RevenueByDepartment(patients),
		BillStats:           AnalyzeNumbers(bills),
	}
	in.Summary = models.Summary{
		TotalRevenue:        TotalRevenue(patients),
		MostCommonDiagnosis: mode(in.Diagnoses),
		TopDepartment:       mode(in.Departments),
		TopRegion:           mode(in.Regions),
	}
	return in, nil
}
