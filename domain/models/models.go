package models

// Column types detected while loading, ordered by weight: a column takes the
// heaviest type seen among its non-null cells.
const (
	TypeInt64   = "Int64"
	TypeFloat64 = "Float64"
	TypeString  = "String"
)

// Cell is one field of a loaded row. Null marks a missing value.
type Cell struct {
	Value string
	Null  bool
}

type Row []Cell

// Table is the record table produced by the loader.
type Table struct {
	Columns []string
	Types   []string
	Rows    []Row
}

// Index returns the position of the named column or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// IsNumeric reports whether column i holds only numbers.
func (t *Table) IsNumeric(i int) bool {
	if i < 0 || i >= len(t.Types) {
		return false
	}
	return t.Types[i] == TypeInt64 || t.Types[i] == TypeFloat64
}

type AgeGroup string

const (
	AgeGroupChild      AgeGroup = "Child"
	AgeGroupTeen       AgeGroup = "Teen"
	AgeGroupYoungAdult AgeGroup = "Young Adult"
	AgeGroupAdult      AgeGroup = "Adult"
	AgeGroupSenior     AgeGroup = "Senior"
)

// AgeGroups lists the buckets in ascending age order.
var AgeGroups = []AgeGroup{
	AgeGroupChild,
	AgeGroupTeen,
	AgeGroupYoungAdult,
	AgeGroupAdult,
	AgeGroupSenior,
}

type Patient struct {
	BillAmount float64
	Diagnosis  string
	Department string
	Region     string
	Age        float64
	AgeGroup   AgeGroup // empty when the age is outside (0, 90]
}

type Summary struct {
	TotalRevenue        float64
	MostCommonDiagnosis string
	TopDepartment       string
	TopRegion           string
}

type ValueCount struct {
	Value   string
	Count   int64
	Percent float64
}

type GroupSum struct {
	Group string
	Sum   float64
}

type NumberStats struct {
	Average   float64
	Median    float64
	Min       float64
	Max       float64
	Count     int
	Quantiles map[float64]float64
	IQR       float64
	Outliers  []float64
}

type CleanStats struct {
	InputRows     int
	DuplicateRows int
	NullRows      int
	OutputRows    int
}

// Insights is everything the reporter and the plotter need from one run.
type Insights struct {
	Summary             Summary
	Diagnoses           []ValueCount
	Departments         []ValueCount
	Regions             []ValueCount
	AgeDistribution     []ValueCount
	RevenueByDepartment []GroupSum
	BillStats           *NumberStats
	Cleaning            CleanStats
}
