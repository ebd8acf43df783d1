// csv_header_analyzer.go
package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
)

var (
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
		regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`),
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s\d{2}:\d{2}:\d{2}$`),
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\s\d{2}:\d{2}:\d{2}\.\d+$`),
	}
	specialSymbolsRe = regexp.MustCompile("[^a-zA-Z0-9]+")
)

type HeaderAnalysis struct {
	Headers      []string // cleaned header names, unique
	LooksLikeRow bool     // first row is data, not a header
}

// AnalyzeHeaders cleans the header row and checks that it is a header at all.
func AnalyzeHeaders(firstRow []string) *HeaderAnalysis {
	if len(firstRow) == 0 {
		return nil
	}

	result := &HeaderAnalysis{Headers: make([]string, len(firstRow))}

	headerLikeCount := 0
	for _, field := range firstRow {
		if isLikelyHeader(field) {
			headerLikeCount++
		}
	}
	// Больше половины полей не похожи на заголовки - значит это данные
	result.LooksLikeRow = float64(headerLikeCount)/float64(len(firstRow)) < 0.5

	for i, header := range firstRow {
		result.Headers[i] = cleanHeaderName(header, i)
	}
	result.Headers = ValidateHeaders(result.Headers)
	return result
}

// isLikelyHeader reports whether text reads like a column name rather than a value.
func isLikelyHeader(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return false
	}

	for _, re := range datePatterns {
		if re.MatchString(text) {
			return false
		}
	}

	letters, digits, specials := 0, 0, 0
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		case unicode.IsSpace(r):
		default:
			specials++
		}
	}

	totalChars := letters + digits + specials
	if totalChars == 0 {
		return false
	}
	return letters > 0 && float64(letters)/float64(totalChars) >= 0.3
}

func generateColumnName(index int) string {
	return fmt.Sprintf("column_%d", index+1)
}

// ValidateHeaders suffixes repeated names: a, a -> a, a_1.
func ValidateHeaders(headers []string) []string {
	seen := make(map[string]bool)
	result := make([]string, len(headers))

	for i, header := range headers {
		candidate := header
		for counter := 1; seen[candidate]; counter++ {
			candidate = fmt.Sprintf("%s_%d", header, counter)
		}
		seen[candidate] = true
		result[i] = candidate
	}

	return result
}

// cleanHeaderName trims the name, drops a BOM and transliterates it to ASCII.
// Case and underscores are kept so Bill_Amount stays Bill_Amount.
func cleanHeaderName(header string, index int) string {
	header = strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))
	if header == "" {
		return generateColumnName(index)
	}
	cleaned := strings.TrimSpace(unidecode.Unidecode(header))
	if cleaned == "" {
		return generateColumnName(index)
	}
	return cleaned
}

// headerKey is the loose form used to match expected columns:
// "Bill Amount", "bill_amount" and "BILL-AMOUNT" share the key bill_amount.
func headerKey(header string) string {
	return strings.ToLower(replaceSpecialSymbols(unidecode.Unidecode(header)))
}

func replaceSpecialSymbols(input string) string {
	processed := specialSymbolsRe.ReplaceAllString(input, "_")
	return strings.Trim(processed, "_")
}
