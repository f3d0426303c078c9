package dataset

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/openyieldtables/go-yieldtables/pkg/model"
)

// readRecords parses a semicolon-delimited CSV file and returns one map per
// row keyed by the header names, plus the header itself in column order.
func readRecords(files fs.FS, name string) ([]string, []map[string]string, error) {
	file, err := files.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: open %s: %w", name, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: parse %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("dataset: %s has no header row", name)
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(row) {
				record[column] = strings.TrimSpace(row[i])
			} else {
				record[column] = ""
			}
		}
		records = append(records, record)
	}
	return header, records, nil
}

// loadMeta parses the metadata CSV into YieldTableMeta records, attaching the
// available columns computed from the data file.
func loadMeta(files fs.FS, name string, columnsByID map[int][]string) ([]model.YieldTableMeta, error) {
	_, records, err := readRecords(files, name)
	if err != nil {
		return nil, err
	}

	metas := make([]model.YieldTableMeta, 0, len(records))
	for i, record := range records {
		id, err := strconv.Atoi(record["id"])
		if err != nil {
			return nil, fmt.Errorf("dataset: %s row %d: parse id %q: %w", name, i+1, record["id"], err)
		}

		meta := model.YieldTableMeta{
			ID:               id,
			Title:            record["title"],
			CountryCodes:     splitList(record["country_codes"]),
			Type:             record["type"],
			Source:           record["source"],
			Link:             record["link"],
			TreeType:         model.TreeType{Value: record["tree_type"]},
			AvailableColumns: columnsByID[id],
		}

		if raw := record["yield_class_step"]; raw != "" {
			step, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: %s row %d: parse yield_class_step %q: %w", name, i+1, raw, err)
			}
			meta.YieldClassStep = &step
		}
		if raw := record["age_step"]; raw != "" {
			ageStep, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("dataset: %s row %d: parse age_step %q: %w", name, i+1, raw, err)
			}
			meta.AgeStep = &ageStep
		}

		metas = append(metas, meta)
	}
	return metas, nil
}

// loadData parses the data CSV into per-table yield class groups and computes
// the available columns per table id: every header column, in header order,
// that holds at least one non-empty value among the table's rows.
func loadData(files fs.FS, name string) (map[int][]classRows, map[int][]string, error) {
	header, records, err := readRecords(files, name)
	if err != nil {
		return nil, nil, err
	}

	tables := make(map[int][]classRows)
	populated := make(map[int]map[string]bool)

	for i, record := range records {
		id, err := strconv.Atoi(record["id"])
		if err != nil {
			return nil, nil, fmt.Errorf("dataset: %s row %d: parse id %q: %w", name, i+1, record["id"], err)
		}
		class, err := strconv.ParseFloat(record["yield_class"], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("dataset: %s row %d: parse yield_class %q: %w", name, i+1, record["yield_class"], err)
		}
		age, err := strconv.Atoi(record["age"])
		if err != nil {
			return nil, nil, fmt.Errorf("dataset: %s row %d: parse age %q: %w", name, i+1, record["age"], err)
		}

		row := model.YieldClassRow{
			Age:                       age,
			DominantHeight:            parseFloat(record["dominant_height"]),
			AverageHeight:             parseFloat(record["average_height"]),
			DBH:                       parseFloat(record["dbh"]),
			Taper:                     parseFloat(record["taper"]),
			TreesPerHa:                parseFloat(record["trees_per_ha"]),
			BasalArea:                 parseFloat(record["basal_area"]),
			VolumePerHa:               parseFloat(record["volume_per_ha"]),
			AverageAnnualAgeIncrement: parseFloat(record["average_annual_age_increment"]),
			TotalGrowthPerformance:    parseFloat(record["total_growth_performance"]),
			CurrentAnnualIncrement:    parseFloat(record["current_annual_increment"]),
			MeanAnnualIncrement:       parseFloat(record["mean_annual_increment"]),
		}
		tables[id] = appendRow(tables[id], class, row)

		if populated[id] == nil {
			populated[id] = make(map[string]bool, len(header))
		}
		for _, column := range header {
			if record[column] != "" {
				populated[id][column] = true
			}
		}
	}

	columnsByID := make(map[int][]string, len(populated))
	for id, seen := range populated {
		columns := make([]string, 0, len(seen))
		for _, column := range header {
			if seen[column] {
				columns = append(columns, column)
			}
		}
		columnsByID[id] = columns
	}

	return tables, columnsByID, nil
}

// appendRow adds a row to its yield class group, creating the group on first
// sight so class order follows the file.
func appendRow(groups []classRows, class float64, row model.YieldClassRow) []classRows {
	for i := range groups {
		if groups[i].class == class {
			groups[i].rows = append(groups[i].rows, row)
			return groups
		}
	}
	return append(groups, classRows{class: class, rows: []model.YieldClassRow{row}})
}

// parseFloat converts an optional CSV cell. Empty or malformed cells stay
// nil, matching the upstream dataset's loose metric columns.
func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

// splitList parses a comma-joined list cell, dropping empty entries while
// preserving order.
func splitList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
