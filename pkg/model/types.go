package model

// TreeType is the categorical attribute of a yield table. Only the display
// value is exposed; the wire format mirrors the upstream dataset.
type TreeType struct {
	Value string `json:"value"`
}

// YieldTableMeta describes one yield table: identity, provenance, and the
// data columns the underlying table exposes. Records are read-only inputs;
// nothing in this module mutates them after the dataset loads.
type YieldTableMeta struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	CountryCodes     []string `json:"country_codes"`
	Type             string   `json:"type"`
	Source           string   `json:"source"`
	Link             string   `json:"link,omitempty"`
	YieldClassStep   *float64 `json:"yield_class_step"`
	AgeStep          *int     `json:"age_step"`
	TreeType         TreeType `json:"tree_type"`
	AvailableColumns []string `json:"available_columns"`
}

// YieldClassRow holds the growth metrics for one age step within a yield
// class. Metric columns are optional in the source data, so absent cells
// stay nil instead of collapsing to zero.
type YieldClassRow struct {
	Age                       int      `json:"age"`
	DominantHeight            *float64 `json:"dominant_height"`
	AverageHeight             *float64 `json:"average_height"`
	DBH                       *float64 `json:"dbh"`
	Taper                     *float64 `json:"taper"`
	TreesPerHa                *float64 `json:"trees_per_ha"`
	BasalArea                 *float64 `json:"basal_area"`
	VolumePerHa               *float64 `json:"volume_per_ha"`
	AverageAnnualAgeIncrement *float64 `json:"average_annual_age_increment"`
	TotalGrowthPerformance    *float64 `json:"total_growth_performance"`
	CurrentAnnualIncrement    *float64 `json:"current_annual_increment"`
	MeanAnnualIncrement       *float64 `json:"mean_annual_increment"`
}

// YieldClass groups the rows belonging to one site quality class.
type YieldClass struct {
	YieldClass float64         `json:"yield_class"`
	Rows       []YieldClassRow `json:"rows"`
}

// YieldTableData wraps the ordered yield classes of a table.
type YieldTableData struct {
	YieldClasses []YieldClass `json:"yield_classes"`
}

// YieldTable combines a table's metadata with its full data payload.
type YieldTable struct {
	YieldTableMeta
	Data YieldTableData `json:"data"`
}

// MetricColumns lists the metric column names of yield_tables.csv in header
// order, excluding the id, yield_class, and age key columns.
func MetricColumns() []string {
	return []string{
		"dominant_height",
		"average_height",
		"dbh",
		"taper",
		"trees_per_ha",
		"basal_area",
		"volume_per_ha",
		"average_annual_age_increment",
		"total_growth_performance",
		"current_annual_increment",
		"mean_annual_increment",
	}
}
