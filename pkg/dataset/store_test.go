package dataset_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/openyieldtables/go-yieldtables/pkg/dataset"
	"github.com/openyieldtables/go-yieldtables/pkg/model"
)

func newStore(t *testing.T, options ...dataset.Option) *dataset.Store {
	t.Helper()
	store, err := dataset.New(options...)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestStore_Metas(t *testing.T) {
	store := newStore(t)

	metas := store.Metas()
	if len(metas) != 3 {
		t.Fatalf("len(metas) = %d, want 3", len(metas))
	}

	step := 1.0
	ageStep := 10
	want := model.YieldTableMeta{
		ID:             1,
		Title:          "Fichte Hochgebirge",
		CountryCodes:   []string{"AT", "DE"},
		Type:           "dgz_100",
		Source:         "Marschall",
		Link:           "",
		YieldClassStep: &step,
		AgeStep:        &ageStep,
		TreeType:       model.TreeType{Value: "spruce"},
		AvailableColumns: []string{
			"id", "yield_class", "age", "dominant_height", "average_height",
			"dbh", "taper", "trees_per_ha", "basal_area", "volume_per_ha",
			"average_annual_age_increment", "total_growth_performance",
			"current_annual_increment", "mean_annual_increment",
		},
	}
	if diff := cmp.Diff(want, metas[0]); diff != "" {
		t.Fatalf("meta mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_Meta_AvailableColumnsSkipEmpty(t *testing.T) {
	store := newStore(t)

	meta, err := store.Meta(3)
	if err != nil {
		t.Fatalf("meta: %v", err)
	}

	for _, column := range meta.AvailableColumns {
		if column == "taper" {
			t.Fatalf("taper has no values for table 3 and must not be listed: %v", meta.AvailableColumns)
		}
	}
	if len(meta.AvailableColumns) != 13 {
		t.Fatalf("len(available_columns) = %d, want 13", len(meta.AvailableColumns))
	}
}

func TestStore_Meta_NotFound(t *testing.T) {
	store := newStore(t)

	_, err := store.Meta(999)
	if !errors.Is(err, dataset.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Table(t *testing.T) {
	store := newStore(t)

	table, err := store.Table(1)
	if err != nil {
		t.Fatalf("table: %v", err)
	}

	if table.Title != "Fichte Hochgebirge" {
		t.Fatalf("title = %q", table.Title)
	}
	if len(table.Data.YieldClasses) != 3 {
		t.Fatalf("len(yield_classes) = %d, want 3", len(table.Data.YieldClasses))
	}

	first := table.Data.YieldClasses[0]
	if first.YieldClass != 1 {
		t.Fatalf("first yield class = %g, want 1", first.YieldClass)
	}
	ages := make([]int, 0, len(first.Rows))
	for _, row := range first.Rows {
		ages = append(ages, row.Age)
	}
	if diff := cmp.Diff([]int{20, 30, 40}, ages); diff != "" {
		t.Fatalf("age order mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_Table_PreservesEmptyMetric(t *testing.T) {
	store := newStore(t)

	table, err := store.Table(3)
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	row := table.Data.YieldClasses[0].Rows[0]
	if row.Taper != nil {
		t.Fatalf("taper = %v, want nil", *row.Taper)
	}
	if row.DominantHeight == nil || *row.DominantHeight != 4.4 {
		t.Fatalf("dominant_height = %v, want 4.4", row.DominantHeight)
	}
}

func TestNew_WithFS(t *testing.T) {
	files := fstest.MapFS{
		"yield_tables_meta.csv": &fstest.MapFile{Data: []byte(
			"id;title;country_codes;type;source;link;yield_class_step;age_step;tree_type\n" +
				"7;Testbestand;AT;dgz_100;Unit Test;;0.5;5;larch\n",
		)},
		"yield_tables.csv": &fstest.MapFile{Data: []byte(
			"id;yield_class;age;dominant_height;average_height;dbh;taper;trees_per_ha;basal_area;volume_per_ha;average_annual_age_increment;total_growth_performance;current_annual_increment;mean_annual_increment\n" +
				"7;1;10;3.0;2.5;4.0;0.6;5000;10.0;20;1.0;20;1.5;1.0\n",
		)},
	}

	store := newStore(t, dataset.WithFS(files))

	meta, err := store.Meta(7)
	if err != nil {
		t.Fatalf("meta: %v", err)
	}
	if meta.Title != "Testbestand" {
		t.Fatalf("title = %q", meta.Title)
	}
	if meta.YieldClassStep == nil || *meta.YieldClassStep != 0.5 {
		t.Fatalf("yield_class_step = %v, want 0.5", meta.YieldClassStep)
	}
}

func TestNew_DuplicateID(t *testing.T) {
	files := fstest.MapFS{
		"yield_tables_meta.csv": &fstest.MapFile{Data: []byte(
			"id;title;country_codes;type;source;link;yield_class_step;age_step;tree_type\n" +
				"7;A;AT;dgz_100;X;;1;10;larch\n" +
				"7;B;AT;dgz_100;X;;1;10;larch\n",
		)},
		"yield_tables.csv": &fstest.MapFile{Data: []byte(
			"id;yield_class;age;dominant_height;average_height;dbh;taper;trees_per_ha;basal_area;volume_per_ha;average_annual_age_increment;total_growth_performance;current_annual_increment;mean_annual_increment\n",
		)},
	}

	if _, err := dataset.New(dataset.WithFS(files)); err == nil {
		t.Fatal("expected duplicate id error")
	}
}
