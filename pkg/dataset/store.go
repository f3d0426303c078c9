// Package dataset loads yield table metadata and growth data from the
// semicolon-delimited CSV files the upstream dataset ships. The store is
// read-only after construction and safe for concurrent use.
package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/openyieldtables/go-yieldtables/pkg/model"
)

// ErrNotFound reports a lookup for a yield table or yield class that the
// dataset does not contain.
var ErrNotFound = errors.New("dataset: not found")

// ClassNotFoundError reports a yield class miss inside a table that does
// exist, so callers can answer it differently from a missing table. It
// unwraps to ErrNotFound.
type ClassNotFoundError struct {
	Table int
	Class float64
}

func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf("dataset: yield class %g in yield table %d: %v", e.Class, e.Table, ErrNotFound)
}

func (e *ClassNotFoundError) Unwrap() error { return ErrNotFound }

const (
	metaFileName = "yield_tables_meta.csv"
	dataFileName = "yield_tables.csv"
)

// Option configures the store before the CSV files are read.
type Option func(*config)

type config struct {
	files    fs.FS
	metaFile string
	dataFile string
}

// WithFS loads the dataset from an alternate fs.FS instead of the embedded
// bundle.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.files = files
		}
	}
}

// WithBaseDir loads the dataset from a directory on disk.
func WithBaseDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.files = os.DirFS(path)
	}
}

// WithFileNames overrides the CSV file names looked up inside the source
// filesystem. Empty values keep the defaults.
func WithFileNames(metaFile, dataFile string) Option {
	return func(cfg *config) {
		if metaFile != "" {
			cfg.metaFile = metaFile
		}
		if dataFile != "" {
			cfg.dataFile = dataFile
		}
	}
}

// Store holds the parsed dataset. Metadata keeps file order; per-table data
// keeps row order and first-seen yield class order.
type Store struct {
	metas  []model.YieldTableMeta
	byID   map[int]int
	tables map[int][]classRows
}

// classRows pairs a yield class with its parsed rows.
type classRows struct {
	class float64
	rows  []model.YieldClassRow
}

// New reads and parses the dataset. Without options the embedded default
// bundle is used.
func New(options ...Option) (*Store, error) {
	cfg := config{
		files:    DataFS(),
		metaFile: metaFileName,
		dataFile: dataFileName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	tables, columnsByID, err := loadData(cfg.files, cfg.dataFile)
	if err != nil {
		return nil, err
	}

	metas, err := loadMeta(cfg.files, cfg.metaFile, columnsByID)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]int, len(metas))
	for i, meta := range metas {
		if _, exists := byID[meta.ID]; exists {
			return nil, fmt.Errorf("dataset: duplicate yield table id %d in %s", meta.ID, cfg.metaFile)
		}
		byID[meta.ID] = i
	}

	return &Store{metas: metas, byID: byID, tables: tables}, nil
}

// Metas returns the metadata records in file order. The slice is a copy;
// callers cannot mutate the store through it.
func (s *Store) Metas() []model.YieldTableMeta {
	out := make([]model.YieldTableMeta, len(s.metas))
	copy(out, s.metas)
	return out
}

// Meta returns the metadata for one yield table id.
func (s *Store) Meta(id int) (model.YieldTableMeta, error) {
	idx, ok := s.byID[id]
	if !ok {
		return model.YieldTableMeta{}, fmt.Errorf("dataset: yield table %d: %w", id, ErrNotFound)
	}
	return s.metas[idx], nil
}

// Table returns the full yield table (metadata plus data rows grouped by
// yield class) for one id.
func (s *Store) Table(id int) (model.YieldTable, error) {
	meta, err := s.Meta(id)
	if err != nil {
		return model.YieldTable{}, err
	}

	groups := s.tables[id]
	classes := make([]model.YieldClass, 0, len(groups))
	for _, group := range groups {
		rows := make([]model.YieldClassRow, len(group.rows))
		copy(rows, group.rows)
		classes = append(classes, model.YieldClass{YieldClass: group.class, Rows: rows})
	}

	return model.YieldTable{
		YieldTableMeta: meta,
		Data:           model.YieldTableData{YieldClasses: classes},
	}, nil
}

// classRowsFor returns the rows of one yield class within a table.
func (s *Store) classRowsFor(id int, class float64) ([]model.YieldClassRow, error) {
	if _, ok := s.byID[id]; !ok {
		return nil, fmt.Errorf("dataset: yield table %d: %w", id, ErrNotFound)
	}
	for _, group := range s.tables[id] {
		if group.class == class {
			return group.rows, nil
		}
	}
	return nil, &ClassNotFoundError{Table: id, Class: class}
}
