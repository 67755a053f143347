package frames

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook column headers, as authored in the content workbook.
const (
	colFrameName = "frame_name"
	colHeading   = "frame_heading"
	colContent   = "frame_content"
	colNotes     = "notes"
	colKeyFocus  = "key_focus"
	colExtraInfo = "extra_info"
	colVideo     = "video"
	colScenario  = "scenario"
	colQuestion  = "question"
	colOptionA   = "option_a"
	colOptionB   = "option_b"
	colOptionC   = "option_c"
	colSource    = "source" // CSV only; xlsx derives it from the sheet
)

// LoadFile loads a course from an .xlsx workbook (sheets Main_frame and
// Remedial_frame) or from a .csv export carrying a source column.
func LoadFile(path string) (*Course, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return loadCSV(path)
	}
	return loadWorkbook(path)
}

func loadWorkbook(path string) (*Course, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var all []Frame
	for _, source := range []Source{SourceMain, SourceRemedial} {
		rows, err := f.GetRows(string(source))
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", source, err)
		}
		frames, err := framesFromRows(rows, source)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", source, err)
		}
		all = append(all, frames...)
	}

	return NewCourse(all)
}

func loadCSV(path string) (*Course, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, record)
	}

	frames, err := framesFromRows(rows, "")
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return NewCourse(frames)
}

// framesFromRows decodes header-indexed rows. When source is empty the
// rows must carry their own source column.
func framesFromRows(rows [][]string, source Source) ([]Frame, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows")
	}

	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := idx[colFrameName]; !ok {
		return nil, fmt.Errorf("missing %q column", colFrameName)
	}
	if source == "" {
		if _, ok := idx[colSource]; !ok {
			return nil, fmt.Errorf("missing %q column", colSource)
		}
	}

	cell := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var frames []Frame
	for _, row := range rows[1:] {
		name := cell(row, colFrameName)
		if name == "" {
			continue
		}

		frameSource := source
		if frameSource == "" {
			frameSource = Source(cell(row, colSource))
		}

		fr := Frame{
			Name:      name,
			Heading:   cell(row, colHeading),
			Content:   cell(row, colContent),
			Notes:     cell(row, colNotes),
			KeyFocus:  cell(row, colKeyFocus),
			ExtraInfo: cell(row, colExtraInfo),
			Video:     cell(row, colVideo),
			Scenario:  cell(row, colScenario),
			Question:  cell(row, colQuestion),
			Source:    frameSource,
		}
		for _, col := range []string{colOptionA, colOptionB, colOptionC} {
			if raw := cell(row, col); raw != "" {
				fr.Options = append(fr.Options, ParseOption(raw))
			}
		}
		frames = append(frames, fr)
	}

	return frames, nil
}
