package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

type ExportData struct {
	ID            string        `json:"id"`
	Seed          int64         `json:"seed"`
	TimeScaleDays float64       `json:"time_scale_days"`
	Zoom          float64       `json:"zoom"`
	HalfExtentM   float64       `json:"half_extent_m"`
	Bodies        []string      `json:"bodies"`
	TimesDays     []float64     `json:"times_days"`
	Positions     [][][]float64 `json:"positions"` // [frame][body][x, y] in meters
}

// ExportJSON writes a recorded run as a single JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, frames []Frame) error {
	data := ExportData{
		ID:            meta.ID,
		Seed:          meta.Seed,
		TimeScaleDays: meta.TimeScaleDays,
		Zoom:          meta.Zoom,
		HalfExtentM:   meta.HalfExtentM,
		Bodies:        meta.Bodies,
		TimesDays:     make([]float64, len(frames)),
		Positions:     make([][][]float64, len(frames)),
	}

	for i, f := range frames {
		data.TimesDays[i] = f.TimeDays
		data.Positions[i] = make([][]float64, len(f.Positions))
		for j, p := range f.Positions {
			data.Positions[i][j] = []float64{p.X, p.Y}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a recorded run in the same column layout as frames.csv.
func ExportCSV(w io.Writer, meta *RunMetadata, frames []Frame) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"time_days"}
	for _, name := range meta.Bodies {
		header = append(header, name+"_x_m", name+"_y_m")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, f := range frames {
		row := []string{strconv.FormatFloat(f.TimeDays, 'f', 6, 64)}
		for _, p := range f.Positions {
			row = append(row,
				strconv.FormatFloat(p.X, 'e', 9, 64),
				strconv.FormatFloat(p.Y, 'e', 9, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return nil
}
