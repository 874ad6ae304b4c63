package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/orrery/internal/engine"
)

// Store persists recorded ephemeris runs: positions emitted frame by frame,
// never live simulation state. A run cannot be resumed, only replayed for
// plotting and export.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Seed          int64     `json:"seed"`
	Frames        int       `json:"frames"`
	TimeScaleDays float64   `json:"time_scale_days"`
	Zoom          float64   `json:"zoom"`
	HalfExtentM   float64   `json:"half_extent_m"`
	Bodies        []string  `json:"bodies"`
}

// Frame is one recorded tick: the simulated time in days and the positions
// emitted for the recorded bodies, in a fixed order.
type Frame struct {
	TimeDays  float64
	Positions []engine.Position
}

func (s *Store) Save(seed int64, timeScaleDays, zoom, halfExtent float64, frames []Frame) (string, error) {
	if len(frames) == 0 {
		return "", fmt.Errorf("nothing to save: no frames recorded")
	}

	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	bodies := make([]string, len(frames[0].Positions))
	for i, p := range frames[0].Positions {
		bodies[i] = p.ID
	}

	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		Seed:          seed,
		Frames:        len(frames),
		TimeScaleDays: timeScaleDays,
		Zoom:          zoom,
		HalfExtentM:   halfExtent,
		Bodies:        bodies,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time_days"}
	for _, name := range bodies {
		header = append(header, name+"_x_m", name+"_y_m")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, f := range frames {
		row := []string{strconv.FormatFloat(f.TimeDays, 'f', 6, 64)}
		for _, p := range f.Positions {
			row = append(row,
				strconv.FormatFloat(p.X, 'e', 9, 64),
				strconv.FormatFloat(p.Y, 'e', 9, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Frame{}, nil
	}

	header := records[0]
	bodies := make([]string, 0, (len(header)-1)/2)
	for i := 1; i < len(header); i += 2 {
		bodies = append(bodies, strings.TrimSuffix(header[i], "_x_m"))
	}

	frames := make([]Frame, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("run %s: malformed frame row with %d fields", runID, len(record))
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("run %s: bad time value %q: %w", runID, record[0], err)
		}

		f := Frame{TimeDays: t, Positions: make([]engine.Position, len(bodies))}
		for i, name := range bodies {
			x, err := strconv.ParseFloat(record[1+i*2], 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: bad x value for %s: %w", runID, name, err)
			}
			y, err := strconv.ParseFloat(record[2+i*2], 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: bad y value for %s: %w", runID, name, err)
			}
			f.Positions[i] = engine.Position{ID: name, X: x, Y: y}
		}
		frames = append(frames, f)
	}

	return frames, nil
}
