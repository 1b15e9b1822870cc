package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/trajsim/internal/projectile"
)

const (
	metadataFile = "metadata.json"
	statesFile   = "states.csv"
)

var stateHeader = []string{"t", "x", "y", "vx", "vy", "speed", "angle", "ax", "ay"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID              string             `json:"id"`
	Scheme          string             `json:"scheme"`
	Timestamp       time.Time          `json:"timestamp"`
	Config          projectile.Config  `json:"config"`
	Steps           int                `json:"steps"`
	Complete        bool               `json:"complete"`
	HasAcceleration bool               `json:"has_acceleration"`
	Metrics         map[string]float64 `json:"metrics"`
}

// Save writes the run as <base>/<scheme>_<unixnano>/{metadata.json,states.csv}.
func (s *Store) Save(cfg projectile.Config, trace *projectile.Trace) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", trace.Scheme, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:              runID,
		Scheme:          trace.Scheme,
		Timestamp:       now,
		Config:          cfg,
		Steps:           trace.Len() - 1,
		Complete:        trace.Complete,
		HasAcceleration: trace.HasAcceleration,
		Metrics:         trace.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, statesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, trace); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns the readable runs, oldest first. Directories without valid
// metadata are skipped.
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrace rebuilds the frozen trace of a saved run.
func (s *Store) LoadTrace(runID string) (*projectile.Trace, *RunMetadata, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, statesFile))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(stateHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", statesFile, err)
	}

	trace := projectile.NewTrace(meta.Scheme, meta.Config.Dt, meta.HasAcceleration, len(records))
	trace.Complete = meta.Complete
	for k, v := range meta.Metrics {
		trace.Metrics[k] = v
	}

	for i := 1; i < len(records); i++ {
		vals := make([]float64, len(stateHeader))
		for j, field := range records[i] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s row %d column %s: %w", statesFile, i, stateHeader[j], err)
			}
			vals[j] = v
		}
		_ = trace.Record(projectile.State{
			Step:  i - 1,
			T:     vals[0],
			Pos:   projectile.Vec2{X: vals[1], Y: vals[2]},
			Vel:   projectile.Vec2{X: vals[3], Y: vals[4]},
			Angle: vals[6],
			Acc:   projectile.Vec2{X: vals[7], Y: vals[8]},
		})
	}
	trace.Freeze()

	return trace, meta, nil
}

func (s *Store) Delete(runID string) error {
	if _, err := s.Load(runID); err != nil {
		return err
	}
	return os.RemoveAll(filepath.Join(s.baseDir, runID))
}
