package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/trajsim/internal/projectile"
)

type ExportData struct {
	Scheme          string             `json:"scheme"`
	Config          projectile.Config  `json:"config"`
	Steps           int                `json:"steps"`
	Complete        bool               `json:"complete"`
	HasAcceleration bool               `json:"has_acceleration"`
	Times           []float64          `json:"t"`
	X               []float64          `json:"x"`
	Y               []float64          `json:"y"`
	VX              []float64          `json:"vx"`
	VY              []float64          `json:"vy"`
	Speed           []float64          `json:"speed"`
	Angle           []float64          `json:"angle"`
	AX              []float64          `json:"ax,omitempty"`
	AY              []float64          `json:"ay,omitempty"`
	Metrics         map[string]float64 `json:"metrics"`
}

func NewExportData(cfg projectile.Config, trace *projectile.Trace) ExportData {
	data := ExportData{
		Scheme:          trace.Scheme,
		Config:          cfg,
		Steps:           trace.Len() - 1,
		Complete:        trace.Complete,
		HasAcceleration: trace.HasAcceleration,
		Times:           trace.T,
		X:               trace.X,
		Y:               trace.Y,
		VX:              trace.VX,
		VY:              trace.VY,
		Speed:           trace.Speed,
		Angle:           trace.Angle,
		Metrics:         trace.Metrics,
	}
	if trace.HasAcceleration {
		data.AX = trace.AX
		data.AY = trace.AY
	}
	return data
}

func ExportJSON(w io.Writer, cfg projectile.Config, trace *projectile.Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(cfg, trace))
}

// WriteCSV writes one row per recorded step under a t,x,y,... header.
// Values are written at full precision so a saved run reloads exactly.
func WriteCSV(w io.Writer, trace *projectile.Trace) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(stateHeader); err != nil {
		return err
	}

	row := make([]string, len(stateHeader))
	for i := 0; i < trace.Len(); i++ {
		for j, v := range []float64{
			trace.T[i], trace.X[i], trace.Y[i],
			trace.VX[i], trace.VY[i], trace.Speed[i],
			trace.Angle[i], trace.AX[i], trace.AY[i],
		} {
			row[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
