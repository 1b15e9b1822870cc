// Package stream serves simulation runs over websockets. A client sends a
// run request and receives one JSON frame per recorded step, then a final
// frame carrying the run summary.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/metrics"
	"github.com/san-kum/trajsim/internal/projectile"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type runMsg struct {
	Type     string             `json:"type"` // "run"
	Preset   string             `json:"preset,omitempty"`
	Scheme   string             `json:"scheme,omitempty"`
	MaxSteps int                `json:"max_steps,omitempty"`
	Params   map[string]float64 `json:"params,omitempty"`
}

type stepMsg struct {
	Type  string  `json:"type"` // "step"
	Step  int     `json:"step"`
	T     float64 `json:"t"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	AX    float64 `json:"ax"`
	AY    float64 `json:"ay"`
	Angle float64 `json:"angle"` // degrees
}

type doneMsg struct {
	Type    string          `json:"type"` // "done"
	Summary metrics.Summary `json:"summary"`
	Error   string          `json:"error,omitempty"`
}

type errorMsg struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
}

// Server runs one simulation at a time per connection.
type Server struct {
	Registry *experiment.Registry
	Base     *config.Config
	// Interval paces step frames; zero sends them as fast as the
	// connection takes them.
	Interval time.Duration
	Logger   *log.Logger
}

func NewServer(registry *experiment.Registry, base *config.Config) *Server {
	if base == nil {
		base = config.DefaultConfig()
	}
	return &Server{Registry: registry, Base: base, Logger: log.Default()}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/schemes", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(s.Registry.ListAdvancers())
	})
	mux.HandleFunc("/presets", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(config.ListPresets())
	})
	return mux
}

// ListenAndServe serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.Logger.Printf("stream: listening on %s", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.Println("upgrade:", err)
		return
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var m runMsg
		if err := json.Unmarshal(data, &m); err != nil || m.Type != "run" {
			if err := conn.WriteJSON(errorMsg{Type: "error", Message: "expected a run message"}); err != nil {
				return
			}
			continue
		}

		cfg, err := s.resolve(m)
		if err != nil {
			if err := conn.WriteJSON(errorMsg{Type: "error", Message: err.Error()}); err != nil {
				return
			}
			continue
		}

		if err := s.stream(r.Context(), conn, cfg); err != nil {
			s.Logger.Println("stream:", err)
			return
		}
	}
}

func (s *Server) resolve(m runMsg) (*config.Config, error) {
	cfg := s.Base.Clone()
	if m.Preset != "" {
		cfg = config.GetPreset(m.Preset)
		if cfg == nil {
			return nil, errors.New("unknown preset: " + m.Preset)
		}
	}
	if m.Scheme != "" {
		cfg.Scheme = m.Scheme
	}
	if m.MaxSteps != 0 {
		cfg.MaxSteps = m.MaxSteps
	}
	for k, v := range m.Params {
		if err := cfg.Set(k, v); err != nil {
			return nil, err
		}
	}
	if _, err := s.Registry.GetAdvancer(cfg.Scheme); err != nil {
		return nil, err
	}
	if err := cfg.Projectile().Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// stream runs cfg and writes its frames. It returns only connection errors;
// simulation failures are reported to the client in the done frame.
func (s *Server) stream(ctx context.Context, conn *websocket.Conn, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pc := cfg.Projectile()
	exp, err := s.Registry.Build(cfg.Scheme, pc)
	if err != nil {
		return conn.WriteJSON(errorMsg{Type: "error", Message: err.Error()})
	}

	frames := make(chan stepMsg, 64)
	exp.GetSimulator().AddObserver(projectile.ObserverFunc(func(st projectile.State) {
		select {
		case frames <- newStepMsg(st):
		case <-ctx.Done():
		}
	}))

	type outcome struct {
		trace *projectile.Trace
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		trace, err := exp.Run(ctx)
		close(frames)
		done <- outcome{trace, err}
	}()

	var tick <-chan time.Time
	if s.Interval > 0 {
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for f := range frames {
		if tick != nil {
			<-tick
		}
		if err := conn.WriteJSON(f); err != nil {
			cancel()
			<-done
			return err
		}
	}

	res := <-done
	msg := doneMsg{Type: "done"}
	if res.trace != nil {
		msg.Summary = metrics.Summarize(res.trace, pc)
	}
	if res.err != nil {
		msg.Error = res.err.Error()
	}
	return conn.WriteJSON(msg)
}

func newStepMsg(st projectile.State) stepMsg {
	return stepMsg{
		Type:  "step",
		Step:  st.Step,
		T:     st.T,
		X:     st.Pos.X,
		Y:     st.Pos.Y,
		VX:    st.Vel.X,
		VY:    st.Vel.Y,
		AX:    st.Acc.X,
		AY:    st.Acc.Y,
		Angle: st.AngleDeg(),
	}
}
