package main

import (
	"fmt"
	"io"
	"text/template"
	"time"
)

type Report struct {
	RunID    string
	Config   string
	Sessions int
	Parallel int
	Duration time.Duration
	DeltaT   float32
	Seed     uint64

	WallTime time.Duration
	Results  []*SessionResult
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]
	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Steer Headless Report

## Run
- **Run ID:** {{.RunID}}
- **Config:** {{if .Config}}{{.Config}}{{else}}defaults{{end}}
- **Sessions:** {{.Sessions}} ({{.Parallel}} in parallel)
- **Simulated Duration:** {{.Duration}} at dt={{printf "%.4f" .DeltaT}}s
- **Seed:** {{.Seed}}
- **Wall Time:** {{.WallTime}}
{{range .Results}}
## Session {{.Session}}{{if .Interrupted}} (interrupted){{end}}
- **Ticks:** {{.Ticks}} ({{printf "%.2f" .SimTime}}s simulated)
- **Tick Time:** avg {{.TickTime.Avg}}, min {{.TickTime.Min}}, max {{.TickTime.Max}}
- **Projectiles Fired:** {{.Projectiles}}
- **Despawned:** {{.Despawned}}
- **Entities Remaining:** {{.Remaining}} in {{.Storage.ArchetypeCount}} archetypes
- **Commander:** pos {{vec .Commander.Position}}, vel {{vec .Commander.Velocity}}
{{range .Systems}}  - {{printf "%-16s" .Name}} avg {{.AvgDuration}} max {{.MaxDuration}}
{{end}}{{end}}`

var reportFuncs = template.FuncMap{
	"vec": func(v interface{ Length() float32 }) string {
		return fmt.Sprintf("%v (|%.1f|)", v, v.Length())
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
