package cmd

import (
	"encoding/json"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/psantana5/peperone/internal/config"
	"github.com/psantana5/peperone/internal/elapsed"
	"github.com/psantana5/peperone/internal/timer"
	"gopkg.in/yaml.v3"
)

const startedLayout = "2006-01-02 15:04:05"

type timerView struct {
	Name           string    `json:"name" yaml:"name"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
	Elapsed        string    `json:"elapsed" yaml:"elapsed"`
	ElapsedSeconds int64     `json:"elapsed_seconds" yaml:"elapsed_seconds"`
}

func newTimerView(t *timer.Timer, now time.Time) timerView {
	secs := elapsed.Seconds(t.Elapsed(now))
	return timerView{
		Name:           t.Name,
		CreatedAt:      t.CreatedAt,
		Elapsed:        elapsed.Format(secs),
		ElapsedSeconds: secs,
	}
}

// writeStructured encodes v as json or yaml. It reports false for other formats.
func writeStructured(w io.Writer, format string, v interface{}) (bool, error) {
	switch format {
	case config.OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return true, encoder.Encode(v)

	case config.OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return true, err
		}
		return true, encoder.Close()
	}
	return false, nil
}

func writeTimersTable(w io.Writer, views []timerView) error {
	table := tablewriter.NewWriter(w)
	table.Header("Name", "Started", "Elapsed")
	for _, v := range views {
		if err := table.Append([]string{
			v.Name,
			v.CreatedAt.Local().Format(startedLayout),
			v.Elapsed,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func writeTimerDetails(w io.Writer, v timerView) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")
	rows := [][]string{
		{"Name", v.Name},
		{"Started", v.CreatedAt.Local().Format(startedLayout)},
		{"Elapsed", v.Elapsed},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
