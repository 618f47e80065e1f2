package output

import (
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/zjrosen/cryptowords/internal/runs/domain"
)

// RunTable renders saved runs as a rounded table, newest first as given.
func RunTable(runs []*domain.Run) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "Name", "Words", "Unit", "Created"})

	for _, run := range runs {
		tw.AppendRow(table.Row{
			run.ShortGUID(),
			run.Name(),
			strconv.Itoa(run.WordCount()),
			string(run.LengthUnit()),
			run.CreatedAt().Local().Format(time.DateTime),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
