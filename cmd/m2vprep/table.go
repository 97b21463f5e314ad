package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// countTable is a two column table: a label and a right aligned count.
type countTable struct {
	title  string
	header table.Row
	rows   []table.Row
}

func newCountTable(title, label, count string) *countTable {
	return &countTable{title: title, header: table.Row{label, count}}
}

func (t *countTable) add(label string, count int) {
	t.rows = append(t.rows, table.Row{label, count})
}

// write renders the table to w followed by a new line.
func (t *countTable) write(w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	if t.title != "" {
		tw.SetTitle("%s", t.title)
	}
	tw.AppendHeader(t.header)
	tw.AppendRows(t.rows)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})
	tw.Render()
}
