// Package output печатает записи в форматах text, table, json и yaml.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"sensorlist/internal/domain/record"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

type Printer struct {
	w      io.Writer
	format string
}

func New(w io.Writer, format string) *Printer {
	return &Printer{w: w, format: format}
}

func (p *Printer) Records(recs []record.Record) error {
	switch p.format {
	case "json":
		return p.json(recs)
	case "yaml":
		nodes := make([]*yaml.Node, 0, len(recs))
		for _, r := range recs {
			nodes = append(nodes, recordNode(r))
		}
		return p.yaml(&yaml.Node{Kind: yaml.SequenceNode, Content: nodes})
	case "table":
		return p.table(recs)
	default:
		return p.text(recs)
	}
}

func (p *Printer) Record(rec record.Record) error {
	switch p.format {
	case "json":
		return p.json(rec)
	case "yaml":
		return p.yaml(recordNode(rec))
	case "table":
		return p.table([]record.Record{rec})
	default:
		return p.text([]record.Record{rec})
	}
}

func (p *Printer) text(recs []record.Record) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(p.w, "Записи не найдены")
		return err
	}

	for _, r := range recs {
		fields := make([]string, 0, len(r.Attributes))
		for _, k := range r.Attributes.Keys() {
			fields = append(fields, color.CyanString(k)+"="+strconv.Quote(r.Attributes[k]))
		}
		if _, err := fmt.Fprintf(p.w, "%s %s\n", color.New(color.Bold).Sprintf("#%d", r.ID), strings.Join(fields, " ")); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) table(recs []record.Record) error {
	cols := columns(recs)

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	header := append([]string{"ID"}, upper(cols)...)
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for _, r := range recs {
		row := make([]string, 0, len(cols)+1)
		row = append(row, strconv.Itoa(r.ID))
		for _, c := range cols {
			row = append(row, r.Attributes[c])
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w, "\nВсего записей: %d\n", len(recs))
	return err
}

func (p *Printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) yaml(n *yaml.Node) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return err
	}
	return enc.Close()
}

// recordNode сохраняет порядок полей как в JSON: id, затем атрибуты по алфавиту.
func recordNode(r record.Record) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	n.Content = append(n.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: record.IDColumn},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(r.ID)},
	)
	for _, k := range r.Attributes.Keys() {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Attributes[k]},
		)
	}
	return n
}

func columns(recs []record.Record) []string {
	all := record.Attributes{}
	for _, r := range recs {
		for k := range r.Attributes {
			all[k] = ""
		}
	}
	return all.Keys()
}

func upper(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToUpper(s)
	}
	return out
}
