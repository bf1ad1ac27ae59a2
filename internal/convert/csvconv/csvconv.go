// Package csvconv converts CSV streams to Markdown tables. CSV has no
// third-party parser anywhere in the example pack, so this converter is the
// justified stdlib exception: encoding/csv does the parsing, mdtable does
// the rendering.
package csvconv

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/voidlight/voidlight-markitdown/internal/convert/mdtable"
	"github.com/voidlight/voidlight-markitdown/internal/dispatch"
	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

// Converter accepts CSV streams by mimetype or .csv extension.
type Converter struct{}

// New returns a csv Converter.
func New() *Converter { return &Converter{} }

func (c *Converter) Accepts(_ []byte, info streaminfo.StreamInfo) bool {
	if info.Mimetype == "text/csv" {
		return true
	}
	return info.Extension == ".csv"
}

func (c *Converter) Convert(_ context.Context, stream dispatch.Stream, _ streaminfo.StreamInfo, _ dispatch.ConvertOptions) (dispatch.ConverterResult, error) {
	r := csv.NewReader(stream)
	r.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return dispatch.ConverterResult{}, err
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return dispatch.ConverterResult{Markdown: ""}, nil
	}
	md := mdtable.Render(nil, rows)
	return dispatch.ConverterResult{Markdown: md}, nil
}
