// Package xlsxconv converts XLSX workbooks to Markdown, one table per
// sheet under a sheet-name heading. Adapted from the teacher's
// xlsx_parser.go (ParseReader/parseExcelFile pattern over excelize).
package xlsxconv

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/voidlight/voidlight-markitdown/internal/convert/mdtable"
	"github.com/voidlight/voidlight-markitdown/internal/dispatch"
	"github.com/voidlight/voidlight-markitdown/internal/merr"
	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

const xlsxMimetype = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Converter accepts XLSX workbooks by mimetype or extension.
type Converter struct{}

// New returns an xlsx Converter.
func New() *Converter { return &Converter{} }

func (c *Converter) Accepts(_ []byte, info streaminfo.StreamInfo) bool {
	if info.Mimetype == xlsxMimetype {
		return true
	}
	return info.Extension == ".xlsx"
}

func (c *Converter) Convert(_ context.Context, stream dispatch.Stream, info streaminfo.StreamInfo, _ dispatch.ConvertOptions) (dispatch.ConverterResult, error) {
	f, err := excelize.OpenReader(stream)
	if err != nil {
		return dispatch.ConverterResult{}, merr.Wrap(merr.FileConversionErr, "failed to read xlsx workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return dispatch.ConverterResult{}, merr.New(merr.FileConversionErr, "no sheets found in xlsx workbook")
	}

	var b strings.Builder
	title := ""
	for i, sheetName := range sheets {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			continue
		}
		if title == "" {
			title = sheetName
		}
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", sheetName)
		if len(rows) == 0 {
			continue
		}
		b.WriteString(mdtable.Render(nil, rows))
	}

	return dispatch.ConverterResult{
		Markdown: b.String(),
		Title:    title,
		Metadata: map[string]string{"sheet_count": fmt.Sprintf("%d", len(sheets))},
	}, nil
}
