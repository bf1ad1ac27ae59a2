package xlsxconv

import (
	"context"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/voidlight/voidlight-markitdown/internal/dispatch"
	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

func TestAcceptsByExtension(t *testing.T) {
	c := New()
	if !c.Accepts(nil, streaminfo.StreamInfo{Extension: ".xlsx"}) {
		t.Fatalf("expected .xlsx extension to be accepted")
	}
	if c.Accepts(nil, streaminfo.StreamInfo{Extension: ".csv"}) {
		t.Fatalf("did not expect .csv to be accepted")
	}
}

func TestConvertSingleSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "name")
	f.SetCellValue(sheet, "B1", "age")
	f.SetCellValue(sheet, "A2", "김철수")
	f.SetCellValue(sheet, "B2", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	c := New()
	res, err := c.Convert(context.Background(), strings.NewReader(buf.String()), streaminfo.StreamInfo{}, dispatch.ConvertOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"## " + sheet, "name", "age", "김철수", "30"} {
		if !strings.Contains(res.Markdown, want) {
			t.Fatalf("expected markdown to contain %q, got:\n%s", want, res.Markdown)
		}
	}
	if res.Title != sheet {
		t.Fatalf("expected title %q, got %q", sheet, res.Title)
	}
}
