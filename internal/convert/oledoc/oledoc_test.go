package oledoc

import (
	"testing"

	"github.com/voidlight/voidlight-markitdown/internal/streaminfo"
)

func TestAcceptsByMimetype(t *testing.T) {
	c := New()
	if !c.Accepts(nil, streaminfo.StreamInfo{Mimetype: cfbMimetype}) {
		t.Fatalf("expected cfb mimetype to be accepted")
	}
}

func TestAcceptsByLegacyExtension(t *testing.T) {
	c := New()
	for _, ext := range []string{".doc", ".xls", ".ppt"} {
		if !c.Accepts(nil, streaminfo.StreamInfo{Extension: ext}) {
			t.Fatalf("expected %s to be accepted", ext)
		}
	}
	if c.Accepts(nil, streaminfo.StreamInfo{Extension: ".docx"}) {
		t.Fatalf("did not expect .docx (zip-based, not OLE) to be accepted")
	}
}

func TestIsSummaryStream(t *testing.T) {
	if !isSummaryStream("\x05SummaryInformation") {
		t.Fatalf("expected prefixed SummaryInformation to match")
	}
	if isSummaryStream("WordDocument") {
		t.Fatalf("did not expect WordDocument to match")
	}
}
