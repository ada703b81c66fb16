package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/piwi3910/FutonFrame/internal/model"
)

func TestWriteLabels_ProducesDocument(t *testing.T) {
	d, m := buildTestFrame(t)

	var buf bytes.Buffer
	if err := WriteLabels(&buf, model.CutList(d, m)); err != nil {
		t.Fatalf("WriteLabels returned error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("output does not start with a PDF header")
	}
	if buf.Len() < 500 {
		t.Errorf("PDF seems too small: %d bytes", buf.Len())
	}
}

func TestWriteLabels_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLabels(&buf, nil); err == nil {
		t.Fatal("expected error for empty cut list, got nil")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written when there are no tags")
	}
}

func TestWriteLabels_MultiplePages(t *testing.T) {
	var members []model.Member
	for i := 0; i < 20; i++ {
		members = append(members, model.NewMember(fmt.Sprintf("Slat %d", i+1), 30, 0.75, 2))
	}

	var buf bytes.Buffer
	if err := WriteLabels(&buf, members); err != nil {
		t.Fatalf("WriteLabels returned error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("PDF is empty")
	}
}

func TestCollectTags(t *testing.T) {
	d, m := buildTestFrame(t)
	tags := CollectTags(model.CutList(d, m))

	// Three members, two of each
	if len(tags) != 6 {
		t.Fatalf("expected 6 tags, got %d", len(tags))
	}
	if tags[0].Name != "Main beam" || tags[0].Piece != 1 || tags[0].Of != 2 {
		t.Errorf("unexpected first tag: %+v", tags[0])
	}
	if tags[1].Piece != 2 || tags[1].MemberID != tags[0].MemberID {
		t.Errorf("second tag should be the other main beam: %+v", tags[1])
	}
	if tags[5].Name != "Back leg" {
		t.Errorf("expected last tag for back leg, got %q", tags[5].Name)
	}
}

func TestTagInfo_JSONRoundTrip(t *testing.T) {
	info := TagInfo{
		MemberID:  "ab12cd34",
		Name:      "Rear support",
		Length:    8.1229,
		Thickness: 5,
		Piece:     1,
		Of:        2,
	}

	data, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded TagInfo
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded != info {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, info)
	}
}
