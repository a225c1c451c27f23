package parser

import (
	"strings"
	"testing"
)

func TestStreamParse_PlainCSV(t *testing.T) {
	data := []byte("Candidate RefNo,Weekending\nRF1234,07/03/2025\nRF5678,07/03/2025\n")
	records, err := StreamParse(data)
	if err != nil {
		t.Fatalf("StreamParse() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0]["Candidate RefNo"] != "RF1234" {
		t.Errorf("records[0][Candidate RefNo] = %q, want RF1234", records[0]["Candidate RefNo"])
	}
}

func TestStreamParse_UTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Candidate RefNo,Weekending\nRF1234,07/03/2025\n")...)
	records, err := StreamParse(data)
	if err != nil {
		t.Fatalf("StreamParse() error: %v", err)
	}
	// The BOM must not stick to the first header.
	if _, ok := records[0]["Candidate RefNo"]; !ok {
		t.Errorf("first header not clean, got keys %v", keysOf(records[0]))
	}
}

func TestStreamParse_UTF16LE(t *testing.T) {
	text := "a,b\n1,2\n"
	data := []byte{0xFF, 0xFE}
	for _, r := range text {
		data = append(data, byte(r), 0x00)
	}
	records, err := StreamParse(data)
	if err != nil {
		t.Fatalf("StreamParse() error: %v", err)
	}
	if records[0]["a"] != "1" || records[0]["b"] != "2" {
		t.Errorf("records[0] = %v, want a=1 b=2", records[0])
	}
}

func TestStreamParse_Latin1Fallback(t *testing.T) {
	data := []byte("name,city\nRen")
	data = append(data, 0xE9) // é in Latin-1
	data = append(data, []byte(",Paris\n")...)

	records, err := StreamParse(data)
	if err != nil {
		t.Fatalf("StreamParse() error: %v", err)
	}
	if records[0]["name"] != "René" {
		t.Errorf("records[0][name] = %q, want René", records[0]["name"])
	}
}

func TestStreamParse_RaggedRows(t *testing.T) {
	data := []byte("a,b,c\n1,2\n1,2,3,4\n")
	result, err := StreamParseWithWarnings(data)
	if err != nil {
		t.Fatalf("StreamParseWithWarnings() error: %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(result.Records))
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("len(Warnings) = %d, want 2", len(result.Warnings))
	}
	if result.Records[0]["c"] != "" {
		t.Errorf("short row not padded: c = %q", result.Records[0]["c"])
	}
	if result.Records[1]["c"] != "3" {
		t.Errorf("long row not truncated correctly: c = %q", result.Records[1]["c"])
	}
	if !strings.Contains(result.Warnings[0].Message, "padding") {
		t.Errorf("warning[0] = %q, want padding notice", result.Warnings[0].Message)
	}
}

func TestStreamParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty file", nil},
		{"header only", []byte("a,b,c\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := StreamParse(tt.data); err == nil {
				t.Error("StreamParse() error = nil, want error")
			}
		})
	}
}

func TestDetectAndDecode_Names(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"empty", nil, "utf-8"},
		{"plain utf-8", []byte("abc"), "utf-8"},
		{"utf-8 bom", []byte{0xEF, 0xBB, 0xBF, 'a'}, "utf-8-bom"},
		{"utf-16 le bom", []byte{0xFF, 0xFE, 'a', 0x00}, "utf-16le"},
		{"utf-16 be bom", []byte{0xFE, 0xFF, 0x00, 'a'}, "utf-16be"},
		{"latin-1 fallback", []byte{'a', 0xE9, 'b'}, "latin-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, enc, err := DetectAndDecode(tt.data)
			if err != nil {
				t.Fatalf("DetectAndDecode() error: %v", err)
			}
			if enc != tt.want {
				t.Errorf("encoding = %q, want %q", enc, tt.want)
			}
		})
	}
}

func keysOf(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
