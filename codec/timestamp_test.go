package codec_test

import (
	"testing"
	"time"

	"github.com/ripkitten-co/idpcodec/codec"
)

type stamped struct {
	At    *time.Time
	Fixed *time.Time
}

var stampedTable = codec.NewStruct("Stamped",
	codec.Member("At", codec.Timestamp, func(r *stamped) **time.Time { return &r.At }),
	codec.Member("Fixed", codec.TimestampAs(codec.ISO8601), func(r *stamped) **time.Time { return &r.Fixed }),
)

var july28 = time.Date(2016, 7, 28, 17, 18, 57, 123_000_000, time.UTC)

func TestTimestamp_WriteFormats(t *testing.T) {
	tests := []struct {
		name   string
		format codec.TimestampFormat
		in     time.Time
		want   string
	}{
		{"epoch millis", codec.EpochSeconds, july28, `{"At":1469726337.123,"Fixed":"2016-07-28T17:18:57.123Z"}`},
		{"epoch whole", codec.EpochSeconds, july28.Truncate(time.Second), `{"At":1469726337,"Fixed":"2016-07-28T17:18:57Z"}`},
		{"iso", codec.ISO8601, july28, `{"At":"2016-07-28T17:18:57.123Z","Fixed":"2016-07-28T17:18:57.123Z"}`},
		{"iso from zone", codec.ISO8601, july28.In(time.FixedZone("CEST", 2*3600)), `{"At":"2016-07-28T17:18:57.123Z","Fixed":"2016-07-28T17:18:57.123Z"}`},
		{"iso drops sub-millis", codec.ISO8601, july28.Add(456 * time.Microsecond), `{"At":"2016-07-28T17:18:57.123Z","Fixed":"2016-07-28T17:18:57.123Z"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			data, err := codec.Marshal(stampedTable, &stamped{At: &in, Fixed: &in}, codec.WithTimestampFormat(tt.format))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("got  %s\nwant %s", data, tt.want)
			}
		})
	}
}

func TestTimestamp_ReadsBothForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"epoch float", `{"At":1469726337.123}`},
		{"epoch exponent", `{"At":1.469726337123e9}`},
		{"iso utc", `{"At":"2016-07-28T17:18:57.123Z"}`},
		{"iso offset", `{"At":"2016-07-28T19:18:57.123+02:00"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Unmarshal(stampedTable, []byte(tt.in))
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.At == nil || !got.At.Equal(july28) {
				t.Errorf("At = %v, want %v", got.At, july28)
			}
		})
	}
}

func TestTimestamp_RejectsBool(t *testing.T) {
	if _, err := codec.Unmarshal(stampedTable, []byte(`{"At":true}`)); err == nil {
		t.Fatal("expected error")
	}
}

func TestTimestamp_RejectsOutOfRangeEpoch(t *testing.T) {
	for _, in := range []string{`{"At":1e20}`, `{"At":-1e20}`, `{"At":1e308}`} {
		got, err := codec.Unmarshal(stampedTable, []byte(in))
		if err == nil {
			t.Errorf("%s: got At=%v, want error", in, got.At)
		}
	}

	got, err := codec.Unmarshal(stampedTable, []byte(`{"At":-62135596800}`))
	if err != nil {
		t.Fatalf("year one: %v", err)
	}
	if want := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC); !got.At.Equal(want) {
		t.Errorf("At = %v, want %v", got.At, want)
	}
}

func TestParseTimestampFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    codec.TimestampFormat
		wantErr bool
	}{
		{"epoch-seconds", codec.EpochSeconds, false},
		{"EPOCH", codec.EpochSeconds, false},
		{"iso8601", codec.ISO8601, false},
		{"ISO", codec.ISO8601, false},
		{"rfc822", 0, true},
	}
	for _, tt := range tests {
		got, err := codec.ParseTimestampFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimestampFormat(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseTimestampFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if codec.ISO8601.String() != "iso8601" || codec.EpochSeconds.String() != "epoch-seconds" {
		t.Error("String names changed")
	}
}
