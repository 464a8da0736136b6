package metadata

import "testing"

func TestParseProbe(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		wantLat  float64
		wantLoc  bool
		wantYear int
		wantRot  int
		wantErr  bool
	}{
		{
			name: "quicktime tags and display matrix",
			json: `{
				"streams": [
					{"codec_type": "audio"},
					{"codec_type": "video", "side_data_list": [{"side_data_type": "Display Matrix", "rotation": -90}]}
				],
				"format": {"tags": {
					"com.apple.quicktime.location.ISO6709": "+51.5072-000.1276+011.000/",
					"creation_time": "2021-07-04T10:11:12.000000Z"
				}}
			}`,
			wantLat:  51.5072,
			wantLoc:  true,
			wantYear: 2021,
			wantRot:  90,
		},
		{
			name: "legacy rotate tag and location",
			json: `{
				"streams": [{"codec_type": "video", "tags": {"rotate": "270"}}],
				"format": {"tags": {"location": "+10.0000+020.0000/", "date": "2015"}}
			}`,
			wantLat:  10,
			wantLoc:  true,
			wantYear: 2015,
			wantRot:  270,
		},
		{
			name: "no metadata",
			json: `{"streams": [{"codec_type": "video"}], "format": {}}`,
		},
		{
			name:    "not json",
			json:    `ffprobe: command failed`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProbe([]byte(tt.json))
			if tt.wantErr {
				if err == nil {
					t.Error("parseProbe() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseProbe() error = %v", err)
			}
			if got.Location.Valid != tt.wantLoc || got.Location.Latitude != tt.wantLat {
				t.Errorf("parseProbe() location = %+v", got.Location)
			}
			if got.Year != tt.wantYear {
				t.Errorf("parseProbe() year = %d, want %d", got.Year, tt.wantYear)
			}
			if got.Rotation != tt.wantRot {
				t.Errorf("parseProbe() rotation = %d, want %d", got.Rotation, tt.wantRot)
			}
		})
	}
}

func TestNormalizeDegrees(t *testing.T) {
	for in, want := range map[int]int{0: 0, 90: 90, -90: 270, 360: 0, 450: 90, -180: 180} {
		if got := normalizeDegrees(in); got != want {
			t.Errorf("normalizeDegrees(%d) = %d, want %d", in, got, want)
		}
	}
}
