package theme

import "testing"

func TestParseName(t *testing.T) {
	tests := []struct {
		in      string
		want    Name
		wantErr bool
	}{
		{in: "dark", want: Dark},
		{in: "LIGHT", want: Light},
		{in: "auto", want: Auto},
		{in: "", want: Dark},
		{in: "solarized", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseName(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("got %q, %v", got, err)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	if Dark.Toggle() != Light || Light.Toggle() != Dark {
		t.Fatalf("toggle should flip dark and light")
	}
	if got := Auto.Toggle(); got != Dark && got != Light {
		t.Fatalf("toggle from auto gave %q", got)
	}
}

func TestNewIsConcrete(t *testing.T) {
	if New(Light).Name != Light {
		t.Fatalf("expected light theme")
	}
	if New("bogus").Name != Dark {
		t.Fatalf("unknown names should fall back to dark")
	}
	if n := New(Auto).Name; n == Auto {
		t.Fatalf("auto must resolve to a concrete theme")
	}
}
