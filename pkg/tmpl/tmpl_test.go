package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "simple substitution",
			tmpl: "# {{ .Title }}",
			data: map[string]string{"Title": "Autumn Leaves"},
			want: "# Autumn Leaves",
		},
		{
			name: "struct data",
			tmpl: "[{{ .Label }}] x{{ .Bars }}",
			data: struct {
				Label string
				Bars  int
			}{Label: "A", Bars: 8},
			want: "[A] x8",
		},
		{
			name: "sprig functions are available",
			tmpl: `{{ .Title | upper }} {{ repeat 3 "-" }}`,
			data: map[string]string{"Title": "blue bossa"},
			want: "BLUE BOSSA ---",
		},
		{
			name: "padRight pads to display width",
			tmpl: `|{{ padRight 5 .Chord }}|`,
			data: map[string]string{"Chord": "C7"},
			want: "|C7   |",
		},
		{
			name: "padRight leaves long strings alone",
			tmpl: `|{{ padRight 2 .Chord }}|`,
			data: map[string]string{"Chord": "Bb^/D"},
			want: "|Bb^/D|",
		},
		{
			name:    "missing key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{"Title": "test"},
			wantErr: true,
		},
		{
			name:    "invalid template syntax",
			tmpl:    "{{ .Title }",
			data:    map[string]string{"Title": "test"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderHTML_Escapes(t *testing.T) {
	got, err := RenderHTML(`<h1>{{ .Title }}</h1>`, map[string]string{"Title": "Tom & <Jerry>"})
	require.NoError(t, err)

	assert.Equal(t, "<h1>Tom &amp; &lt;Jerry&gt;</h1>", got)
}

func TestRenderHTML_SprigFunctions(t *testing.T) {
	got, err := RenderHTML(`<p>{{ .Title | title }}</p>`, map[string]string{"Title": "so what"})
	require.NoError(t, err)

	assert.Equal(t, "<p>So What</p>", got)
}

func TestRenderHTML_InvalidTemplate(t *testing.T) {
	_, err := RenderHTML(`{{ if }}`, nil)
	assert.Error(t, err)
}
