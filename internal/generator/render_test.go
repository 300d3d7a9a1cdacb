package generator

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	r := NewRenderer()
	assert.NotNil(t, r)
	assert.NotNil(t, r.funcMap)
	assert.NotNil(t, r.cache)
	assert.Empty(t, r.cache)
}

func TestRenderString(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name        string
		templateStr string
		data        any
		expected    string
		wantErr     bool
		errContains string
	}{
		{
			name:        "simple template with no data",
			templateStr: "Hello World",
			data:        nil,
			expected:    "Hello World",
		},
		{
			name:        "template with struct data",
			templateStr: "class {{ .Name }} {}",
			data:        struct{ Name string }{Name: "HomeScreen"},
			expected:    "class HomeScreen {}",
		},
		{
			name:        "template with map data",
			templateStr: "version: {{ .version }}",
			data:        map[string]any{"version": "^6.1.2"},
			expected:    "version: ^6.1.2",
		},
		{
			name:        "template with pascalCase helper",
			templateStr: "{{ pascalCase .Name }}",
			data:        struct{ Name string }{Name: "order_history"},
			expected:    "OrderHistory",
		},
		{
			name:        "template with syntax error",
			templateStr: "{{ .Name }",
			data:        nil,
			wantErr:     true,
			errContains: "failed to parse template",
		},
		{
			name:        "template with execution error",
			templateStr: "{{ .NonExistent }}",
			data:        struct{}{},
			wantErr:     true,
			errContains: "failed to render template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := r.RenderString(tt.name, tt.templateStr, tt.data)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, string(output))
			}
		})
	}
}

func TestRenderStringCaching(t *testing.T) {
	r := NewRenderer()

	out1, err := r.RenderString("cached", "Hi {{ .Name }}", struct{ Name string }{"A"})
	require.NoError(t, err)
	assert.Equal(t, "Hi A", string(out1))

	// Second render with the same name reuses the parsed template.
	out2, err := r.RenderString("cached", "ignored {{ .Name }}", struct{ Name string }{"B"})
	require.NoError(t, err)
	assert.Equal(t, "Hi B", string(out2))

	r.ClearCache()
	out3, err := r.RenderString("cached", "Bye {{ .Name }}", struct{ Name string }{"C"})
	require.NoError(t, err)
	assert.Equal(t, "Bye C", string(out3))
}

func TestRenderFile(t *testing.T) {
	r := NewRenderer()
	dir := t.TempDir()

	path := filepath.Join(dir, "screen.dart.tmpl")
	require.NoError(t, os.WriteFile(path, []byte("class {{ .Name }} {}"), 0644))

	out, err := r.RenderFile(path, struct{ Name string }{"SettingsScreen"})
	require.NoError(t, err)
	assert.Equal(t, "class SettingsScreen {}", string(out))

	_, err = r.RenderFile(filepath.Join(dir, "missing.tmpl"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read template file")
}

func TestRendererConcurrency(t *testing.T) {
	r := NewRenderer()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := r.RenderString("concurrent", "x={{ .X }}", map[string]any{"X": 1})
			assert.NoError(t, err)
			assert.Equal(t, "x=1", string(out))
		}()
	}
	wg.Wait()
}

func TestPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"home_screen", "HomeScreen"},
		{"homeScreen", "HomeScreen"},
		{"HomeScreen", "HomeScreen"},
		{"order_history_view", "OrderHistoryView"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, PascalCase(tt.input), "input: %q", tt.input)
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"home_screen", "homeScreen"},
		{"HomeScreen", "homeScreen"},
		{"push_notification", "pushNotification"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, CamelCase(tt.input), "input: %q", tt.input)
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"HomeScreen", "home_screen"},
		{"pushNotification", "push_notification"},
		{"already_snake", "already_snake"},
		{"HTTPClient", "http_client"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, SnakeCase(tt.input), "input: %q", tt.input)
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Order History", Title("order history"))
	assert.Equal(t, "Home", Title("home"))
	assert.Equal(t, "", Title(""))
}
