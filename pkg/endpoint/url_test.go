package endpoint

import "testing"

func TestJoin(t *testing.T) {
	tests := []struct {
		base    string
		path    string
		want    string
		wantErr bool
	}{
		{"http://localhost:3000", "/", "http://localhost:3000/", false},
		{"http://localhost:3000/", "/health", "http://localhost:3000/health", false},
		{"http://localhost:8080", "/api/db-check", "http://localhost:8080/api/db-check", false},
		{"http://localhost:8080", "health", "http://localhost:8080/health", false},
		{"http://localhost:8080", "", "http://localhost:8080/", false},
		{"https://example.com/app", "/health", "https://example.com/app/health", false},
		{"https://example.com/app/", "/health?deep=1", "https://example.com/app/health?deep=1", false},
		{"localhost:8080", "/health", "", true},
		{"ftp://example.com", "/health", "", true},
		{"http://", "/health", "", true},
		{"://bad", "/", "", true},
	}

	for _, tt := range tests {
		got, err := Join(tt.base, tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("Join(%q, %q) error = %v, wantErr %v", tt.base, tt.path, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}
