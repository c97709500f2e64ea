package main

import "testing"

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "ssh localhost -p 23234"},
		{":2222", "ssh localhost -p 2222"},
		{"0.0.0.0:2200", "ssh localhost -p 2200"},
		{"[::]:2200", "ssh localhost -p 2200"},
		{"arcade.example.com:4000", "ssh arcade.example.com -p 4000"},
		{"arcade.example.com:22", "ssh arcade.example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			if got := connectHint(tt.addr); got != tt.want {
				t.Errorf("connectHint(%q) = %q, want %q", tt.addr, got, tt.want)
			}
		})
	}
}
