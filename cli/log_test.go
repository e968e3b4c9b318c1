package cli

import "testing"

func TestLogConfig_Scan(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "separate_values",
			args: []string{"eval", "--log-level", "debug", "--log-format", "json", "1+1"},
			want: logConfig{Level: "debug", Format: "json", Pretty: true},
		},
		{
			name: "assigned_values",
			args: []string{"--log-level=trace", "--log-time-layout=none"},
			want: logConfig{Level: "trace", TimeLayout: "none", Pretty: true},
		},
		{
			name: "negated_bool",
			args: []string{"--no-log-pretty", "--log-caller"},
			want: logConfig{Caller: true},
		},
		{
			name: "assigned_bool",
			args: []string{"--log-pretty=false", "--no-log-caller=false"},
			want: logConfig{Caller: true},
		},
		{
			name: "stops_at_terminator",
			args: []string{"--", "--log-level=error"},
			want: logConfig{Pretty: true},
		},
		{
			name: "value_is_flag",
			args: []string{"--log-level", "--no-log-pretty"},
			want: logConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := logConfig{Pretty: true}
			got.scan(tt.args)

			if got != tt.want {
				t.Errorf("scan(%q) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}
