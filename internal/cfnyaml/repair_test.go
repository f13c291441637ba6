// Where: internal/cfnyaml/repair_test.go
// What: Tests for the textual repair pass.
// Why: Pin down the best-effort patterns and their known limits.
package cfnyaml

import "testing"

func TestRepairShortForm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "residual ref",
			input: "ImageId:\n  Ref: BaseImage\n",
			want:  "ImageId:\n  !Ref BaseImage\n",
		},
		{
			name:  "bracketed getatt",
			input: "Value:\n  Fn::GetAtt: [MyInstance, PublicIp]\n",
			want:  "Value:\n  !GetAtt MyInstance.PublicIp\n",
		},
		{
			name:  "quoted getatt",
			input: "Value:\n  Fn::GetAtt: ['MyInstance', 'PublicIp']\n",
			want:  "Value:\n  !GetAtt MyInstance.PublicIp\n",
		},
		{
			name:  "quoted sub",
			input: "Name:\n  Fn::Sub: '${Stage}-api'\n",
			want:  "Name:\n  !Sub '${Stage}-api'\n",
		},
		{
			name:  "double-quoted sub stays",
			input: "Name:\n  Fn::Sub: \"${Stage}-api\"\n",
			want:  "Name:\n  Fn::Sub: \"${Stage}-api\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repair(tt.input, true); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRepairLongForm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "residual ref tag",
			input: "ImageId: !Ref BaseImage\n",
			want:  "ImageId: Ref: BaseImage\n",
		},
		{
			name:  "dotted getatt tag",
			input: "Value: !GetAtt MyInstance.PublicIp\n",
			want:  "Value: Fn::GetAtt: [MyInstance, PublicIp]\n",
		},
		{
			name:  "quoted sub tag",
			input: "Name: !Sub '${Stage}-api'\n",
			want:  "Name: Fn::Sub: '${Stage}-api'\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repair(tt.input, false); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIsIntrinsic(t *testing.T) {
	for _, name := range IntrinsicNames {
		if !IsIntrinsic(name) {
			t.Fatalf("expected %s to be recognized", name)
		}
	}
	for _, name := range []string{"Fn::Custom", "Condition", "Type", ""} {
		if IsIntrinsic(name) {
			t.Fatalf("expected %s to be unrecognized", name)
		}
	}
}
