package domain

import "testing"

func TestSelection_ToolName(t *testing.T) {
	tests := []struct {
		sel  Selection
		want string
	}{
		{NoTool("hi"), ""},
		{ListTopAssets(), ToolListTopAssets},
		{AssetByID("90"), ToolAssetByID},
	}

	for _, tt := range tests {
		t.Run(tt.sel.Kind.String(), func(t *testing.T) {
			if got := tt.sel.ToolName(); got != tt.want {
				t.Errorf("ToolName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelection_Args(t *testing.T) {
	if args := ListTopAssets().Args(); args != nil {
		t.Errorf("ListTopAssets().Args() = %v, want nil", args)
	}
	if args := AssetByID("80").Args(); args["id"] != "80" {
		t.Errorf("AssetByID().Args() = %v", args)
	}
}

func TestToolResult(t *testing.T) {
	ok := Success("BTC (id: 90): $65000.0")
	if !ok.OK() || ok.Text() != "BTC (id: 90): $65000.0" || ok.Status() != "success" {
		t.Errorf("Success() = %+v", ok)
	}

	fail := Failure("Failed to fetch coin price.")
	if fail.OK() || fail.Text() != "Failed to fetch coin price." || fail.Status() != "failure" {
		t.Errorf("Failure() = %+v", fail)
	}
}
