//go:build js

package renderer

import "github.com/cogentcore/webgpu/wgpu"

// listAdapters returns nothing: browsers do not expose adapter enumeration.
func listAdapters(*wgpu.Instance) []AdapterInfo {
	return nil
}

func adapterInfo(*wgpu.Adapter) AdapterInfo {
	return AdapterInfo{Name: "browser adapter"}
}
