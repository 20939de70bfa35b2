//go:build !js

package renderer

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// listAdapters enumerates every adapter the instance can see. The adapters are released
// once described; the bootstrap requests its own.
func listAdapters(instance *wgpu.Instance) []AdapterInfo {
	adapters := instance.EnumerateAdapters(nil)
	infos := make([]AdapterInfo, 0, len(adapters))
	for _, a := range adapters {
		infos = append(infos, adapterInfo(a))
		a.Release()
	}
	return infos
}

func adapterInfo(a *wgpu.Adapter) AdapterInfo {
	info := a.GetInfo()
	return AdapterInfo{
		Name:    info.Name,
		Details: fmt.Sprintf("%+v", info),
	}
}
