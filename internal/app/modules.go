package app

import (
	"github.com/vk/bindgengo/internal/sink"
	"github.com/vk/bindgengo/modules/packets"
	"github.com/vk/bindgengo/modules/tensor"
)

// coreModules is the definitive list of all modules that are compiled into
// the bindgen binary.
var coreModules = []sink.Module{
	&packets.Module{},
	&tensor.Module{},
}
